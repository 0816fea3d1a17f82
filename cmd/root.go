package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtools/internal/app"
	"github.com/abhisek/mathtools/internal/config"
	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/tools"
	"github.com/abhisek/mathtools/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "mathtools",
	Short: "Maths question generator for the classroom",
	Long: "Mathtools generates ratio, algebra and circle questions with worked solutions, " +
		"for whiteboard display, worked examples and printable worksheets.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{
			Engine: newEngine(cfg, config.NewLogger(os.Stderr, cfg.Verbose)),
			Scheme: theme.SchemeByName(cfg.Scheme),
			Splash: true,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.AddFlags(rootCmd)

	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(versionCmd)
}

// newEngine builds the question engine for cfg.
func newEngine(cfg config.Config, logger *slog.Logger) *tools.Engine {
	return tools.NewEngine(
		tools.WithRand(problemgen.NewRand(cfg.Seed)),
		tools.WithLogger(logger),
	)
}
