package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtools/internal/config"
	"github.com/abhisek/mathtools/internal/export"
	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single question",
	Example: "  mathtools generate --tool circle-area --level 2 --answer\n" +
		"  mathtools generate --tool ratio-share --opt threePart --working",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(cmd)
		if err != nil {
			return err
		}
		req, err := parseRequest(cmd)
		if err != nil {
			return err
		}
		showAnswer, _ := cmd.Flags().GetBool("answer")
		showWorking, _ := cmd.Flags().GetBool("working")
		asJSON, _ := cmd.Flags().GetBool("json")

		engine := newEngine(cfg, config.NewLogger(os.Stderr, cfg.Verbose))
		q, err := engine.Generate(req.tool.ID, req.level, req.cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return export.WriteJSON(out, export.NewDocument(req.tool.ID, []problemgen.Question{q}, false))
		}
		_, err = fmt.Fprint(out, render.Plain(render.DefaultWidth).Question(q, showAnswer || showWorking, showWorking))
		return err
	},
}

func init() {
	addRequestFlags(generateCmd)
	generateCmd.Flags().Bool("answer", false, "Show the answer")
	generateCmd.Flags().Bool("working", false, "Show the worked solution")
	generateCmd.Flags().Bool("json", false, "Write the question as JSON")
}
