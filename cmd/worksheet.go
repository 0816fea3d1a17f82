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

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Generate a worksheet of unique questions",
	Example: "  mathtools worksheet --tool algebra-expand -n 12 --columns 3\n" +
		"  mathtools worksheet --tool circle-sector --differentiated --answers --json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(cmd)
		if err != nil {
			return err
		}
		req, err := parseRequest(cmd)
		if err != nil {
			return err
		}
		n, _ := cmd.Flags().GetInt("count")
		differentiated, _ := cmd.Flags().GetBool("differentiated")
		answers, _ := cmd.Flags().GetBool("answers")
		columns, _ := cmd.Flags().GetInt("columns")
		asJSON, _ := cmd.Flags().GetBool("json")

		if columns < render.MinColumns || columns > render.MaxColumns {
			return fmt.Errorf("--columns must be between %d and %d, got %d",
				render.MinColumns, render.MaxColumns, columns)
		}

		logger := config.NewLogger(os.Stderr, cfg.Verbose)
		if clamped := problemgen.ClampCount(n); clamped != n {
			logger.Warn("question count clamped", "requested", n, "count", clamped)
			n = clamped
		}

		engine := newEngine(cfg, logger)
		qs, err := engine.Worksheet(req.tool.ID, n, differentiated, req.level, req.cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON {
			return export.WriteJSON(out, export.NewDocument(req.tool.ID, qs, differentiated))
		}
		_, err = fmt.Fprint(out, render.Plain(render.DefaultWidth).Worksheet(render.Sheet{
			Title:     req.tool.Name,
			Questions: qs,
			Columns:   columns,
			Answers:   answers,
		}))
		return err
	},
}

func init() {
	addRequestFlags(worksheetCmd)
	worksheetCmd.Flags().IntP("count", "n", 10, "Questions per level (1-20)")
	worksheetCmd.Flags().Bool("differentiated", false, "Generate the count at every level")
	worksheetCmd.Flags().Bool("answers", false, "Print answers under each question")
	worksheetCmd.Flags().Int("columns", 2, "Columns per row (1-4)")
	worksheetCmd.Flags().Bool("json", false, "Write the worksheet as JSON")
}
