package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtools/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Browse the question tools",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tools (optionally filtered by topic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		list := tools.All()
		if topic != "" {
			if !slices.Contains(tools.AllTopics(), tools.Topic(topic)) {
				return fmt.Errorf("unknown topic %q (want ratio, algebra or geometry)", topic)
			}
			list = tools.ByTopic(tools.Topic(topic))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-22s  %-28s  %-9s  %s\n", "ID", "Name", "Topic", "Options")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, t := range list {
			fmt.Fprintf(out, "%-22s  %-28s  %-9s  %s\n",
				t.ID, t.Name, tools.TopicDisplayName(t.Topic), optionSummary(t))
		}

		fmt.Fprintf(out, "\n%d tools\n", len(list))
		return nil
	},
}

// optionSummary lists a tool's option keys and dropdown choices.
func optionSummary(t tools.Tool) string {
	var parts []string
	for _, v := range t.Variables {
		parts = append(parts, v.Key)
	}
	if t.Dropdown != nil {
		values := make([]string, len(t.Dropdown.Options))
		for i, c := range t.Dropdown.Options {
			values[i] = c.Value
		}
		parts = append(parts, t.Dropdown.Key+"="+strings.Join(values, "|"))
	}
	return strings.Join(parts, ", ")
}

func init() {
	toolsListCmd.Flags().String("topic", "", "Filter by topic (ratio, algebra or geometry)")

	toolsCmd.AddCommand(toolsListCmd)
}
