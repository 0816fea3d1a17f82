package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtools/internal/problemgen"
	"github.com/abhisek/mathtools/internal/tools"
)

// request is a tool, level and generation config parsed from flags.
type request struct {
	tool  tools.Tool
	level problemgen.Difficulty
	cfg   problemgen.GenerationConfig
}

// addRequestFlags registers the flags read by parseRequest.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("tool", "", "Tool ID (see 'mathtools tools list')")
	cmd.Flags().String("level", "1", "Difficulty level: 1, 2 or 3")
	cmd.Flags().StringArray("opt", nil, "Option override as key or key=true|false (repeatable)")
	cmd.Flags().String("choice", "", "Dropdown selection, e.g. area or numerical")
	_ = cmd.MarkFlagRequired("tool")
}

func parseRequest(cmd *cobra.Command) (request, error) {
	id, _ := cmd.Flags().GetString("tool")
	levelFlag, _ := cmd.Flags().GetString("level")
	rawOpts, _ := cmd.Flags().GetStringArray("opt")
	choice, _ := cmd.Flags().GetString("choice")

	tool, err := tools.Get(id)
	if err != nil {
		return request{}, err
	}
	level, err := problemgen.ParseDifficulty(levelFlag)
	if err != nil {
		return request{}, err
	}
	opts, err := parseOpts(rawOpts)
	if err != nil {
		return request{}, err
	}
	cfg, err := tool.Configure(level, opts, choice)
	if err != nil {
		return request{}, err
	}
	return request{tool: tool, level: level, cfg: cfg}, nil
}

// parseOpts reads "key" as on and "key=bool" as given.
func parseOpts(raw []string) (map[string]bool, error) {
	opts := make(map[string]bool, len(raw))
	for _, r := range raw {
		key, val, found := strings.Cut(r, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid --opt %q: missing key", r)
		}
		on := true
		if found {
			b, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				return nil, fmt.Errorf("invalid --opt %q: %w", r, err)
			}
			on = b
		}
		opts[key] = on
	}
	return opts, nil
}
