package main

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"filevora/internal/agent"
	"filevora/internal/tools"
)

func newAgentCommand(ctx *commandContext) *cobra.Command {
	var filesFlag []string

	cmd := &cobra.Command{
		Use:   "agent <request...>",
		Short: "Describe what you want in plain words and get the matching tool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			registry, err := tools.NewRegistry()
			if err != nil {
				return err
			}
			resolver := agent.NewResolver(registry, agent.Options{
				ScoreThreshold: cfg.Agent.ScoreThreshold,
				MinWordLength:  cfg.Agent.MinWordLength,
			})

			hints := make([]agent.FileHint, 0, len(filesFlag))
			for _, path := range filesFlag {
				hints = append(hints, agent.FileHint{
					Name: filepath.Base(path),
					MIME: mime.TypeByExtension(filepath.Ext(path)),
				})
			}

			res, err := resolver.Resolve(agent.Request{
				Text:  strings.Join(args, " "),
				Files: hints,
			})
			if errors.Is(err, agent.ErrNoMatch) {
				return fmt.Errorf("no tool matches that request; try `filevora tools` to browse")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tool: %s (%s)\n", res.Tool.Name, res.Tool.ID)
			fmt.Fprintf(out, "  %s\n", res.Tool.Description)
			if res.Tool.HasJob() {
				hint := fmt.Sprintf("filevora run %s <file>", res.Tool.ID)
				switch res.Tool.Kind {
				case tools.KindRotate:
					hint += fmt.Sprintf(" --angle %d", res.Params.Angle)
				case tools.KindImageConvert:
					hint += " --format " + strings.ToLower(res.Params.Format)
				case tools.KindPDFCompress:
					if res.Params.Quality > 0 {
						hint += fmt.Sprintf(" --manual --quality %d", res.Params.Quality)
					}
				}
				fmt.Fprintf(out, "Try: %s\n", hint)
			} else if res.Tool.ComingSoon() {
				fmt.Fprintln(out, "This tool is not available yet.")
			} else {
				fmt.Fprintln(out, "This tool runs locally; see `filevora canvas --help`.")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&filesFlag, "file", nil, "File the request refers to (repeatable)")
	return cmd
}
