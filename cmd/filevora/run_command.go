package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"filevora/internal/history"
	"filevora/internal/procapi"
	"filevora/internal/services"
	"filevora/internal/session"
	"filevora/internal/tools"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag  string
		angleFlag   int
		qualityFlag int
		dpiFlag     int
		levelFlag   string
		manualFlag  bool
		emailFlag   string
		outputFlag  string
	)

	cmd := &cobra.Command{
		Use:   "run <tool-id> <file>...",
		Short: "Submit files to a processing tool and download the result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			registry, err := tools.NewRegistry()
			if err != nil {
				return err
			}
			desc, ok := registry.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown tool %q", args[0])
			}
			if desc.ComingSoon() {
				return fmt.Errorf("%s is not available yet", desc.Name)
			}
			if desc.Interactive {
				return fmt.Errorf("%s runs locally; use the canvas command", desc.Name)
			}

			client, err := ctx.client()
			if err != nil {
				return err
			}

			sess := session.New(desc, session.Options{
				UploadTickMillis:  cfg.Progress.UploadTickMillis,
				ProcessTickMillis: cfg.Progress.ProcessTickMillis,
				UploadTarget:      cfg.Progress.UploadTarget,
				ProcessTarget:     cfg.Progress.ProcessTarget,
			})
			sess.SelectFiles(args[1:]...)

			result, runErr := sess.Run(cmd.Context(), client, procapi.JobParams{
				Format:  formatFlag,
				Angle:   angleFlag,
				Quality: qualityFlag,
				DPI:     dpiFlag,
				Level:   levelFlag,
				Manual:  manualFlag,
			})

			if runErr != nil && services.IsSilent(runErr) {
				return nil
			}

			primary := filepath.Base(args[1])
			recordErr := ctx.withStore(func(store *history.Store) error {
				conv := history.Conversion{
					ToolID:   desc.ID,
					FileName: primary,
					Status:   history.StatusFailed,
				}
				if runErr == nil {
					conv.Status = history.StatusSuccess
					conv.OutputFileName = result.Filename
					conv.DownloadURL = result.DownloadURL
				}
				_, err := store.RecordConversion(cmd.Context(), conv)
				return err
			})
			if recordErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not record history: %v\n", recordErr)
			}

			if runErr != nil {
				return runErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Result: %s\n", result.Filename)
			if result.OriginalSize > 0 && result.CompressedSize > 0 {
				fmt.Fprintf(out, "Size: %d -> %d bytes (%.1f%% smaller)\n",
					result.OriginalSize, result.CompressedSize, result.ReductionPercent)
			}

			if outputFlag != "" {
				target := outputFlag
				if info, err := os.Stat(target); err == nil && info.IsDir() {
					target = filepath.Join(target, result.Filename)
				}
				f, err := os.Create(target)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				if _, err := client.Download(cmd.Context(), result.DownloadURL, f); err != nil {
					return err
				}
				fmt.Fprintf(out, "Saved to %s\n", target)
			} else {
				fmt.Fprintf(out, "Download: %s\n", result.DownloadURL)
			}

			if email := strings.TrimSpace(emailFlag); email != "" {
				if err := client.SendDownloadLink(cmd.Context(), email, result.DownloadURL, result.Filename); err != nil {
					return err
				}
				fmt.Fprintf(out, "Download link emailed to %s\n", email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "Target format for conversion tools")
	cmd.Flags().IntVar(&angleFlag, "angle", 0, "Rotation angle (90, 180, 270)")
	cmd.Flags().IntVar(&qualityFlag, "quality", 0, "Quality percentage (1-100)")
	cmd.Flags().IntVar(&dpiFlag, "dpi", 0, "DPI for manual PDF compression")
	cmd.Flags().StringVar(&levelFlag, "level", "", "PDF compression level (basic, strong, extreme)")
	cmd.Flags().BoolVar(&manualFlag, "manual", false, "Use manual PDF compression settings")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Email the download link to this address")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save the result to this file or directory")
	return cmd
}
