package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filevora/internal/cloudpick"
)

func newCloudCommand(ctx *commandContext) *cobra.Command {
	var (
		nameFlag   string
		fileIDFlag string
		tokenFlag  string
	)

	cmd := &cobra.Command{
		Use:   "cloud <provider> <share-url>",
		Short: "Import a file from Google Drive, Dropbox, or OneDrive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := cloudpick.Normalize(cloudpick.Pick{
				Provider:    args[0],
				URL:         args[1],
				Name:        nameFlag,
				FileID:      fileIDFlag,
				AccessToken: tokenFlag,
			})
			if err != nil {
				return err
			}

			client, err := ctx.client()
			if err != nil {
				return err
			}
			file, err := client.ImportCloudFile(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %s\n", file.Filename)
			if file.Size > 0 {
				fmt.Fprintf(out, "Size: %d bytes\n", file.Size)
			}
			fmt.Fprintf(out, "Download: %s\n", file.DownloadURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "File name to import as")
	cmd.Flags().StringVar(&fileIDFlag, "file-id", "", "Provider file id, when known")
	cmd.Flags().StringVar(&tokenFlag, "token", "", "OAuth access token for private files")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
