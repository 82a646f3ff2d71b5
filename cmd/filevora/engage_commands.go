package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filevora/internal/history"
)

func newSubscribeCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string

	cmd := &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Subscribe an email address to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				sub, err := store.AddSubscriber(cmd.Context(), args[0], sourceFlag)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Subscribed %s\n", sub.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", "cli", "Where the signup came from")
	return cmd
}

func newContactCommand(ctx *commandContext) *cobra.Command {
	var (
		nameFlag    string
		emailFlag   string
		subjectFlag string
	)

	cmd := &cobra.Command{
		Use:   "contact <message...>",
		Short: "Record a contact form message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				body := ""
				for i, arg := range args {
					if i > 0 {
						body += " "
					}
					body += arg
				}
				msg, err := store.AddMessage(cmd.Context(), history.Message{
					Name:    nameFlag,
					Email:   emailFlag,
					Subject: subjectFlag,
					Body:    body,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Message #%d recorded\n", msg.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "Sender name")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Sender email")
	cmd.Flags().StringVar(&subjectFlag, "subject", "", "Message subject")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newEmailCommand(ctx *commandContext) *cobra.Command {
	var filenameFlag string

	cmd := &cobra.Command{
		Use:   "email <address> <download-url>",
		Short: "Email a finished download link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.client()
			if err != nil {
				return err
			}
			if err := client.SendDownloadLink(cmd.Context(), args[0], args[1], filenameFlag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Download link emailed to %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&filenameFlag, "filename", "", "Display filename for the email")
	return cmd
}
