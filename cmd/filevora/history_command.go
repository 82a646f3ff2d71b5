package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"filevora/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		userFlag   string
		limitFlag  int
		countsFlag bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *history.Store) error {
				if countsFlag {
					counts, err := store.ConversionCounts(cmd.Context())
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(counts))
					for _, tc := range counts {
						rows = append(rows, []string{tc.ToolID, fmt.Sprintf("%d", tc.Count)})
					}
					fmt.Fprintln(cmd.OutOrStdout(), renderTable(
						[]string{"Tool", "Conversions"},
						rows,
						[]columnAlignment{alignLeft, alignRight},
					))
					return nil
				}

				conversions, err := store.RecentConversions(cmd.Context(), userFlag, limitFlag)
				if err != nil {
					return err
				}
				if len(conversions) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded yet.")
					return nil
				}
				rows := make([][]string, 0, len(conversions))
				for _, conv := range conversions {
					when := ""
					if !conv.CreatedAt.IsZero() {
						when = conv.CreatedAt.Local().Format(time.DateTime)
					}
					rows = append(rows, []string{
						fmt.Sprintf("%d", conv.ID),
						conv.ToolID,
						conv.FileName,
						string(conv.Status),
						when,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Tool", "File", "Status", "When"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "Filter by user id")
	cmd.Flags().IntVar(&limitFlag, "limit", 20, "Maximum rows to show (capped at 20)")
	cmd.Flags().BoolVar(&countsFlag, "counts", false, "Show per-tool conversion counts instead")
	return cmd
}
