package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"filevora/internal/tools"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "tools [id]",
		Short: "List available tools or show one tool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := tools.NewRegistry()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return printTool(cmd, registry, args[0])
			}

			descriptors := registry.All()
			if category := strings.TrimSpace(categoryFlag); category != "" {
				descriptors = registry.ByCategory(tools.Category(category))
				if len(descriptors) == 0 {
					return fmt.Errorf("no tools in category %q", category)
				}
			}

			if !stdoutIsTerminal() {
				for _, desc := range descriptors {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", desc.ID, desc.Category, desc.Endpoint)
				}
				return nil
			}

			rows := make([][]string, 0, len(descriptors))
			for _, desc := range descriptors {
				state := "live"
				switch {
				case desc.ComingSoon():
					state = "coming soon"
				case desc.Interactive:
					state = "interactive"
				}
				rows = append(rows, []string{desc.ID, desc.Name, string(desc.Category), state, yesNo(desc.Multiple)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Category", "State", "Multi"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Filter by category")
	return cmd
}

func printTool(cmd *cobra.Command, registry *tools.Registry, id string) error {
	desc, ok := registry.Lookup(id)
	if !ok {
		return fmt.Errorf("unknown tool %q", id)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:           %s\n", desc.ID)
	fmt.Fprintf(out, "Name:         %s\n", desc.Name)
	fmt.Fprintf(out, "Description:  %s\n", desc.Description)
	fmt.Fprintf(out, "Category:     %s\n", desc.Category)
	fmt.Fprintf(out, "Endpoint:     %s\n", desc.Endpoint)
	fmt.Fprintf(out, "Accepts:      %s\n", desc.AcceptedTypes)
	fmt.Fprintf(out, "Multiple:     %s\n", yesNo(desc.Multiple))
	fmt.Fprintf(out, "Interactive:  %s\n", yesNo(desc.Interactive))
	fmt.Fprintf(out, "Coming soon:  %s\n", yesNo(desc.ComingSoon()))
	if len(desc.PresetOptions) > 0 {
		fmt.Fprintf(out, "Presets:      %v\n", desc.PresetOptions)
	}
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
