package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/autoplay"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List autoplay policies",
	Long:  `Shows the move policies available to the autoplay command.`,
	Args:  cobra.NoArgs,
	Run:   runPolicies,
}

func runPolicies(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	policies := autoplay.List()

	fmt.Fprintln(out, "Available policies:")
	fmt.Fprintln(out)

	maxLen := 4 // "Name" header
	for _, p := range policies {
		maxLen = max(maxLen, len(p.Name))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "----", "-----------")

	for _, p := range policies {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, p.Name, p.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 't2048 autoplay --policy <name>' to use one.")
}
