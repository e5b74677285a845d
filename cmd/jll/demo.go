package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/miness/jloglib/internal/ui"
	"github.com/spf13/cobra"
)

// demoCmd creates the command that starts the interactive playground
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Interactive playground for the logger settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := tea.NewProgram(ui.NewDemoModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
				os.Exit(1)
			}
		},
	}
}
