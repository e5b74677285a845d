package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/miness/jloglib/jll"
	"github.com/spf13/cobra"
)

var (
	settingsHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("5")).
				Bold(true)

	settingsLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Width(22)

	settingsValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7"))

	settingsNoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Italic(true)
)

// settingsCmd creates the settings command group
func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and manage the settings file",
	}
	cmd.AddCommand(settingsShowCmd(), settingsInitCmd(), settingsConvertCmd())
	return cmd
}

// settingsShowCmd creates the command that prints the effective settings
func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			applyOverrides()
			fmt.Println(renderConfig(jll.GetSettings().Config()))
		},
	}
}

// settingsInitCmd creates the command that writes a default settings file
func settingsInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Write a settings file with the default values",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := jll.SaveConfig(args[0], jll.DefaultConfig()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing settings file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote default settings to %s\n", args[0])
		},
	}
}

// settingsConvertCmd creates the command that normalizes a settings file
func settingsConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Read a settings file (JSON5 tolerated) and re-save it as strict JSON",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			patch, err := jll.LoadConfig(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading settings file: %v\n", err)
				os.Exit(1)
			}

			settings := jll.NewSettings()
			settings.Apply(patch)
			if err := jll.SaveConfig(args[1], settings.Config()); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing settings file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Converted %s to %s\n", args[0], args[1])
		},
	}
}

func renderConfig(cfg jll.Config) string {
	row := func(label, value string) string {
		return settingsLabelStyle.Render(label) + settingsValueStyle.Render(value) + "\n"
	}

	out := settingsHeaderStyle.Render("jll settings") + "\n"
	out += row("loggingEnabled", fmt.Sprintf("%v", cfg.LoggingEnabled))
	out += row("logLevel", cfg.LogLevel.String())
	out += row("allowSubLogLevels", fmt.Sprintf("%v", cfg.AllowSubLogLevels))
	out += row("logTarget", cfg.LogTarget.String())
	out += row("logFile", cfg.LogFile)
	out += row("printDate", fmt.Sprintf("%v", cfg.PrintDate))
	out += row("dateFormat", cfg.DateFormat.String())
	out += row("printTime", fmt.Sprintf("%v", cfg.PrintTime))
	out += row("timeFormat", cfg.TimeFormat.String())
	out += row("delimiter", cfg.Delimiter)
	out += row("applicationName", cfg.ApplicationName)
	out += row("printApplicationName", fmt.Sprintf("%v", cfg.PrintApplicationName))

	if cfg.EffectiveTarget() != cfg.LogTarget {
		out += settingsNoteStyle.Render("note: no log file is set, lines go to the console")
	}
	return out
}
