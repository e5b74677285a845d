package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/miness/jloglib/jll"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set during build
	Version = "dev"
	// GitCommit is set during build
	GitCommit = "none"
	// BuildDate is set during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jll",
	Short: "Tiny message logger with console and file targets",
	Long: `jll formats messages with an optional timestamp, application name and
delimiter, filters them by a three-tier log level and writes them to the
console or an append-only log file.

Examples:
  jll log "service started"
  jll log --level HIGH --file app.log "disk almost full"
  jll settings init jll.json
  jll demo`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
}

func init() {
	rootCmd.PersistentFlags().StringP("settings", "s", "", "Settings file to load before running (JSON, JSON5 tolerated)")
	rootCmd.PersistentFlags().String("app-name", "", "Override the application name printed on lines")
	rootCmd.PersistentFlags().String("delimiter", "", "Override the segment delimiter")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Append lines to this file instead of the console")
	rootCmd.PersistentFlags().Bool("no-date", false, "Do not print the date segment")
	rootCmd.PersistentFlags().Bool("no-time", false, "Do not print the time segment")
	rootCmd.PersistentFlags().Bool("no-app-name", false, "Do not print the application name")

	// Environment overrides: JLL_SETTINGS, JLL_APP_NAME, JLL_FILE, ...
	viper.SetEnvPrefix("JLL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding flags: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(logCmd(), settingsCmd(), demoCmd())
}

// applyOverrides loads the optional settings file into the shared
// settings, then layers environment and flag overrides on top. The
// precedence is flags over environment over file over defaults.
func applyOverrides() {
	jll.Setup()
	if path := viper.GetString("settings"); path != "" {
		jll.GetUtils().LoadSettings(path)
	}

	s := jll.GetSettings()
	if name := viper.GetString("app-name"); name != "" {
		s.SetApplicationName(name)
	}
	if delimiter := viper.GetString("delimiter"); delimiter != "" {
		s.SetDelimiter(delimiter)
	}
	if file := viper.GetString("file"); file != "" {
		s.SetLogFile(file)
		s.SetLogTarget(jll.TargetFile)
	}
	if viper.GetBool("no-date") {
		s.SetPrintDate(false)
	}
	if viper.GetBool("no-time") {
		s.SetPrintTime(false)
	}
	if viper.GetBool("no-app-name") {
		s.SetPrintApplicationName(false)
	}
}

// logCmd creates the command that logs one message
func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [flags] <message...>",
		Short: "Log a message with the current settings",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			applyOverrides()

			levelName, _ := cmd.Flags().GetString("level")
			level, err := jll.ParseLogLevel(levelName)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid log level: %s. Using MEDIUM.\n", levelName)
				level = jll.LevelMedium
			}

			jll.LogAt(strings.Join(args, " "), level)
		},
	}
	cmd.Flags().StringP("level", "l", "MEDIUM", "Log level: LOW, MEDIUM or HIGH")
	return cmd
}

// main is the entry point of the application
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
