package main

import (
	"fmt"
	"os"

	"github.com/aretw0/z340/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "z340",
	Short: "z340 undoes the transposition layer of the Zodiac Z-340 cipher",
	Long: `z340 reads the Z-340 transcription back out of its diagonal transposition and prints
the intermediate ciphertext, ready for a homophonic substitution solver.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./z340.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}

// commonOptions collects the persistent flags. Only flags the user set
// override the config file.
func commonOptions(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	opts := cli.Options{}

	opts.ConfigPath, _ = flags.GetString("config")
	opts.ConfigRequired = flags.Changed("config")

	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		opts.LogLevel = &v
	}
	if flags.Changed("log-format") {
		v, _ := flags.GetString("log-format")
		opts.LogFormat = &v
	}
	return opts
}
