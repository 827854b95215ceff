package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/z340/internal/cli"
	"github.com/spf13/cobra"
)

// reverseCmd represents the reverse command
var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Print the intermediate ciphertext",
	Long: `Reads out the three blocks of the Z-340, concatenates them and replaces ";" and "|"
with "Ä" and "Ö" for the CrypTool 2 substitution analyzer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.ReverseOptions{Options: commonOptions(cmd)}
		flags := cmd.Flags()

		opts.InputPath, _ = flags.GetString("input")
		opts.Raw, _ = flags.GetBool("raw")
		if flags.Changed("split") {
			v, _ := flags.GetBool("split")
			opts.Split = &v
		}
		if flags.Changed("metrics") {
			v, _ := flags.GetBool("metrics")
			opts.Metrics = &v
		}
		if flags.Changed("pause") {
			v, _ := flags.GetString("pause")
			opts.Pause = &v
		}
		if noPause, _ := flags.GetBool("no-pause"); noPause {
			v := "never"
			opts.Pause = &v
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.RunReverse(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(reverseCmd)

	reverseCmd.Flags().StringP("input", "i", "", "Read the ciphertext from a file ('-' for stdin) instead of the built-in transcription")
	reverseCmd.Flags().Bool("raw", false, "Print the intermediate ciphertext without symbol substitutions")
	reverseCmd.Flags().Bool("split", false, "Print one line per block")
	reverseCmd.Flags().Bool("metrics", false, "Dump block metrics to stderr in Prometheus text format")
	reverseCmd.Flags().String("pause", "auto", "Wait for Enter before exiting: auto, always, never")
	reverseCmd.Flags().Bool("no-pause", false, "Shorthand for --pause=never")

	// Reversing is what the tool is for; run it when no command is given.
	rootCmd.RunE = reverseCmd.RunE
	rootCmd.Flags().AddFlagSet(reverseCmd.Flags())
}
