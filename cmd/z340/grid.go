package main

import (
	"github.com/aretw0/z340/internal/cli"
	"github.com/spf13/cobra"
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid [block]",
	Short: "Show the walk order of the transposed blocks",
	Long: `Draws each 9x17 block with the step at which the diagonal walk reads every cell.
The untransposed window of z340-2 and the cell receiving the relocated symbol are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.GridOptions{Options: commonOptions(cmd)}
		if len(args) > 0 {
			opts.Block = args[0]
		}
		flags := cmd.Flags()
		opts.Symbols, _ = flags.GetBool("symbols")
		opts.Markdown, _ = flags.GetBool("markdown")
		opts.Style, _ = flags.GetString("style")
		opts.NoColor, _ = flags.GetBool("no-color")
		return cli.RunGrid(opts)
	},
}

func init() {
	rootCmd.AddCommand(gridCmd)

	gridCmd.Flags().BoolP("symbols", "s", false, "Show symbols instead of walk steps")
	gridCmd.Flags().BoolP("markdown", "m", false, "Render as markdown")
	gridCmd.Flags().String("style", "", "Glamour style for --markdown (dark, light, notty, ...)")
	gridCmd.Flags().Bool("no-color", false, "Disable colors")
}
