package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/cmd/commands"
	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/clipboard"
	"github.com/issuebox/issuebox-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quietFlag   bool
	noColorFlag bool
	yesFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "issuebox",
	Short: "Terminal-based issue tracker for a single repository",
	Long: `Issuebox is a terminal-based issue tracker that keeps everything in a
single plain-text file next to your code. Run it without arguments for the
interactive session, or use the subcommands for one-shot edits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(commands.InputPath()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Issuebox",
	Long:  `Display the current version of the Issuebox CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Issuebox version %s\n", version)
	},
}

func init() {
	commands.BindGlobalFlags(rootCmd)
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewTagCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewRestoreCommand())
	rootCmd.AddCommand(commands.NewCommitCommand())
	rootCmd.AddCommand(commands.NewPublishCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// A re-exec of ourselves carrying clipboard text never touches the
	// command tree.
	if text, ok := clipboard.DaemonPayload(); ok {
		if err := clipboard.RunDaemon(text); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
