package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/vcs"
)

// NewCommitCommand creates the commit command
func NewCommitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <index>",
		Short: "Commit the working tree with an issue title as message",
		Long: `Stage everything in the working tree and commit it using the title of the
issue at <index> as the commit message. On success the issue is moved to
the recycle bin.

Examples:
  issuebox commit 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cli.ParseIndex(args[0])
			if err != nil {
				return err
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			is, err := issueAt(box, index)
			if err != nil {
				return err
			}
			title := is.Title

			if !cli.Confirm(fmt.Sprintf("Commit everything as %q?", title)) {
				cli.PrintInfo("Cancelled")
				return nil
			}

			runner := vcs.New(runnerSettings())
			if err := runner.Commit(title); err != nil {
				return err
			}
			box.Remove(index)
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Committed %s", title)
			return nil
		},
	}
}
