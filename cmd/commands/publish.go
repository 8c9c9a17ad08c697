package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/vcs"
)

// NewPublishCommand creates the publish command
func NewPublishCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <index>",
		Short: "Publish an issue to GitHub",
		Long: `Create a GitHub issue from the issue at <index> using the gh CLI. Tags
become labels and are created in the repository when missing. On success
the issue is moved to the recycle bin.

Examples:
  issuebox publish 0`,
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

			if !cli.Confirm(fmt.Sprintf("Publish %q to GitHub?", title)) {
				cli.PrintInfo("Cancelled")
				return nil
			}

			runner := vcs.New(runnerSettings())
			if err := runner.Publish(is); err != nil {
				return err
			}
			box.Remove(index)
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Published %s", title)
			return nil
		},
	}
}
