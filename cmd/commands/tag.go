package commands

import (
	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewTagCommand creates the tag command
func NewTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <name> [index]",
		Short: "Add a tag to an issue",
		Long: `Add a tag to an issue. Tags behave as a set. Without an index the most
recently added issue is tagged.

Examples:
  issuebox tag bug 0
  issuebox tag "help wanted"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateTagName(args[0]); err != nil {
				return err
			}
			index, err := optionalIndexArg(args, 1)
			if err != nil {
				return err
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			if err := TagIssue(box, args[0], index); err != nil {
				return err
			}
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Tagged issue with %s", args[0])
			return nil
		},
	}
}

// TagIssue tags the issue at index, defaulting to the last issue when
// index is nil.
func TagIssue(box *models.Box, name string, index *int) error {
	i, err := resolveIndex(box, index)
	if err != nil {
		return err
	}
	is, err := issueAt(box, i)
	if err != nil {
		return err
	}
	is.Tag(name)
	return nil
}
