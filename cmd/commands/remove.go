package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index> [description <index> | tag <name>]",
		Short: "Remove an issue, a description line or a tag",
		Long: `Remove an issue by index, moving it to the recycle bin, or remove a
single description line or tag from it.

Examples:
  issuebox remove 0
  issuebox remove 0 description 1
  issuebox remove 0 tag bug`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cli.ParseIndex(args[0])
			if err != nil {
				return err
			}

			box, err := loadBox()
			if err != nil {
				return err
			}

			var msg string
			switch len(args) {
			case 1:
				if err := RemoveIssue(box, index); err != nil {
					return err
				}
				msg = fmt.Sprintf("Moved issue %d to the recycle bin", index)
			case 3:
				switch args[1] {
				case "description":
					di, err := cli.ParseIndex(args[2])
					if err != nil {
						return err
					}
					if err := RemoveIssueDescription(box, index, di); err != nil {
						return err
					}
					msg = fmt.Sprintf("Removed description %d from issue %d", di, index)
				case "tag":
					if err := RemoveIssueTag(box, index, args[2]); err != nil {
						return err
					}
					msg = fmt.Sprintf("Removed tag %s from issue %d", args[2], index)
				default:
					return fmt.Errorf("unknown remove target %q, expected 'description' or 'tag'", args[1])
				}
			default:
				return fmt.Errorf("remove %s requires an argument", args[1])
			}

			if err := saveBox(box); err != nil {
				return err
			}
			cli.PrintSuccess("%s", msg)
			return nil
		},
	}
}

// RemoveIssue moves the issue at index into the recycle bin.
func RemoveIssue(box *models.Box, index int) error {
	if _, ok := box.Remove(index); !ok {
		return errIssueNotFound(index)
	}
	return nil
}

// RemoveIssueDescription deletes one description line from an issue.
func RemoveIssueDescription(box *models.Box, index, descIndex int) error {
	is, err := issueAt(box, index)
	if err != nil {
		return err
	}
	if !is.RemoveDescription(descIndex) {
		return errDescriptionNotFound(index, descIndex)
	}
	return nil
}

// RemoveIssueTag deletes a tag from an issue.
func RemoveIssueTag(box *models.Box, index int, name string) error {
	is, err := issueAt(box, index)
	if err != nil {
		return err
	}
	if !is.Untag(name) {
		return errTagNotFound(index, name)
	}
	return nil
}
