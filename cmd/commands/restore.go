package commands

import (
	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [index]",
		Short: "Restore an issue from the recycle bin",
		Long: `Restore an issue from the recycle bin back to the end of the issue list.
Without an index the oldest binned issue is restored.

Examples:
  issuebox restore
  issuebox restore 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := 0
			if len(args) == 1 {
				var err error
				index, err = cli.ParseIndex(args[0])
				if err != nil {
					return err
				}
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			is, err := RestoreIssue(box, index)
			if err != nil {
				return err
			}
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Restored %s", is.Title)
			return nil
		},
	}
}

// RestoreIssue moves an issue out of the recycle bin.
func RestoreIssue(box *models.Box, index int) (*models.Issue, error) {
	is, ok := box.Restore(index)
	if !ok {
		return nil, errIssueNotFound(index)
	}
	return is, nil
}
