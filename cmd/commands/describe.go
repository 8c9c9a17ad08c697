package commands

import (
	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewDescribeCommand creates the describe command
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <text> [index]",
		Short: "Append a description line to an issue",
		Long: `Append a line to an issue's description. Without an index the most
recently added issue is described.

Examples:
  issuebox describe "Depends on the session refactor" 0
  issuebox describe "Fails on empty input"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := optionalIndexArg(args, 1)
			if err != nil {
				return err
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			if err := DescribeIssue(box, args[0], index); err != nil {
				return err
			}
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Described issue")
			return nil
		},
	}
}

// DescribeIssue appends text to the issue at index, defaulting to the
// last issue when index is nil.
func DescribeIssue(box *models.Box, text string, index *int) error {
	i, err := resolveIndex(box, index)
	if err != nil {
		return err
	}
	is, err := issueAt(box, i)
	if err != nil {
		return err
	}
	is.Describe(text)
	return nil
}

// optionalIndexArg parses args[pos] as an index if present.
func optionalIndexArg(args []string, pos int) (*int, error) {
	if len(args) <= pos {
		return nil, nil
	}
	i, err := cli.ParseIndex(args[pos])
	if err != nil {
		return nil, err
	}
	return &i, nil
}
