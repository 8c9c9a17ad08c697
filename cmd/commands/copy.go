package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/clipboard"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <index> [title|description|list]",
		Short: "Copy issue text to the clipboard",
		Long: `Copy the title of an issue, its description or the whole formatted issue
list to the clipboard. Defaults to the title.

Examples:
  issuebox copy 0
  issuebox copy 0 description
  issuebox copy 0 list`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := cli.ParseIndex(args[0])
			if err != nil {
				return err
			}
			target := "title"
			if len(args) == 2 {
				target = args[1]
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			text, err := CopyText(box, index, target)
			if err != nil {
				return err
			}
			if err := clipboard.Spawn(text); err != nil {
				return err
			}

			cli.PrintSuccess("Copied %s of issue %d", target, index)
			return nil
		},
	}
}

// CopyText selects the clipboard payload for an issue.
func CopyText(box *models.Box, index int, target string) (string, error) {
	is, err := issueAt(box, index)
	if err != nil {
		return "", err
	}
	switch target {
	case "title":
		return is.Title, nil
	case "description":
		return strings.Join(is.Description, "\n"), nil
	case "list":
		return box.String(), nil
	default:
		return "", fmt.Errorf("unknown copy target %q, expected 'title', 'description' or 'list'", target)
	}
}
