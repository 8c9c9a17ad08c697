package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
	"github.com/issuebox/issuebox-cli/pkg/models"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [index] [title|description [index]|tags]",
		Short: "Display the issue box",
		Long: `Display the formatted issue box, one issue, or one field of an issue.

Examples:
  # The whole box
  issuebox list

  # One issue with its tags and descriptions
  issuebox list 0

  # A single field
  issuebox list 0 title
  issuebox list 0 tags
  issuebox list 0 description
  issuebox list 0 description 1`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadBox()
			if err != nil {
				return err
			}
			out, err := FormatList(box, args)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// FormatList renders the list output for the given argument form.
func FormatList(box *models.Box, args []string) (string, error) {
	if len(args) == 0 {
		return box.String(), nil
	}

	index, err := cli.ParseIndex(args[0])
	if err != nil {
		// A filter without an index is the common mistake here.
		switch args[0] {
		case "title", "description", "tags":
			return "", fmt.Errorf("list filter %q requires an issue index", args[0])
		}
		return "", err
	}

	is, err := issueAt(box, index)
	if err != nil {
		return "", err
	}

	if len(args) == 1 {
		return is.String(), nil
	}

	switch args[1] {
	case "title":
		return is.Title + "\n", nil
	case "tags":
		return strings.Join(is.Tags, ", ") + "\n", nil
	case "description":
		if len(args) == 2 {
			return strings.Join(is.Description, "\n"), nil
		}
		di, err := cli.ParseIndex(args[2])
		if err != nil {
			return "", err
		}
		if di >= len(is.Description) {
			return "", errDescriptionNotFound(index, di)
		}
		return is.Description[di] + "\n", nil
	default:
		return "", fmt.Errorf("unknown list filter: %s (must be: title, description, or tags)", args[1])
	}
}
