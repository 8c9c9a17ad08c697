package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/issuebox/issuebox-cli/internal/cli"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new issue",
		Long: `Create a new issue with the given title.

The title should be formatted as a prospective git commit or issue title.

Examples:
  issuebox add "Fix login timeout"
  issuebox add Fix login timeout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			if err := cli.ValidateTitle(title); err != nil {
				return err
			}

			box, err := loadBox()
			if err != nil {
				return err
			}
			box.Add(title)
			if err := saveBox(box); err != nil {
				return err
			}

			cli.PrintSuccess("Added issue %d: %s", box.Len()-1, title)
			return nil
		},
	}
}
