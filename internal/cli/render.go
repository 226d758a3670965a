package cli

import (
	"fmt"

	"github.com/pyskel-labs/pyskel/internal/catalog"
	"github.com/pyskel-labs/pyskel/internal/config"
	"github.com/spf13/cobra"
)

var renderLayout string

func init() {
	renderCmd.Flags().StringVar(&renderLayout, "layout", "", "Test layout the content is rendered for: flat or tests")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template-id> <name>",
	Short: "Print one rendered template",
	Long: `Render a single catalog entry for a project name and print it to stdout.
Run 'pyskel templates' to see the available IDs.

Example:
  pyskel render readme widget`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, name := args[0], args[1]

		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("loading template catalog: %w", err)
		}

		s := config.Current()
		if cmd.Flags().Changed("layout") {
			if err := config.Validate(config.KeyLayout, renderLayout); err != nil {
				return fmt.Errorf("--layout: %w", err)
			}
			s.Layout = renderLayout
		}
		if err := s.Validate(); err != nil {
			return err
		}
		data := catalog.Data{
			ProjectName:  name,
			Layout:       s.Layout,
			VenvDir:      s.VenvDir,
			GitUserName:  s.GitUserName,
			GitUserEmail: s.GitUserEmail,
		}

		content, err := cat.Render(id, data.WithDefaults())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}
