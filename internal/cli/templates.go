package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pyskel-labs/pyskel/internal/catalog"
	"github.com/pyskel-labs/pyskel/internal/config"
	"github.com/pyskel-labs/pyskel/internal/manifest"
	"github.com/pyskel-labs/pyskel/internal/platform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the entries of the template catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Default()
		if err != nil {
			return fmt.Errorf("loading template catalog: %w", err)
		}

		scriptsOS := config.Current().ScriptsOS
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Catalog %s (version %s)\n\n", cat.Name(), cat.Version())

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tKIND\tPATH\tLAYOUT\tDESCRIPTION")
		for _, e := range cat.Entries() {
			layout := e.Layout
			if layout == "" {
				layout = manifest.LayoutAny
			}
			desc := e.Description
			if e.Scripts {
				desc += " (" + platform.DisplayName(scriptsOS) + " only)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Kind, e.Path, layout, desc)
		}
		return tw.Flush()
	},
}
