package cli

import (
	"fmt"
	"slices"

	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/colour"
	"github.com/spf13/cobra"
)

// listSwatchCells is the width of the gradient column of list --preview.
const listSwatchCells = 24

func newListCmd(a *app) *cobra.Command {
	var (
		all     bool
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the colour scales",
		Long: `List the colour scales of the catalog in export order, or every
registered colour scale with --all.

Any listed name can also be reversed by appending "_r".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := colormap.Catalog
			if all {
				names = a.registry.Names()
			}
			out, err := a.listTable(names, preview)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every registered colour scale")
	cmd.Flags().BoolVar(&preview, "preview", false, "add a truecolor gradient column")
	return cmd
}

// listTable renders names with their kind, endpoint colours and whether
// they are exported.
func (a *app) listTable(names []string, preview bool) (string, error) {
	headers := []string{"#", "NAME", "KIND", "START", "END", "EXPORTED"}
	if preview {
		headers = append(headers, "PREVIEW")
	}

	table := NewTable(headers)
	table.AlignRight(0)
	for i, name := range names {
		cm, err := a.registry.Lookup(name)
		if err != nil {
			return "", err
		}

		exported := "no"
		if slices.Contains(colormap.Catalog, name) {
			exported = "yes"
		}

		row := []string{
			fmt.Sprint(i + 1),
			name,
			cm.Kind().String(),
			cm.At(0).Hex(),
			cm.At(1).Hex(),
			exported,
		}
		if preview {
			swatch, err := colormap.Sample(cm, listSwatchCells)
			if err != nil {
				return "", err
			}
			row = append(row, colour.GradientBlocks(swatch))
		}
		table.AddRow(row)
	}

	return table.Render(), nil
}
