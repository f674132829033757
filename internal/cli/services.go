package cli

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/2kybe3/kcli/internal/app"
	"github.com/2kybe3/kcli/internal/pastebins"
)

func newServicesCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List paste services and whether they are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registered := make(map[string]pastebins.Meta)
			for p := range rt.app.Registry().All() {
				registered[p.Meta().ID] = p.Meta()
			}

			rows := app.KnownServices()
			for _, m := range registered {
				if !slices.ContainsFunc(rows, func(k pastebins.Meta) bool { return k.ID == m.ID }) {
					rows = append(rows, m)
				}
			}
			slices.SortFunc(rows, func(a, b pastebins.Meta) int { return strings.Compare(a.ID, b.ID) })

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tDOMAIN\tSTATUS")
			for _, m := range rows {
				status := "disabled"
				if _, ok := registered[m.ID]; ok {
					status = "registered"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.DisplayName, m.Domain, status)
			}
			return w.Flush()
		},
	}
}
