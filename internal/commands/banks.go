package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bankconv/bankconv/internal/profile"
)

func newBanksCommand(reg *profile.Registry) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "banks",
		Short: "List the known bank profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles := make([]profile.Profile, 0, len(reg.Keys()))
			for _, key := range reg.Keys() {
				p, _ := reg.Get(key)
				profiles = append(profiles, p)
			}

			if export != "" {
				if err := profile.SaveFile(export, profiles); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d profiles to %s\n", len(profiles), export)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tNAME\tSOURCE\tEXTENSIONS\tLOCALE")
			for _, p := range profiles {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.Key, p.Name, p.Layout.Kind, strings.Join(p.Layout.Extensions, ","), p.Locale)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "write the profiles to a YAML file instead of listing them")

	return cmd
}
