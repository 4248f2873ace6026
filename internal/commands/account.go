package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankconv/bankconv/internal/config"
	"github.com/bankconv/bankconv/internal/profile"
)

func newAccountCommand(opts *options, reg *profile.Registry) *cobra.Command {
	var name, accountType string

	cmd := &cobra.Command{
		Use:   "account <bank>",
		Short: "Show or change the ledger account a bank imports into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := reg.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown bank %q (known: %v)", args[0], reg.Keys())
			}

			store, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}
			if name != "" {
				if err := store.Set(config.AccountNameKey(p.Key), name); err != nil {
					return err
				}
			}
			if accountType != "" {
				if err := store.Set(config.AccountTypeKey(p.Key), accountType); err != nil {
					return err
				}
			}

			acct := store.Account(p.Key, p.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", p.Name, acct.Name, acct.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&accountType, "type", "", "account type")

	return cmd
}
