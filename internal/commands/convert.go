package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bankconv/bankconv/internal/config"
	"github.com/bankconv/bankconv/internal/convert"
	"github.com/bankconv/bankconv/internal/profile"
	"github.com/bankconv/bankconv/internal/statement"
)

func newBankCommand(opts *options, p profile.Profile) *cobra.Command {
	return &cobra.Command{
		Use:   p.Key + " " + argsUsage(p),
		Short: fmt.Sprintf("Convert a %s statement (%s)", p.Name, p.Layout.Kind),
		Args:  bankArgs(p),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, opts, p, args)
		},
	}
}

func newConvertCommand(opts *options, reg *profile.Registry) *cobra.Command {
	var bank string

	cmd := &cobra.Command{
		Use:   "convert --bank <bank> <input> [output_dir]",
		Short: "Convert a statement for the bank given by --bank",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := reg.Get(bank)
			if !ok {
				return fmt.Errorf("unknown bank %q (known: %v)", bank, reg.Keys())
			}
			if err := bankArgs(p)(cmd, args); err != nil {
				return err
			}
			return runConversion(cmd, opts, p, args)
		},
	}

	cmd.Flags().StringVar(&bank, "bank", "", "bank profile key (required)")
	_ = cmd.MarkFlagRequired("bank")

	return cmd
}

func argsUsage(p profile.Profile) string {
	if p.OutputDirRequired {
		return "<input> <output_dir>"
	}
	return "<input> [output_dir]"
}

// bankArgs checks the positional arguments against what p needs.
func bankArgs(p profile.Profile) cobra.PositionalArgs {
	want := 1
	if p.OutputDirRequired {
		want = 2
	}
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < want || len(args) > 2 {
			return fmt.Errorf("usage: bankconv %s %s", p.Key, argsUsage(p))
		}
		return nil
	}
}

func runConversion(cmd *cobra.Command, opts *options, p profile.Profile, args []string) error {
	req := convert.Request{Profile: p, Input: args[0]}
	if len(args) > 1 {
		req.OutputDir = args[1]
	}
	// The default account is only persisted for inputs that can be converted.
	if err := convert.Check(req); err != nil {
		return err
	}

	store, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	acct, created, err := store.EnsureAccount(p.Key, p.Name)
	if err != nil {
		return fmt.Errorf("saving default account: %w", err)
	}
	if created {
		opts.logger.Debug("stored default account", "bank", p.Key, "name", acct.Name, "file", store.Path())
	}
	req.Account = acct
	req.OutputName = store.OutputName(p.Key, p.OutputName)

	res, err := convert.NewService(statement.FileReader{}, opts.logger).Run(req)
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	out := cmd.OutOrStdout()
	ok.Fprintf(out, "CSV generated correctly: %s\n", res.OutputPath)
	fmt.Fprintf(out, "Total transactions: %d\n", res.Stats.Written)
	return nil
}
