package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bankconv/bankconv/internal/buildinfo"
	"github.com/bankconv/bankconv/internal/profile"
)

const defaultEnvFile = ".env"

// options holds the persistent flags shared by every subcommand.
type options struct {
	envFile  string
	profiles string
	verbose  bool
	logger   *log.Logger
}

func (o *options) newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if o.verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{Level: level, Prefix: "bankconv"})
}

// Execute builds the command tree for args and runs it. Profiles named by
// --profiles are loaded before the tree is built so that each custom bank
// gets its own subcommand.
func Execute(args []string, stdout, stderr io.Writer) error {
	reg := profile.DefaultRegistry()
	if path := scanProfilesFlag(args); path != "" {
		if err := registerFile(reg, path); err != nil {
			return err
		}
	}

	root := NewRootCommand(reg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(reg *profile.Registry) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "bankconv",
		Short:   "Convert bank statements into Bluecoins import files",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = opts.newLogger(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env", defaultEnvFile, "account settings file")
	flags.StringVar(&opts.profiles, "profiles", "", "YAML file with additional bank profiles")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	for _, key := range reg.Keys() {
		p, _ := reg.Get(key)
		rootCmd.AddCommand(newBankCommand(opts, p))
	}
	rootCmd.AddCommand(newConvertCommand(opts, reg))
	rootCmd.AddCommand(newBanksCommand(reg))
	rootCmd.AddCommand(newAccountCommand(opts, reg))

	return rootCmd
}

var reservedKeys = map[string]bool{
	"convert": true,
	"banks":   true,
	"account": true,
	"help":    true,
}

func registerFile(reg *profile.Registry, path string) error {
	profiles, err := profile.LoadFile(path)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if reservedKeys[p.Key] {
			return fmt.Errorf("bank key %q is reserved", p.Key)
		}
		if _, ok := reg.Get(p.Key); ok {
			return fmt.Errorf("bank %q is already defined", p.Key)
		}
		reg.Register(p)
	}
	return nil
}

// scanProfilesFlag finds --profiles ahead of cobra's own parsing.
func scanProfilesFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--profiles="); ok {
			return v
		}
		if arg == "--profiles" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
