// Root command for the openaddr CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/homier/openaddr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

var errUsage = errors.New("usage error")

// Global flag names; config keys are the same with '_' for '-'.
const (
	flagConfig         = "config"
	flagProbing        = "probing"
	flagSizing         = "sizing"
	flagGrow           = "grow"
	flagShrink         = "shrink"
	flagTombstoneRatio = "tombstone-ratio"
	flagMinCapacity    = "min-capacity"
	flagMaxCapacity    = "max-capacity"
)

// app carries the table settings resolved before any subcommand runs.
type app struct {
	configFile string

	cfg    openaddr.Config
	sizing openaddr.Sizing
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "openaddr",
		Short: "Open-addressing hash table driver",
		Long: `openaddr exercises an open-addressing hash table with linear or
triangular probing, tombstone deletion and prime-sized resizing.

Table settings come from flags, OPENADDR_* environment variables (a .env
file is loaded first), and openaddr.yaml, in that order of precedence.`,
		Version:           openaddr.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, flagConfig, "", "config file (default: ./openaddr.yaml if present)")
	flags.String(flagProbing, openaddr.Linear.String(), "probing method: linear or quadratic")
	flags.String(flagSizing, sizingPrime, "capacity tiers: prime or power-of-two")
	flags.Float64(flagGrow, openaddr.DefaultGrowLoadFactor, "grow load factor in (0, 1]")
	flags.Float64(flagShrink, openaddr.DefaultShrinkLoadFactor, "shrink load factor below the grow factor")
	flags.Float64(flagTombstoneRatio, openaddr.DefaultTombstoneRatio, "tombstone share of capacity that triggers a shrink")
	flags.Int(flagMinCapacity, 0, "minimum capacity (0: smallest tier)")
	flags.Int(flagMaxCapacity, 0, "maximum capacity (0: largest tier)")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newMenuCmd(a))
	root.AddCommand(newPrimesCmd())
	root.AddCommand(newBenchCmd(a))

	return root
}

// load resolves the table settings from config, env and flags.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v, err := loadConfig(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg, a.sizing, err = tableSettings(v)
	return err
}

// newMap builds an empty table with the resolved settings.
func newMap[K comparable, V any](a *app, opts ...openaddr.Option[K, V]) (*openaddr.Map[K, V], error) {
	return openaddr.New(append([]openaddr.Option[K, V]{
		openaddr.WithConfig[K, V](a.cfg),
		openaddr.WithSizing[K, V](a.sizing),
	}, opts...)...)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, errUsage), errors.Is(err, openaddr.ErrInvalidArgument),
		errors.Is(err, openaddr.ErrUnsupportedProbing):
		return exitUserError
	default:
		return exitSysError
	}
}

// lookupFlag finds a flag by name whether it was declared on the command
// or inherited from the root.
func lookupFlag(fs *pflag.FlagSet, name string) *pflag.Flag {
	if fs == nil {
		return nil
	}

	return fs.Lookup(name)
}
