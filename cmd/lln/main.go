package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"lln-go/internal/config"
	"lln-go/internal/presenter"
	"lln-go/pkg/distribution"
)

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "lln [flags] <min> <max> [<lambda> | <mean> <sigma>] <count>",
		Short: "Draw samples from a distribution and record its expected value",
		Long: `Draws <count> samples and writes them, one per line, to a .dat file named
after the distribution, followed by the distribution's expected value.

  lln <min> <max> <count>                 uniform integers in [min, max]
  lln <min> <max> <lambda> <count>        poisson with rate lambda
  lln <min> <max> <mean> <sigma> <count>  normal, truncated to integers`,
		Args:          cobra.RangeArgs(3, 5),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := distribution.FromArgs(args)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			if cfg.Strict {
				if err := spec.Validate(); err != nil {
					return err
				}
			}

			samples := distribution.Generate(spec, distribution.NewSource(cfg.Seed))
			path, err := presenter.Write(cfg.OutputDir, spec, samples)
			if err != nil {
				return err
			}

			log.Printf("wrote %d %s samples to %s, expected value %.2f",
				len(samples), spec.Kind, path, spec.ExpectedValue())
			return nil
		},
	}
	cmd.Flags().AddFlagSet(cfg.Flags())

	return cmd
}

// splitNegatives moves flags ahead of a "--" separator when a positional
// argument is a negative number, so pflag does not read it as a shorthand flag.
func splitNegatives(fs *pflag.FlagSet, args []string) []string {
	var flags, positionals []string

	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if isNegative(a) || !strings.HasPrefix(a, "-") {
			positionals = append(positionals, a)
			continue
		}
		flags = append(flags, a)
		if strings.HasPrefix(a, "--") {
			if f := fs.Lookup(a[2:]); f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
				i++ // flag value
				flags = append(flags, args[i])
			}
		}
	}

	negative := false
	for _, a := range positionals {
		negative = negative || isNegative(a)
	}
	if !negative {
		return args
	}

	out := make([]string, 0, len(flags)+len(positionals)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positionals...)
}

func isNegative(a string) bool {
	if !strings.HasPrefix(a, "-") {
		return false
	}
	_, err := strconv.ParseFloat(a, 64)
	return err == nil
}

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(splitNegatives(cmd.Flags(), os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
