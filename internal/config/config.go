package config

import "github.com/spf13/pflag"

type Config struct {
	OutputDir string
	Seed      uint64
	Strict    bool
}

// Flags binds cfg onto a new flag set with its defaults.
func (cfg *Config) Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lln", pflag.ContinueOnError)

	// define flags
	fs.StringVar(&cfg.OutputDir, "output-dir", ".", "output directory")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 draws from process entropy")
	fs.BoolVar(&cfg.Strict, "strict", false, "reject invalid distribution parameters")

	return fs
}
