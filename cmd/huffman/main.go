// Command huffman prints the Huffman code table, the cost B(T) and the tree
// for a text or a list of symbol frequencies.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/consensys/prefixcode"
	"github.com/consensys/prefixcode/huffman"
	"github.com/consensys/prefixcode/internal/config"
	"github.com/consensys/prefixcode/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		quitF("%v\n", err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "huffman",
		Short: "Build a Huffman code",
		Long: `huffman builds an optimal prefix code from a text or from symbol frequencies
and prints the code of every symbol, the cost B(T) of the tree and the tree itself.

Frequencies are given as symbol:count pairs, e.g. --freq a:10 --freq b:3.
The symbol may be written \n, \t, \r or \\.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("text", "t", "", "text to count the symbols of")
	flags.StringP("file", "f", "", "file to count the symbols of")
	flags.StringArray("freq", nil, "symbol:count pair, repeatable")
	flags.Int64("seed", 0, "seed of the tie breaker; 0 picks ties with crypto/rand")
	flags.String("log-level", "info", "debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, toml or json)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("huffman v%s %s %s/%s\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	})
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log, err := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	freqs, err := frequencies(cfg)
	if err != nil {
		return err
	}
	log.Debug("frequencies ready", zap.Int("symbols", len(freqs)), zap.Int64("total", freqs.Total()))

	report, err := prefixcode.Run(freqs,
		huffman.WithTieBreaker(cfg.TieBreaker()),
		huffman.WithLogger(log))
	if err != nil {
		return err
	}
	log.Debug("tree built", zap.Int64("cost", report.Cost))

	_, err = report.WriteTo(cmd.OutOrStdout())
	return err
}

func frequencies(cfg *config.Config) (huffman.Frequencies, error) {
	switch {
	case cfg.File != "":
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		return huffman.CountReader(f)
	case len(cfg.Frequencies) != 0:
		return cfg.ParseFrequencies()
	default:
		return huffman.CountSymbols(cfg.Text), nil
	}
}
