// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for utmatrix.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/internal/config"
)

// Exit codes.
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitInternal   = 4
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// CLI holds the command-line interface state.
type CLI struct {
	rootCmd *cobra.Command
	cfg     *config.Config
	out     io.Writer
	errOut  io.Writer

	// Global flags
	configPath string
	format     string
	quiet      bool
	debug      bool
}

// New creates a new CLI writing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *CLI {
	c := &CLI{out: out, errOut: errOut}
	c.rootCmd = c.newRootCmd()
	return c
}

// Execute runs the CLI with the given arguments and returns an exit code.
func (c *CLI) Execute(args []string) int {
	c.rootCmd.SetArgs(args)
	if err := c.rootCmd.Execute(); err != nil {
		c.errorf("utmatrix: %v\n", err)
		if isValidation(err) {
			return ExitValidation
		}
		return ExitInternal
	}
	return ExitSuccess
}

func (c *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utmatrix",
		Short: "utmatrix - bounds-checked vectors and upper-triangular matrices",
		Long: `utmatrix exercises the matrix package from the command line.

It provides:
  • sample: the classic demonstration (a, b and a+b)
  • eval:   evaluate a YAML operation document`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig(cmd)
		},
	}
	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)

	// Global flags
	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ./utmatrix.yaml)")
	cmd.PersistentFlags().StringVar(&c.format, "format", "", "output format: text or yaml (overrides config)")
	cmd.PersistentFlags().BoolVar(&c.quiet, "quiet", false, "suppress non-essential output")
	cmd.PersistentFlags().BoolVar(&c.debug, "debug", false, "verbose debug logs")

	cmd.AddCommand(c.newSampleCmd())
	cmd.AddCommand(c.newEvalCmd())
	cmd.AddCommand(c.newVersionCmd())

	return cmd
}

func (c *CLI) initConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Override with flags
	if c.format != "" {
		c.cfg.Output.Format = c.format
	}
	if err = c.cfg.Validate(); err != nil {
		return err
	}
	c.debugf("config: %+v (command %s)\n", *c.cfg, cmd.Name())

	return nil
}

// Helper functions for output

func (c *CLI) printf(format string, args ...interface{}) {
	if !c.quiet {
		fmt.Fprintf(c.out, format, args...)
	}
}

func (c *CLI) println(args ...interface{}) {
	if !c.quiet {
		fmt.Fprintln(c.out, args...)
	}
}

func (c *CLI) errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.errOut, format, args...)
}

func (c *CLI) debugf(format string, args ...interface{}) {
	if c.debug {
		fmt.Fprintf(c.errOut, "[DEBUG] "+format, args...)
	}
}
