// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/fixture"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate a YAML operation document",
		Long: `Evaluate a YAML document naming one operation and its operands:

  op: mul          # add, sub, mul, dot, equal, scale, add_scalar, sub_scalar
  type: int        # int or float (default float)
  operands:
    - matrix: [[1, 2, 3], [4, 5], [6]]
    - vector: [1, 1, 2]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEval(args[0])
		},
	}
}

func (c *CLI) runEval(path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	c.debugf("eval: op=%s type=%s operands=%d\n", doc.Op, doc.Type, len(doc.Operands))

	res, err := fixture.Eval(doc, c.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}

	if c.cfg.Output.Format == config.FormatYAML {
		out, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		c.printf("%s", out)
		return nil
	}
	c.println(res)

	return nil
}
