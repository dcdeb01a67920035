// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/matrix"
)

func (c *CLI) newSampleCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the classic a, b, a+b demonstration",
		Long: `Builds two upper-triangular integer matrices of the configured size with
a[i][j] = i*10+j and b[i][j] = (i*10+j)*100, then prints a, b and a+b.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("size") {
				c.cfg.Sample.Size = size
			}
			return c.runSample(c.cfg.Sample.Size)
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "matrix size (overrides sample.size)")

	return cmd
}

func (c *CLI) runSample(n int) error {
	opts := c.cfg.MatrixOptions()
	a, err := matrix.NewMatrix[int](n, opts...)
	if err != nil {
		return err
	}
	b, err := matrix.NewMatrix[int](n, opts...)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err = a.Set(i, j, i*10+j); err != nil {
				return err
			}
			if err = b.Set(i, j, (i*10+j)*100); err != nil {
				return err
			}
		}
	}
	sum, err := a.Add(b)
	if err != nil {
		return err
	}

	c.printf("Matrix a =\n%s\n", a)
	c.printf("Matrix b =\n%s\n", b)
	c.printf("Matrix c = a + b\n%s\n", sum)

	return nil
}
