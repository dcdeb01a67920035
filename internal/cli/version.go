// SPDX-License-Identifier: MIT

package cli

import (
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/utmatrix/internal/config"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version   string `yaml:"version"`
	GitCommit string `yaml:"git_commit"`
	BuildDate string `yaml:"build_date"`
	GoVersion string `yaml:"go_version"`
	OS        string `yaml:"os"`
	Arch      string `yaml:"arch"`
}

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVersion()
		},
	}
}

func (c *CLI) runVersion() error {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	if c.cfg.Output.Format == config.FormatYAML {
		out, err := yaml.Marshal(info)
		if err != nil {
			return err
		}
		c.printf("%s", out)
		return nil
	}
	c.printf("utmatrix %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildDate)
	c.printf("%s %s/%s\n", info.GoVersion, info.OS, info.Arch)

	return nil
}
