// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sample:
  size: 3
output:
  format: yaml
numeric:
  validate_nan_inf: true
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Sample.Size)
	require.Equal(t, config.FormatYAML, cfg.Output.Format)
	require.True(t, cfg.Numeric.ValidateNaNInf)
	require.Len(t, cfg.MatrixOptions(), 1)
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UTMATRIX_SAMPLE_SIZE", "7")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Sample.Size)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_SampleSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Sample.Size = -1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
