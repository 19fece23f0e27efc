package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rpdiff/align"
	"github.com/katalvlaran/rpdiff/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "rpdiff.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, align.DefaultOptions(), cfg.AlignOptions())
}

func TestLoad_OverridesPartially(t *testing.T) {
	p := writeFile(t, `
align:
  tie_break: legacy
output:
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Color, "unset keys keep defaults")
	assert.Equal(t, align.DefaultMaxLinks, cfg.Align.MaxLinks)
	assert.Equal(t, align.TieBreakLegacy, cfg.AlignOptions().TieBreak)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"tie break": "align: {tie_break: coin-flip}\n",
		"max links": "align: {max_links: 0}\n",
		"format":    "output: {format: xml}\n",
		"log level": "log: {level: chatty}\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "align: [not, a, map]\n"))
	assert.Error(t, err)
}
