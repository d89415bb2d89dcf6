package config_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/KirkDiggler/duel/internal/config"
	"github.com/KirkDiggler/duel/internal/domain/duel"
	duelerr "github.com/KirkDiggler/duel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer

	cfg, err := config.Parse("duel", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, 100, cfg.MaxHP)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, language.Und, cfg.Language)
	assert.Equal(t, duel.DefaultRules(), cfg.Rules)
	assert.Empty(t, out.String())
}

func TestParse_Flags(t *testing.T) {
	path := writeRules(t, "heal: {low: 5, high: 9}\n")

	cfg, err := config.Parse("duel", []string{"-max-hp", "250", "-seed", "7", "-verbose", "-rules", path}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, 250, cfg.MaxHP)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, cfg.RulesPath)
	assert.Equal(t, duel.Range{Low: 5, High: 9}, cfg.Rules.Heal)
	assert.Equal(t, duel.Range{Low: 18, High: 25}, cfg.Rules.SmallAttack)
}

func TestParse_RejectsBadMaxHP(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero", args: []string{"-max-hp", "0"}},
		{name: "negative", args: []string{"-max-hp=-20"}},
		{name: "not an integer", args: []string{"-max-hp", "lots"}},
		{name: "fractional", args: []string{"-max-hp", "12.5"}},
		{name: "above limit", args: []string{"-max-hp", strconv.Itoa(duel.MaxHPLimit + 1)}},
		{name: "max int", args: []string{"-max-hp", "9223372036854775807"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			cfg, err := config.Parse("duel", tt.args, &out)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, duelerr.IsValidation(err))
			assert.Contains(t, out.String(), "Usage of duel")
			assert.Contains(t, out.String(), "-max-hp")
		})
	}
}

func TestParse_AcceptsMaxHPLimit(t *testing.T) {
	cfg, err := config.Parse("duel", []string{"-max-hp", strconv.Itoa(duel.MaxHPLimit)}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, duel.MaxHPLimit, cfg.MaxHP)
}

func TestParse_Language(t *testing.T) {
	cfg, err := config.Parse("duel", []string{"-lang", "de"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language.String())

	var out bytes.Buffer
	_, err = config.Parse("duel", []string{"-lang", "not a tag!"}, &out)
	require.Error(t, err)
	assert.True(t, duelerr.IsValidation(err))
	assert.Contains(t, out.String(), "-lang")
}

func TestParse_RejectsPositionalArgs(t *testing.T) {
	_, err := config.Parse("duel", []string{"extra"}, &bytes.Buffer{})
	assert.True(t, duelerr.IsValidation(err))
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer

	_, err := config.Parse("duel", []string{"-h"}, &out)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-seed")
}

func TestParse_BadRulesFile(t *testing.T) {
	var out bytes.Buffer

	_, err := config.Parse("duel", []string{"-rules", filepath.Join(t.TempDir(), "missing.yaml")}, &out)

	require.Error(t, err)
	assert.True(t, duelerr.IsValidation(err))
	assert.Contains(t, out.String(), "invalid rules file")
}

func TestDecodeRules(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    func(r *duel.Rules)
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			body: "",
			want: func(r *duel.Rules) {},
		},
		{
			name: "override urgent heal",
			body: "urgent_heal:\n  threshold_percent: 50\n  multiplier: 3\n",
			want: func(r *duel.Rules) {
				r.UrgentHeal = duel.UrgentHeal{ThresholdPercent: 50, Multiplier: 3}
			},
		},
		{
			name: "partial range keeps the other bound",
			body: "large_attack:\n  high: 40\n",
			want: func(r *duel.Rules) {
				r.LargeAttack.High = 40
			},
		},
		{name: "unknown key", body: "giant_attack: {low: 1, high: 2}\n", wantErr: true},
		{name: "inverted range", body: "small_attack: {low: 30, high: 20}\n", wantErr: true},
		{name: "malformed", body: "small_attack: [\n", wantErr: true},
		{name: "boosted heal overflows", body: "heal: {low: 1, high: 9223372036854775807}\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := config.DecodeRules(strings.NewReader(tt.body))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, duelerr.IsValidation(err))
				return
			}

			require.NoError(t, err)
			want := duel.DefaultRules()
			tt.want(want)
			assert.Equal(t, want, rules)
		})
	}
}

func TestLoadRules(t *testing.T) {
	path := writeRules(t, "small_attack:\n  low: 1\n  high: 2\n")

	rules, err := config.LoadRules(path)

	require.NoError(t, err)
	assert.Equal(t, duel.Range{Low: 1, High: 2}, rules.SmallAttack)

	_, err = config.LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotEmpty(t, duelerr.GetMeta(err)["path"])
}
