package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/statusline/errors"
)

func TestNormalizeFlagName(t *testing.T) {
	cmd := NewStandardCommand("statusline", "test")
	var skip bool
	cmd.Flags().BoolVar(&skip, "skip-pr-status", false, "")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }

	cmd.SetArgs([]string{"--skip_pr_status"})
	require.NoError(t, cmd.Execute())
	assert.True(t, skip)
}

func TestGetOptions(t *testing.T) {
	cmd := NewStandardCommand("statusline", "test")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs([]string{"-v", "--config", "/tmp/x.yml"})
	require.NoError(t, cmd.Execute())

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.Equal(t, "/tmp/x.yml", opts.ConfigFile)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("STATUSLINE_HOME", t.TempDir())

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yml")
		require.NoError(t, os.WriteFile(path, []byte("context_limit: 200000\n"), 0o644))

		cmd := NewStandardCommand("statusline", "test")
		cmd.RunE = func(*cobra.Command, []string) error { return nil }
		cmd.SetArgs([]string{"--config", path})
		require.NoError(t, cmd.Execute())

		cfg := LoadConfig(cmd)
		assert.Equal(t, 200000, cfg.ContextLimit)
	})

	t.Run("invalid file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("context_limit: [\n"), 0o644))

		cmd := NewStandardCommand("statusline", "test")
		cmd.RunE = func(*cobra.Command, []string) error { return nil }
		cmd.SetArgs([]string{"--config", path})
		require.NoError(t, cmd.Execute())

		cfg := LoadConfig(cmd)
		assert.Equal(t, 160000, cfg.ContextLimit)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cmd := NewStandardCommand("statusline", "test")
		cmd.RunE = func(*cobra.Command, []string) error { return nil }
		cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yml")})
		require.NoError(t, cmd.Execute())

		cfg := LoadConfig(cmd)
		assert.Equal(t, 160000, cfg.ContextLimit)
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		verbose bool
		want    string
	}{
		{
			name: "invalid input",
			err:  errors.InvalidInput(fmt.Errorf("unexpected EOF")),
			want: "statusline: invalid input: expected a JSON object on stdin\n",
		},
		{
			name:    "verbose keeps cause and code",
			err:     errors.InvalidInput(fmt.Errorf("unexpected EOF")),
			verbose: true,
			want:    "statusline: invalid status input: unexpected EOF [INVALID_INPUT]\n",
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: "statusline: boom\n",
		},
		{
			name: "multi-line message is flattened",
			err:  fmt.Errorf("first\n  second"),
			want: "statusline: first second\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewErrorHandler("statusline", &buf, tt.verbose)
			assert.Equal(t, tt.err, h.Handle(tt.err))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	var buf bytes.Buffer
	assert.NoError(t, NewErrorHandler("statusline", &buf, false).Handle(nil))
	assert.Empty(t, buf.String())
}

func TestVersionCommandJSON(t *testing.T) {
	cmd := NewVersionCommand("statusline")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--json"})
	require.NoError(t, cmd.Execute())

	var info map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["goVersion"])
}

func TestStyledHelp(t *testing.T) {
	root := NewStandardCommand("statusline", "Render a status line")
	root.Flags().Bool("short", false, "Compact output")
	root.RunE = func(*cobra.Command, []string) error { return nil }
	root.AddCommand(NewVersionCommand("statusline"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	help := out.String()
	assert.Contains(t, help, "STATUSLINE")
	assert.Contains(t, help, "USAGE")
	assert.Contains(t, help, "COMMANDS")
	assert.Contains(t, help, "version")
	assert.Contains(t, help, "--short")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "one two\nthree", wrapText("one two three", 8))
	assert.Equal(t, "short\n\nkept", wrapText("short\n\nkept", 20))
}

func TestParseDescription(t *testing.T) {
	desc, ex := parseDescription("Does things.\n\nExamples:\n  # run it\n  statusline --short")
	assert.Equal(t, "Does things.", desc)
	assert.Equal(t, "# run it\n  statusline --short", ex)
}
