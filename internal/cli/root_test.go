package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"simpletimer/internal/core/model"
	"simpletimer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (*Options, string, error) {
	t.Helper()
	var captured *Options
	cmd := NewRootCommand(func(ctx context.Context, options Options) error {
		captured = &options
		return nil
	})

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return captured, output.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	t.Cleanup(func() { logging.SetDebug(false) })

	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "no flags",
			args: nil,
			want: Options{},
		},
		{
			name: "preset countdown",
			args: []string{"--hours", "1", "--minutes", "30", "--seconds", "15"},
			want: Options{Preset: model.Preset{Hours: 1, Minutes: 30, Seconds: 15}},
		},
		{
			name: "negative preset is clamped",
			args: []string{"--minutes", "-5", "--seconds", "10"},
			want: Options{Preset: model.Preset{Seconds: 10}},
		},
		{
			name: "stopwatch with shorthand",
			args: []string{"-m", "stopwatch", "--no-sound"},
			want: Options{Mode: "stopwatch", NoSound: true},
		},
		{
			name: "config dir and debug",
			args: []string{"--config-dir", "/tmp/simpletimer", "--debug"},
			want: Options{ConfigDir: "/tmp/simpletimer", Debug: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options, _, err := runRoot(t, tt.args...)
			require.NoError(t, err)
			require.NotNil(t, options)
			assert.Equal(t, tt.want, *options)
		})
	}
}

func TestRootCommand_DebugFlagEnablesLogging(t *testing.T) {
	t.Setenv(logging.DebugEnv, "")
	t.Cleanup(func() { logging.SetDebug(false) })

	_, _, err := runRoot(t, "--debug")
	require.NoError(t, err)
	assert.True(t, logging.DebugEnabled())
}

func TestRootCommand_InvalidMode(t *testing.T) {
	options, _, err := runRoot(t, "--mode", "hourglass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --mode")
	assert.Nil(t, options)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	options, _, err := runRoot(t, "extra")
	require.Error(t, err)
	assert.Nil(t, options)
}

func TestRootCommand_PropagatesLaunchError(t *testing.T) {
	launchErr := errors.New("no display")
	cmd := NewRootCommand(func(context.Context, Options) error {
		return launchErr
	})
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorIs(t, cmd.Execute(), launchErr)
}

func TestRootCommand_Help(t *testing.T) {
	_, output, err := runRoot(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "simpletimer --minutes 5")
	assert.Contains(t, output, "--no-sound")
}
