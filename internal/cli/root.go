package cli

import (
	"context"
	"fmt"

	"simpletimer/internal/core/model"
	"simpletimer/internal/core/timekeeper"
	"simpletimer/internal/logging"

	"github.com/spf13/cobra"
)

// Options holds everything the GUI needs from the command line.
type Options struct {
	// Mode is empty when the saved default should be used.
	Mode      string
	Preset    model.Preset
	ConfigDir string
	Debug     bool
	NoSound   bool
}

// Launcher starts the application with the parsed options.
type Launcher func(ctx context.Context, options Options) error

// NewRootCommand creates the root cobra command with its flags.
func NewRootCommand(launch Launcher) *cobra.Command {
	var (
		options Options
		hours   int
		minutes int
		seconds int
	)

	cmd := &cobra.Command{
		Use:   "simpletimer",
		Short: "A desktop countdown timer and stopwatch",
		Long: `SimpleTimer is a small desktop widget that works either as a countdown
timer or as a stopwatch.

EXAMPLES:
  simpletimer                          # Open with saved preferences
  simpletimer --minutes 5              # Open a 5 minute countdown
  simpletimer --mode stopwatch         # Open in stopwatch mode

CONFIGURATION:
  Preferences are stored in <config dir>/SimpleTimer/settings.yaml.
  SIMPLETIMER_DEBUG                    Enable debug logging (same as --debug)`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Mode != "" && !timekeeper.Mode(options.Mode).Valid() {
				return fmt.Errorf("invalid --mode %q: use timer or stopwatch", options.Mode)
			}

			preset := timekeeper.Duration{Hours: hours, Minutes: minutes, Seconds: seconds}.Clamped()
			options.Preset = model.Preset{
				Hours:   preset.Hours,
				Minutes: preset.Minutes,
				Seconds: preset.Seconds,
			}

			if options.Debug {
				logging.SetDebug(true)
			}
			logging.Debugf("cli: launching with %+v", options)
			return launch(cmd.Context(), options)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.Mode, "mode", "m", "", "start in timer or stopwatch mode")
	flags.IntVar(&hours, "hours", 0, "preset countdown hours")
	flags.IntVar(&minutes, "minutes", 0, "preset countdown minutes")
	flags.IntVar(&seconds, "seconds", 0, "preset countdown seconds")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "override the configuration directory")
	flags.BoolVar(&options.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.NoSound, "no-sound", false, "never play the completion chime")

	return cmd
}

// Execute runs the root command.
func Execute(ctx context.Context, launch Launcher) error {
	return NewRootCommand(launch).ExecuteContext(ctx)
}
