package cli

import (
	"github.com/spf13/cobra"

	"github.com/quentinrf/berlin-clock/internal/adapters/mock"
	"github.com/quentinrf/berlin-clock/internal/adapters/system"
	"github.com/quentinrf/berlin-clock/internal/ports"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert HH:mm:ss",
		Short:   "Render a time of day",
		Example: "  berlinclock convert 13:17:01\n  berlinclock convert 24:00:00 --pretty=always",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			grid, err := ports.NewConverter(nil).ConvertTime(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printer.PrintGrid(grid)
		},
	}
}

func newNowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Render the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := printerFor(cmd)
			if err != nil {
				return err
			}

			var clock ports.ClockSource
			if at, _ := cmd.Flags().GetString("at"); at != "" {
				clock, err = mock.NewFixedClockAt(at)
			} else {
				tz, _ := cmd.Flags().GetString("timezone")
				clock, err = system.NewClock(tz)
			}
			if err != nil {
				return err
			}
			defer clock.Close()

			t, face, err := ports.NewConverter(clock).ConvertNow(cmd.Context())
			if err != nil {
				return err
			}
			return printer.PrintLabeled(t.String(), face)
		},
	}

	cmd.Flags().String("timezone", "Local", "IANA time zone of the clock, e.g. Europe/Berlin")
	cmd.Flags().String("at", "", "pretend the current time is this HH:mm:ss")
	_ = cmd.Flags().MarkHidden("at")
	return cmd
}
