package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trackconv/internal/gpx"
)

func newConvertCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <archive>",
		Short: "Decode a recording archive and write a GPX track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := openRecording(args[0], a.logger)
			if err != nil {
				return err
			}
			defer rec.Close()

			rc, err := rec.GPS()
			if err != nil {
				return err
			}
			defer rc.Close()

			stats, points, err := processGPS(rc, a.cfg.Schema(), a.cfg.Scanner.MaxLineBytes, a.logger)
			if err != nil {
				return fmt.Errorf("decode %s: %w", rec.GPSName(), err)
			}

			stats.Print(cmd.OutOrStdout())

			out := a.cfg.Output.Path
			if output != "" {
				out = output
			}
			a.logger.Info("writing track",
				zap.String("path", out),
				zap.Int("points", len(points)))
			if err := gpx.WriteFile(out, []gpx.Track{{Name: a.cfg.Output.TrackName, Points: points}}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output GPX path (default from config, out.gpx)")
	return cmd
}
