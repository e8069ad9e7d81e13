package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <archive>",
		Short: "Summarize a recording archive without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := openRecording(args[0], a.logger)
			if err != nil {
				return err
			}
			defer rec.Close()

			for _, m := range rec.Members() {
				fmt.Fprintf(cmd.OutOrStdout(), "found file %s (%d bytes)\n", m.Name, m.Size)
			}

			rc, err := rec.GPS()
			if err != nil {
				return err
			}
			defer rc.Close()

			stats, _, err := processGPS(rc, a.cfg.Schema(), a.cfg.Scanner.MaxLineBytes, a.logger)
			if err != nil {
				return fmt.Errorf("decode %s: %w", rec.GPSName(), err)
			}
			stats.Print(cmd.OutOrStdout())
			return nil
		},
	}
}
