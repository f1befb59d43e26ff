package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"time"

	"dots/internal/app"
	"dots/internal/core"
	_ "dots/internal/sims/dots"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "dots",
		Short:         "push dots around with the mouse",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			file, err := app.Load(configFile)
			if err != nil {
				return err
			}
			cfg.Merge(file, cmd.Flags())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cfg)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cfg.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newHeadlessCmd(cfg), newSimsCmd())
	return rootCmd
}

func newHeadlessCmd(cfg *app.Config) *cobra.Command {
	var (
		frames int
		step   time.Duration
		out    string
		clicks []string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "run frames without a window and report",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.HeadlessOptions{Frames: frames, Step: step}
			for _, s := range clicks {
				c, err := app.ParseClick(s)
				if err != nil {
					return err
				}
				opts.Clicks = append(opts.Clicks, c)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := app.RunHeadless(ctx, cfg, opts)
			if err != nil && res == nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), app.Report(cfg, res))
			if out != "" {
				if werr := writePNG(out, res); werr != nil {
					return werr
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			}
			return err
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 120, "frames to run")
	cmd.Flags().DurationVar(&step, "dt", 16*time.Millisecond, "simulated time per frame")
	cmd.Flags().StringVar(&out, "out", "", "write the last frame to this PNG file")
	cmd.Flags().StringArrayVar(&clicks, "click", nil, "click at x,y[@frame] (repeatable)")
	return cmd
}

func newSimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sims",
		Short: "list available universes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range core.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func writePNG(path string, res *app.HeadlessResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, res.Image); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
