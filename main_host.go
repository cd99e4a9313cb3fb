package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pocketcalc/app"
	"pocketcalc/hal"
	"pocketcalc/internal/buildinfo"
)

func main() {
	var (
		hcfg    hal.HeadlessConfig
		wcfg    hal.WindowConfig
		verbose bool
		version bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window, reading keys from stdin.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = until input ends).")
	flag.IntVar(&wcfg.X, "x", 400, "Initial window x position.")
	flag.IntVar(&wcfg.Y, "y", 200, "Initial window y position.")
	flag.Float64Var(&wcfg.Alpha, "alpha", 0.9, "Window opacity in (0, 1].")
	flag.BoolVar(&wcfg.Floating, "floating", false, "Keep the window above others.")
	flag.BoolVar(&wcfg.Click, "click", false, "Play a click on every button.")
	flag.BoolVar(&verbose, "v", false, "Verbose logging.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Short())
		return
	}

	if hcfg.Enabled {
		hcfg.X, hcfg.Y = wcfg.X, wcfg.Y
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, func(h hal.HAL) func() error {
			return app.NewWithConfig(h, app.Config{Verbose: verbose, Echo: true})
		}, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{Verbose: verbose})
	}, wcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
