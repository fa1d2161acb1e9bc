package main

import (
	"fmt"
	"os"

	"github.com/thrasher-corp/exchangesim/backtest"
	"github.com/thrasher-corp/exchangesim/config"
	"github.com/thrasher-corp/exchangesim/log"
	"github.com/urfave/cli/v2"
)

var (
	configPath string
	verbose    bool
)

func main() {
	app := cli.NewApp()
	app.Name = "xchgsim"
	app.Usage = "run a constant-mix rebalancing strategy over historical candle data"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Value:       "config.json",
			Usage:       "the path to the simulation config file",
			Destination: &configPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "log every order placed against the engine",
			Destination: &verbose,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		log.SetLevel("DEBUG|INFO|WARN|ERROR")
	}
	bt, err := backtest.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	return bt.Run()
}
