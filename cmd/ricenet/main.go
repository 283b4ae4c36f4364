// Package main provides the ricenet command line tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "v0.1.0-dev"

const (
	flagConfig     = "config"
	flagData       = "data"
	flagHidden     = "hidden"
	flagLR         = "lr"
	flagEpochs     = "epochs"
	flagInitScale  = "init-scale"
	flagSeed       = "seed"
	flagSplit      = "split"
	flagClassOrder = "class-order"
	flagWorkers    = "workers"
	flagLogEvery   = "log-every"
	flagNoSpinner  = "no-spinner"
	flagDebug      = "debug"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "ricenet",
		Usage:     "train a small neural network that classifies rice grains",
		Version:   version,
		Writer:    out,
		ErrWriter: errOut,
		Commands: []*cli.Command{
			{
				Name:      "train",
				Usage:     "train on a rice CSV file and report held-out accuracy",
				UsageText: "ricenet train [--config FILE] [--data FILE] [options]",
				Flags:     trainFlags(),
				Action:    trainAction,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "ricenet %s\n", version)
					return nil
				},
			},
		},
	}
}

func trainFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load settings from JSON5 `FILE`",
		},
		&cli.StringFlag{
			Name:  flagData,
			Usage: "rice dataset CSV `FILE`",
		},
		&cli.IntFlag{
			Name:  flagHidden,
			Usage: "hidden layer width",
		},
		&cli.Float64Flag{
			Name:  flagLR,
			Usage: "learning rate",
		},
		&cli.IntFlag{
			Name:  flagEpochs,
			Usage: "number of passes over the training set",
		},
		&cli.Float64Flag{
			Name:  flagInitScale,
			Usage: "weights are drawn from [0, `SCALE`)",
		},
		&cli.Uint64Flag{
			Name:  flagSeed,
			Usage: "seed for weight initialization",
		},
		&cli.Float64Flag{
			Name:  flagSplit,
			Usage: "fraction of samples used for training",
		},
		&cli.StringFlag{
			Name:  flagClassOrder,
			Usage: "class numbering: insertion or sorted",
		},
		&cli.IntFlag{
			Name:  flagWorkers,
			Usage: "goroutines used for evaluation (0 = one per CPU)",
		},
		&cli.IntFlag{
			Name:  flagLogEvery,
			Value: 500,
			Usage: "log the mean loss every `N` epochs",
		},
		&cli.BoolFlag{
			Name:  flagNoSpinner,
			Usage: "do not animate progress",
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	}
}
