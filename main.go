package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/twseq/qd/config"
	"github.com/twseq/qd/constants"
	"github.com/twseq/qd/fetcher"
	"github.com/twseq/qd/sources"
	"github.com/twseq/qd/stores"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, _ := lc.Build()
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	app := &cli.Command{
		Name:  "qd",
		Usage: "download TWSE daily closing prices into per-symbol Date,Close files",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "symbols",
				Aliases: []string{"s"},
				Usage:   "stock `codes` to download, eg 0050,00830",
			},
			&cli.IntFlag{
				Name:    "years",
				Aliases: []string{"y"},
				Usage:   "lookback window in `years`",
				Value:   constants.DefaultLookbackYears,
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "output store `type:dir`, eg csv:. or xlsx:./out",
				Value: "csv:.",
			},
			&cli.DurationFlag{
				Name:  "delay",
				Usage: "polite `pause` between upstream requests",
				Value: constants.PoliteDelay,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional toml config `file`",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		zap.L().Fatal(err.Error())
	}
}

func run(ctx context.Context, c *cli.Command) error {
	conf := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}

		conf = loaded
	}

	if symbols := c.StringSlice("symbols"); len(symbols) > 0 {
		conf.Symbols = symbols
	}

	if c.IsSet("years") {
		conf.Years = int(c.Int("years"))
	}

	if c.IsSet("store") {
		conf.Store = c.String("store")
	}

	if c.IsSet("delay") {
		conf.Delay.Duration = c.Duration("delay")
	}

	if conf.Years < 0 {
		return fmt.Errorf("years must not be negative: %d", conf.Years)
	}

	store, err := stores.Parse(conf.Store)
	if err != nil {
		return err
	}

	window := fetcher.NewWindow(time.Now(), conf.Years)
	f := fetcher.New(sources.NewTWSE(), conf.Delay.Duration)

	for index, symbol := range conf.Symbols {
		if index > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(conf.Delay.Duration):
			}
		}

		zap.L().Info("fetching symbol",
			zap.String("symbol", symbol),
			zap.Int("years", conf.Years))

		records := f.Fetch(ctx, symbol, window)
		err = store.Save(symbol, records)
		if err != nil {
			zap.L().Error("save symbol failed", zap.Error(err), zap.String("symbol", symbol))
			continue
		}

		zap.L().Info("symbol complete",
			zap.String("symbol", symbol),
			zap.Int("records", len(records)))
	}

	return nil
}
