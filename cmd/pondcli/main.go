package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	pond "github.com/2lambda123/esnet-pond"
	"github.com/2lambda123/esnet-pond/codec"
)

func main() {
	app := cli.NewApp()
	app.Name = "pondcli"
	app.Usage = "time-series aggregation over YAML event files"
	app.Commands = []cli.Command{
		{
			Name:   "stats",
			Usage:  "print sum/avg/min/max/median/stdev for a field",
			Flags:  append(fileFlags(), fieldFlag()),
			Action: stats,
		},
		{
			Name:  "quantile",
			Usage: "print n-quantile boundaries for a field",
			Flags: append(fileFlags(), fieldFlag(),
				cli.IntFlag{Name: "n", Usage: "number of divisions", Value: 4},
				cli.StringFlag{Name: "interp", Usage: "lower|linear|higher|nearest|midpoint", Value: "linear"},
			),
			Action: quantile,
		},
		{
			Name:   "rate",
			Usage:  "print per-second rates between consecutive events",
			Flags:  append(fileFlags(), fieldFlag()),
			Action: rate,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Errorf("failed to run application: %v", err)
		os.Exit(1)
	}
}

func fileFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "file,f", Usage: "YAML event file", Required: true},
	}
}

func fieldFlag() cli.Flag {
	return cli.StringFlag{Name: "field", Usage: "dotted field path", Value: "value"}
}

func load(c *cli.Context) (pond.Collection, error) {
	col, err := codec.LoadFile(c.String("file"))
	if err != nil {
		return pond.Collection{}, err
	}
	logrus.Debugf("loaded %d events from %s", col.Size(), c.String("file"))
	return col, nil
}

func stats(c *cli.Context) error {
	col, err := load(c)
	if err != nil {
		return err
	}
	field := c.String("field")

	fmt.Printf("count:  %.0f\n", col.Count(field, pond.IgnoreMissing))
	fmt.Printf("sum:    %g\n", col.Sum(field, pond.IgnoreMissing))
	fmt.Printf("avg:    %g\n", col.Avg(field, pond.IgnoreMissing))
	fmt.Printf("min:    %g\n", col.Min(field, pond.IgnoreMissing))
	fmt.Printf("max:    %g\n", col.Max(field, pond.IgnoreMissing))
	fmt.Printf("median: %g\n", col.Median(field, pond.IgnoreMissing))
	fmt.Printf("stdev:  %g\n", col.Stdev(field, pond.IgnoreMissing))
	if tr, ok := col.Timerange(); ok {
		fmt.Printf("range:  %s .. %s\n",
			tr.Begin().UTC().Format(time.RFC3339), tr.End().UTC().Format(time.RFC3339))
	}
	return nil
}

func quantile(c *cli.Context) error {
	col, err := load(c)
	if err != nil {
		return err
	}

	interp, err := parseInterp(c.String("interp"))
	if err != nil {
		return err
	}
	bounds, err := col.Quantile(c.Int("n"), c.String("field"), interp)
	if err != nil {
		return err
	}
	for i, v := range bounds {
		fmt.Printf("q%d/%d: %g\n", i+1, c.Int("n"), v)
	}
	return nil
}

func rate(c *cli.Context) error {
	col, err := load(c)
	if err != nil {
		return err
	}
	field := c.String("field")

	rates, err := col.Rate(pond.RateConfig{Fields: []string{field}, AllowNegative: true})
	if err != nil {
		return err
	}
	for _, e := range rates.Events() {
		v, _ := e.Float(field + "_rate")
		fmt.Printf("%s  %g/s\n", e.Begin().UTC().Format(time.RFC3339), v)
	}
	return nil
}

func parseInterp(s string) (pond.Interpolation, error) {
	switch strings.ToLower(s) {
	case "lower":
		return pond.InterpLower, nil
	case "linear":
		return pond.InterpLinear, nil
	case "higher":
		return pond.InterpHigher, nil
	case "nearest":
		return pond.InterpNearest, nil
	case "midpoint":
		return pond.InterpMidpoint, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}
