// Command gensegments generates random line segments in a plane and
// writes them to stdout as JSON, for feeding into proxsweep.Run or
// proxsweep.RunNaive.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/brightmoor/proxsweep"
)

func main() {
	cmd := &cli.Command{
		Name:      "gensegments",
		Usage:     "Generates random line segments in a plane and outputs results to stdout as JSON",
		UsageText: "gensegments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.FloatFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.FloatFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.FloatFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.FloatFlag{
				Name:     "tolerance",
				Usage:    "TOL_ACC to validate zero-length segments against before emitting them",
				OnlyOnce: true,
				Value:    1e-9,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/brightmoor"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Float("minx")
	maxx := cmd.Float("maxx")
	miny := cmd.Float("miny")
	maxy := cmd.Float("maxy")
	n := cmd.Int("number")
	tol := cmd.Float("tolerance")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	output := make([]proxsweep.Segment, n)
	for i := int64(0); i < n; i++ {
		for {
			a := proxsweep.NewPoint(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
			b := proxsweep.NewPoint(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
			output[i] = proxsweep.NewSegment(int(i), a, b)

			// skip degenerate segments
			if !output[i].Left.Eq(output[i].Right, tol) {
				break
			}
		}
	}

	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
