package main

import (
	"fmt"
	"os"
	"time"

	"github.com/TomTonic/cputimer"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "cputimer-example"
	app.Usage = "burn CPU on one thread and measure it with the thread CPU-time clock"
	app.Flags = []cli.Flag{
		cli.DurationFlag{
			Name:  "burn, b",
			Value: 10 * time.Millisecond,
			Usage: "CPU time to burn per lap",
		},
		cli.IntFlag{
			Name:  "laps, n",
			Value: 3,
			Usage: "number of laps",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	burn := c.Duration("burn")
	laps := c.Int("laps")
	if burn <= 0 {
		return fmt.Errorf("burn must be positive, got %s", burn)
	}
	if laps < 1 {
		return fmt.Errorf("laps must be at least 1, got %d", laps)
	}

	unlock := cputimer.LockThread()
	defer unlock()

	if !cputimer.ThreadCPUSupported() {
		fmt.Println("no thread CPU-time clock on this platform, using the monotonic clock")
	}
	fmt.Printf("clock precision: %d ns\n", cputimer.GetThreadCPUPrecision())

	clock := cputimer.ThreadCPUClock{}
	sw := cputimer.NewStopwatch(cputimer.Default())
	var checksum uint64
	for i := range laps {
		checksum ^= cputimer.Burn(clock, burn.Nanoseconds())
		elapsed := sw.Lap()
		ok := cputimer.FloatsEqualWithTolerance(float64(elapsed), float64(burn.Nanoseconds()), 50)
		fmt.Printf("lap %d: %v (within 50%% of %v: %t)\n", i+1, time.Duration(elapsed), burn, ok)
	}
	fmt.Printf("total: %v (checksum %x)\n", time.Duration(sw.Total()), checksum)
	return nil
}
