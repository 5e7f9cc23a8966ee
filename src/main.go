package main

import (
	"fmt"
	"github.com/integrii/flaggy"
	"golife/src/universe"
	"golife/src/view"
	"time"
)

//EnvOptions represents the host environment configuration
type EnvOptions struct {
	height      int
	interval    time.Duration
	maxSteps    int
	reseedEvery time.Duration
	interactive bool
}

func main() {
	eo := initOptions()

	u := universe.New(eo.height)
	u.Randomize()

	if eo.interactive {
		v := view.NewConsoleUI(u, eo.interval)
		v.Start()
		return
	}

	fmt.Printf("\"The Life\" game simulation started...\n")
	runLoop(u, eo)
}

//runLoop drives the non-interactive host cycle:
//render a frame, wait one interval, tick, and reseed the universe on a timer
func runLoop(u *universe.Universe, eo *EnvOptions) {
	out := view.NewConsoleOut(u)

	frame := time.NewTicker(eo.interval)
	defer frame.Stop()
	reseed := time.NewTicker(eo.reseedEvery)
	defer reseed.Stop()

	step := 0
	for eo.maxSteps == 0 || step < eo.maxSteps {
		out.Refresh(step)
		<-frame.C
		select {
		case <-reseed.C:
			u.Randomize()
		default:
		}
		u.Tick()
		step++
	}
	out.Summary(step)
}

func initOptions() (eo *EnvOptions) {

	eo = &EnvOptions{
		height:      48,
		interval:    time.Millisecond * 100,
		maxSteps:    1000,
		reseedEvery: time.Second * 10,
	}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&eo.height, "y", "height", "Height of the universe in cells (the width is fixed at 64)")
	flaggy.Duration(&eo.interval, "i", "interval", "Delay between generations in format the number with 'ms' suffix, for example 100ms")
	flaggy.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps (0 means no limit)")
	flaggy.Duration(&eo.reseedEvery, "t", "reseed", "How often the universe is randomized again")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")

	flaggy.Parse()

	return
}
