package view

import (
	"fmt"
	"github.com/logrusorgru/aurora"
	"golife/src/universe"
	"time"
)

//ConsoleOut writes simulation frames to stdout,
//redrawing the whole grid from the universe's text projection on each Refresh
type ConsoleOut struct {
	u         *universe.Universe
	startTime time.Time
}

func NewConsoleOut(u *universe.Universe) *ConsoleOut {
	return &ConsoleOut{u: u, startTime: time.Now()}
}

//Refresh clears the terminal and prints the grid with a status line
func (c *ConsoleOut) Refresh(step int) {
	//cursor home + erase display
	fmt.Print("\033[H\033[2J")
	fmt.Print(c.u.Render())
	fmt.Printf("%s: %v  %s: %v  %s: %v\n",
		aurora.Colorize("Step", aurora.GreenFg), step,
		aurora.Colorize("Live cells", aurora.GreenFg), c.u.Population(),
		aurora.Colorize("Elapsed", aurora.GreenFg), time.Since(c.startTime).Round(time.Millisecond))
}

//Summary prints the final totals after the loop stops
func (c *ConsoleOut) Summary(step int) {
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	fmt.Printf("Finished, iteration is: %v, live cells: %v, total running time: %v\n",
		step, c.u.Population(), totalTime)
}
