package view

import (
	"bytes"
	"fmt"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"golife/src/universe"
	"log"
	"strings"
	"sync"
	"time"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer.
//It owns the run cadence and serializes every universe call with a mutex,
//since the engine gives no reentrancy guarantee of its own.
//The field is drawn from the raw cell buffer rather than the text projection.
type ConsoleUI struct {
	u          *universe.Universe
	g          *gocui.Gui
	k          []keyBinding
	mu         sync.Mutex
	running    bool
	step       int
	interval   time.Duration
	liveFiller string
	deadFiller string
	stopCh     chan struct{}
}

var runningStateDescr = map[bool]string{
	false: aurora.Colorize("waiting", aurora.BlueFg).String(),
	true:  aurora.Colorize("running", aurora.CyanFg).String(),
}

func NewConsoleUI(u *universe.Universe, interval time.Duration) *ConsoleUI {

	var err error
	t := ConsoleUI{
		u:          u,
		interval:   interval,
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
		stopCh:     make(chan struct{}),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next generation",
			t.cmdNextGeneration,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Randomize",
			t.cmdRandomize,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the terminal main loop and blocks until exit
func (t *ConsoleUI) Start() {
	go t.runLoop()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		t.g.Close()
		log.Panicln(err)
	}
	close(t.stopCh)
	t.g.Close()
}

//runLoop advances the simulation on the interval cadence while running is set
func (t *ConsoleUI) runLoop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stopCh:
			return
		case <-ticker.C:
			t.mu.Lock()
			advanced := t.running
			if advanced {
				t.u.Tick()
				t.step++
			}
			t.mu.Unlock()
			if advanced {
				t.Refresh()
			}
		}
	}
}

//Refresh schedules a redraw of the field and the status pane
func (t *ConsoleUI) Refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		t.mu.Lock()
		defer t.mu.Unlock()
		if v, e := g.View("battlefield"); e == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, t.renderField(v))
		}
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.u.Width(), t.u.Height()))
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", t.step))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", t.u.Population()))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[t.running]))
		}
		return nil
	})
}

//renderField draws the grid from the raw cell buffer, one filler per cell,
//cropped to the view size. The caller must hold the mutex.
func (t *ConsoleUI) renderField(v *gocui.View) string {
	cells := t.u.Cells()
	w, h := t.u.Width(), t.u.Height()

	crop := false
	maxW, maxH := v.Size()
	if w > maxW || h > maxH {
		crop = true
	}

	var b bytes.Buffer

	for row := 0; row < h; row++ {
		if row >= maxH {
			break
		}
		//line feed char
		if row != 0 {
			b.WriteByte(10)
		}
		if crop && row == (maxH-1) {
			b.WriteString(aurora.Red("The universe is larger than the viewing area").BgBlack().String())
			break
		}
		for column := 0; column < w; column++ {
			if column >= maxW {
				break
			}
			if cells[row*w+column] == universe.Alive {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	t.Refresh()
	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextGeneration(_ *gocui.View) error {
	t.mu.Lock()
	if !t.running {
		t.u.Tick()
		t.step++
	}
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.mu.Lock()
	t.running = true
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.mu.Lock()
	t.u.Clear()
	t.step = 0
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.mu.Lock()
	t.u.Randomize()
	t.step = 0
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.mu.Lock()
	t.u.Toggle(cy, cx)
	t.mu.Unlock()
	t.Refresh()
	return nil
}
