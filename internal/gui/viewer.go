// Package gui implements a graphical replay window for 8-tile
// trajectories. Like the terminal replayer it only reads a recorded
// anneal.Trajectory; the solver core never links against Fyne.
package gui

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/gitrdm/annealkit/pkg/anneal"
	"github.com/gitrdm/annealkit/pkg/tiles"
)

const (
	windowTitle  = "annealkit — 8-tiles replay"
	windowWidth  = 360
	windowHeight = 480

	cellSize         = 84
	cellCornerRadius = 10
	cellFontSize     = 24

	frameDelay = 140 * time.Millisecond
)

var (
	colorCell      = color.NRGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	colorCellBlank = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	colorText      = color.NRGBA{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff}
)

// cell is one board square: a rounded rectangle with a centered number.
type cell struct {
	background *canvas.Rectangle
	label      *canvas.Text
	wrapper    *fyne.Container
}

func newCell() *cell {
	bg := canvas.NewRectangle(colorCell)
	bg.CornerRadius = cellCornerRadius
	lbl := canvas.NewText("", colorText)
	lbl.TextStyle = fyne.TextStyle{Bold: true}
	lbl.TextSize = cellFontSize
	return &cell{
		background: bg,
		label:      lbl,
		wrapper:    container.NewStack(bg, container.NewCenter(lbl)),
	}
}

func (c *cell) setValue(v int) {
	if v == tiles.Blank {
		c.label.Text = ""
		c.background.FillColor = colorCellBlank
	} else {
		c.label.Text = strconv.Itoa(v)
		c.background.FillColor = colorCell
	}
	c.label.Refresh()
	c.background.Refresh()
}

type viewer struct {
	window fyne.Window
	traj   *anneal.Trajectory
	cells  [9]*cell
	index  int

	status *widget.Label

	btnPrev  *widget.Button
	btnNext  *widget.Button
	btnPlay  *widget.Button
	btnReset *widget.Button

	animating  bool
	animCancel chan struct{}
}

// RunTiles opens a window replaying an 8-tiles trajectory and blocks
// until the window closes.
func RunTiles(traj *anneal.Trajectory) error {
	if traj == nil || traj.Len() == 0 {
		return fmt.Errorf("gui: empty trajectory")
	}

	a := app.New()
	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	v := &viewer{
		window: w,
		traj:   traj,
		status: widget.NewLabel(""),
	}

	objects := make([]fyne.CanvasObject, 0, len(v.cells))
	for i := range v.cells {
		c := newCell()
		v.cells[i] = c
		objects = append(objects, c.wrapper)
	}
	grid := container.NewGridWrap(fyne.NewSize(cellSize, cellSize), objects...)

	v.btnPrev = widget.NewButton("Prev", func() { v.step(-1) })
	v.btnNext = widget.NewButton("Next", func() { v.step(1) })
	v.btnPlay = widget.NewButton("Play", func() { v.play() })
	v.btnReset = widget.NewButton("Reset", func() { v.reset() })
	controls := container.NewHBox(v.btnReset, v.btnPrev, v.btnPlay, v.btnNext)

	w.SetContent(container.NewPadded(container.NewBorder(
		nil,
		container.NewVBox(controls, v.status),
		nil,
		nil,
		container.NewCenter(grid),
	)))

	v.paint()
	w.ShowAndRun()
	return nil
}

func (v *viewer) paint() {
	step := v.traj.At(v.index)
	board := step.State.(tiles.State)
	for i, val := range board {
		v.cells[i].setValue(val)
	}
	text := fmt.Sprintf("step %d/%d  cost %d", v.index+1, v.traj.Len(), step.Cost)
	if step.Move != nil {
		text += "  " + step.Move.String()
	}
	if step.Cost == 0 && v.index == v.traj.Len()-1 {
		text += "  solved"
	}
	v.status.SetText(text)
}

func (v *viewer) step(delta int) {
	v.stopAnimation()
	next := v.index + delta
	if next < 0 || next >= v.traj.Len() {
		return
	}
	v.index = next
	v.paint()
}

func (v *viewer) reset() {
	v.stopAnimation()
	v.index = 0
	v.paint()
}

func (v *viewer) play() {
	if v.animating {
		v.stopAnimation()
		return
	}
	v.animating = true
	v.animCancel = make(chan struct{})
	v.btnPlay.SetText("Pause")

	go func(cancel chan struct{}) {
		ticker := time.NewTicker(frameDelay)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				if v.index >= v.traj.Len()-1 {
					v.animating = false
					v.btnPlay.SetText("Play")
					return
				}
				v.index++
				v.paint()
			}
		}
	}(v.animCancel)
}

func (v *viewer) stopAnimation() {
	if !v.animating {
		return
	}
	close(v.animCancel)
	v.animCancel = nil
	v.animating = false
	v.btnPlay.SetText("Play")
}
