package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ProgressBar is a thin two-layer load indicator: a background track and a
// foreground fill whose width is the progress fraction of the track. Values
// outside [0,1] are clamped, not rejected.
type ProgressBar struct {
	widget.BaseWidget

	progress float64
}

// NewProgressBar creates a progress bar at zero
func NewProgressBar() *ProgressBar {
	p := &ProgressBar{}
	p.ExtendBaseWidget(p)
	return p
}

// SetProgress updates the displayed fraction, clamping it to [0,1]
func (p *ProgressBar) SetProgress(value float64) {
	p.progress = clampProgress(value)
	p.Refresh()
}

// Progress returns the current clamped fraction
func (p *ProgressBar) Progress() float64 {
	return p.progress
}

// CreateRenderer implements fyne.Widget
func (p *ProgressBar) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 40})
	fill := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	return &progressBarRenderer{bar: p, track: track, fill: fill}
}

// clampProgress limits a progress value to [0,1]
func clampProgress(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

type progressBarRenderer struct {
	bar   *ProgressBar
	track *canvas.Rectangle
	fill  *canvas.Rectangle
}

func (r *progressBarRenderer) Layout(size fyne.Size) {
	r.track.Resize(size)
	r.track.Move(fyne.NewPos(0, 0))
	r.fill.Resize(fyne.NewSize(size.Width*float32(r.bar.progress), size.Height))
	r.fill.Move(fyne.NewPos(0, 0))
}

func (r *progressBarRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, ProgressBarHeight)
}

func (r *progressBarRenderer) Refresh() {
	r.Layout(r.bar.Size())
	canvas.Refresh(r.bar)
}

func (r *progressBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.fill}
}

func (r *progressBarRenderer) Destroy() {}
