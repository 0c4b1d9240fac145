// Package render draws colour scales as a stacked-strip figure or as a
// terminal preview.
package render

import (
	"gonum.org/v1/plot/vg"
)

// Figure geometry, in inches unless noted otherwise.
const (
	// FigureWidth is the width of the figure.
	FigureWidth = 6.4

	topMargin    = 0.35
	bottomMargin = 0.15
	stripHeight  = 0.22

	// stripGap is the space between strips as a fraction of stripHeight.
	stripGap = 0.1

	// Horizontal extent of the strips as fractions of the figure width.
	stripLeft  = 0.2
	stripRight = 0.99

	// labelOffset separates a label from its strip, as a fraction of the
	// strip width.
	labelOffset = 0.01

	// titleOffset lifts the title baseline above the first strip.
	titleOffset = 0.06
)

// FigureHeight returns the figure height in inches for n strips. The height
// grows linearly with n so every strip keeps the same aspect ratio.
func FigureHeight(n int) float64 {
	if n <= 0 {
		return topMargin + bottomMargin
	}
	rows := float64(n)
	return topMargin + bottomMargin + (rows+(rows-1)*stripGap)*stripHeight
}

// Layout positions the strips, labels and title of a figure with a fixed
// number of rows. Coordinates have their origin at the bottom left.
type Layout struct {
	Rows   int
	Width  vg.Length
	Height vg.Length
}

// NewLayout creates the layout for rows strips.
func NewLayout(rows int) Layout {
	return Layout{
		Rows:   rows,
		Width:  vg.Length(FigureWidth) * vg.Inch,
		Height: vg.Length(FigureHeight(rows)) * vg.Inch,
	}
}

// Strip returns the rectangle of strip i, counted from the top.
func (l Layout) Strip(i int) vg.Rectangle {
	h := vg.Length(stripHeight) * vg.Inch
	pitch := h + vg.Length(stripHeight*stripGap)*vg.Inch
	top := l.Height - vg.Length(topMargin)*vg.Inch - vg.Length(i)*pitch

	return vg.Rectangle{
		Min: vg.Point{X: l.Width * stripLeft, Y: top - h},
		Max: vg.Point{X: l.Width * stripRight, Y: top},
	}
}

// LabelPoint returns the anchor of the label of strip i: just left of the
// strip, vertically centred.
func (l Layout) LabelPoint(i int) vg.Point {
	r := l.Strip(i)
	return vg.Point{
		X: r.Min.X - (r.Max.X-r.Min.X)*labelOffset,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}

// TitlePoint returns the anchor of the title: centred above the first strip.
func (l Layout) TitlePoint() vg.Point {
	r := l.Strip(0)
	return vg.Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: r.Max.Y + vg.Length(titleOffset)*vg.Inch,
	}
}
