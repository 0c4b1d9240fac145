package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colorscales/internal/colormap"
	"github.com/jmylchreest/colorscales/internal/colour"
	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultTitle is the title drawn above the first strip.
const DefaultTitle = "color scales"

const (
	titleFontSize = 14
	labelFontSize = 10

	// gradientRows mirrors a two-row gradient image; it only sets the
	// source aspect before scaling.
	gradientRows = 2
)

// Renderer draws colour scales as horizontal gradient strips.
type Renderer struct {
	registry *colormap.Registry
	logger   hclog.Logger

	// Title is drawn above the first strip. Empty disables it.
	Title string
	// DPI is the resolution of raster output.
	DPI int
	// Samples is the number of gradient steps per strip.
	Samples int
}

// NewRenderer creates a Renderer that resolves names with reg.
// A nil logger discards all output.
func NewRenderer(reg *colormap.Registry, logger hclog.Logger) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Renderer{
		registry: reg,
		logger:   logger.Named("render"),
		Title:    DefaultTitle,
		DPI:      DefaultDPI,
		Samples:  colormap.DefaultSamples,
	}
}

// RenderFile renders names to path; the format follows the file extension.
// Names are validated before the file is created.
func (r *Renderer) RenderFile(path string, names []string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := r.registry.Validate(names); err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create figure file: %w", err)
	}

	renderErr := r.Render(f, format, names)
	closeErr := f.Close()

	if renderErr != nil {
		return renderErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close figure file: %w", closeErr)
	}

	r.logger.Info("rendered figure", "path", path, "format", format, "colorscales", len(names))
	return nil
}

// Render draws one strip per name and writes the figure to w.
func (r *Renderer) Render(w io.Writer, format Format, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("no colour scales to render")
	}

	strips := make([]image.Image, len(names))
	for i, name := range names {
		cm, err := r.registry.Lookup(name)
		if err != nil {
			return err
		}
		colours, err := colormap.Sample(cm, r.Samples)
		if err != nil {
			return fmt.Errorf("failed to sample %s: %w", name, err)
		}
		strips[i] = GradientImage(colours, gradientRows)
	}

	layout := NewLayout(len(names))
	c, err := newCanvas(format, layout.Width, layout.Height, r.DPI)
	if err != nil {
		return err
	}
	r.logger.Debug("drawing figure", "format", format, "width", layout.Width, "height", layout.Height)

	dc := draw.New(c)
	if !format.IsRaster() {
		fillBackground(dc, color.White)
	}

	if r.Title != "" {
		dc.FillText(textStyle(titleFontSize, text.XCenter, text.YBottom), layout.TitlePoint(), r.Title)
	}

	labelStyle := textStyle(labelFontSize, text.XRight, text.YCenter)
	for i, name := range names {
		rect := layout.Strip(i)
		dc.DrawImage(rect, r.scaleStrip(strips[i], rect))
		dc.FillText(labelStyle, layout.LabelPoint(i), name)
		r.logger.Trace("drew strip", "colorscale", name, "row", i)
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s figure: %w", format, err)
	}
	return nil
}

// scaleStrip upscales a gradient to the pixel size of rect with
// nearest-neighbour sampling so sample boundaries stay sharp.
func (r *Renderer) scaleStrip(src image.Image, rect vg.Rectangle) image.Image {
	size := rect.Size()
	dpi := float64(r.DPI)
	w := int(math.Ceil(size.X.Dots(dpi)))
	h := int(math.Ceil(size.Y.Dots(dpi)))
	if w <= 0 || h <= 0 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// GradientImage returns an image with one column per colour and the given
// number of identical rows.
func GradientImage(colours []colour.RGB, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(colours), rows))
	for x, c := range colours {
		px := c.RGBA()
		for y := 0; y < rows; y++ {
			img.SetRGBA(x, y, px)
		}
	}
	return img
}

func textStyle(size float64, xAlign text.XAlignment, yAlign text.YAlignment) text.Style {
	fnt := plot.DefaultFont
	fnt.Size = vg.Points(size)
	return text.Style{
		Color:   color.Black,
		Font:    fnt,
		XAlign:  xAlign,
		YAlign:  yAlign,
		Handler: plot.DefaultTextHandler,
	}
}

func fillBackground(dc draw.Canvas, c color.Color) {
	r := dc.Rectangle
	dc.FillPolygon(c, []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	})
}
