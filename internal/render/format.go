package render

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is a figure output format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatTIFF Format = "tiff"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
)

// DefaultDPI is the resolution of raster figures.
const DefaultDPI = 96

// ValidFormats returns the supported output formats.
func ValidFormats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatTIFF, FormatSVG, FormatPDF}
}

// FormatFromPath infers the output format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	case "":
		return "", fmt.Errorf("figure path %q has no extension (supported: %v)", path, ValidFormats())
	default:
		return "", fmt.Errorf("unsupported figure format: %s (supported: %v)", ext, ValidFormats())
	}
}

// IsRaster reports whether the format is a pixel image.
func (f Format) IsRaster() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatTIFF:
		return true
	default:
		return false
	}
}

// canvas is a drawing surface that can serialise itself.
type canvas interface {
	vg.CanvasSizer
	io.WriterTo
}

// newCanvas creates a canvas of the given size for format.
func newCanvas(format Format, w, h vg.Length, dpi int) (canvas, error) {
	if format.IsRaster() {
		img := vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(dpi),
			vgimg.UseBackgroundColor(color.White),
		)
		switch format {
		case FormatPNG:
			return vgimg.PngCanvas{Canvas: img}, nil
		case FormatJPEG:
			return vgimg.JpegCanvas{Canvas: img}, nil
		case FormatTIFF:
			return vgimg.TiffCanvas{Canvas: img}, nil
		}
	}

	switch format {
	case FormatSVG:
		return vgsvg.New(w, h), nil
	case FormatPDF:
		return vgpdf.New(w, h), nil
	default:
		return nil, fmt.Errorf("unsupported figure format: %s", format)
	}
}
