package scene

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"image"
	"io"
	"os"
	"strings"
)

var ErrFormat = errors.New("unsupported image format")

func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps":
		return true
	}
	return false
}

func pixelsToLength(px int, dpi float64) vg.Length {
	return vg.Points(float64(px) * vg.Inch.Points() / dpi)
}

// NewImage returns a raster canvas of width x height pixels.
func NewImage(width, height int, dpi float64) *vgimg.Canvas {
	return vgimg.NewWith(
		vgimg.UseWH(pixelsToLength(width, dpi), pixelsToLength(height, dpi)),
		vgimg.UseDPI(int(dpi)),
	)
}

// Rasterize replays s onto a fresh raster canvas and returns the image.
func Rasterize(s *Scene, width, height int, dpi float64) image.Image {
	c := NewImage(width, height, dpi)
	s.Replay(NewCanvas(c, dpi))
	return c.Image()
}

// WriterTo renders s into an encoder for format, which is one of png, jpg,
// jpeg, tif, tiff, svg, pdf or eps.
func WriterTo(s *Scene, width, height int, dpi float64, format string) (io.WriterTo, error) {
	w, h := pixelsToLength(width, dpi), pixelsToLength(height, dpi)
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := NewImage(width, height, dpi)
		s.Replay(NewCanvas(c, dpi))
		switch strings.ToLower(format) {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	case "svg":
		c := vgsvg.New(w, h)
		s.Replay(NewCanvas(c, dpi))
		return c, nil
	case "pdf":
		c := vgpdf.New(w, h)
		s.Replay(NewCanvas(c, dpi))
		return c, nil
	case "eps":
		c := vgeps.New(w, h)
		s.Replay(NewCanvas(c, dpi))
		return c, nil
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", format)
	}
}

func Write(s *Scene, width, height int, dpi float64, output io.Writer, format string) error {
	w, err := WriterTo(s, width, height, dpi, format)
	if err != nil {
		return err
	}
	_, err = w.WriteTo(output)
	return errors.Wrapf(err, "write %s", format)
}

func combineErrors(errs ...error) (err error) {
	for _, e := range errs {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

func WriteClose(s *Scene, width, height int, dpi float64, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return Write(s, width, height, dpi, output, format)
}

// Save writes s to path, taking the format from the file extension.
func Save(s *Scene, width, height int, dpi float64, path string) error {
	format := ""
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		format = path[i+1:]
	}
	if !SupportedFormat(format) {
		return errors.Wrapf(ErrFormat, "%q", format)
	}
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteClose(s, width, height, dpi, output, format)
}
