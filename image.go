package imageset

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"

	"github.com/kiteco/imageset/errors"
)

// Image is a packed row-major RGB pixel matrix with 3 bytes per pixel.
type Image struct {
	Rows int
	Cols int
	Pix  []uint8
}

// NewImage allocates a zeroed rows x cols image.
func NewImage(rows, cols int) Image {
	return Image{Rows: rows, Cols: cols, Pix: make([]uint8, rows*cols*3)}
}

// At returns the red, green, and blue components of the pixel at (row, col).
func (m Image) At(row, col int) (r, g, b uint8) {
	i := (row*m.Cols + col) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// LoadAndResize decodes the image at path and returns it as a rows x cols
// pixel matrix. An image whose decoded dimensions already match is returned
// unchanged; anything else is stretched to exactly (rows, cols) with bilinear
// interpolation, ignoring the source aspect ratio.
func LoadAndResize(path string, rows, cols int) (Image, error) {
	if rows <= 0 || cols <= 0 {
		return Image{}, errors.Errorf("invalid target size %dx%d", rows, cols)
	}

	f, err := os.Open(path)
	if err != nil {
		return Image{}, errors.Wrapf(err, "error opening %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return Image{}, errors.Wrapf(err, "error decoding %s", path)
	}

	if bounds := src.Bounds(); bounds.Dx() != cols || bounds.Dy() != rows {
		src = imaging.Resize(src, cols, rows, imaging.Linear)
	}
	return fromImage(src), nil
}

// fromImage converts a decoded image into the packed RGB representation,
// dropping any alpha channel.
func fromImage(src image.Image) Image {
	nrgba := imaging.Clone(src)
	out := NewImage(nrgba.Rect.Dy(), nrgba.Rect.Dx())
	j := 0
	for i := 0; i < len(nrgba.Pix); i += 4 {
		out.Pix[j] = nrgba.Pix[i]
		out.Pix[j+1] = nrgba.Pix[i+1]
		out.Pix[j+2] = nrgba.Pix[i+2]
		j += 3
	}
	return out
}
