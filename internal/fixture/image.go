package fixture

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// FromImageFile decodes the image at path and resamples it to width x
// height with Catmull-Rom filtering. The result is tightly packed
// (Stride == 4*width), so its Pix slice can be used directly as an RGBA
// source buffer. A width or height of 0 keeps the decoded size.
func FromImageFile(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("fixture: decode %s: %w", path, err)
	}

	return Resample(src, width, height), nil
}

// Resample draws src into a new width x height RGBA image. A width or
// height of 0 keeps the source dimension.
func Resample(src image.Image, width, height int) *image.RGBA {
	b := src.Bounds()
	if width <= 0 {
		width = b.Dx()
	}
	if height <= 0 {
		height = b.Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == b.Dx() && height == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Gradient returns a width x height image with a horizontal red ramp, a
// vertical green ramp, a diagonal blue ramp and a checkerboard alpha.
func Gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = byte(x)
			img.Pix[i+1] = byte(y)
			img.Pix[i+2] = byte(x + y)
			img.Pix[i+3] = byte(((x / 8) + (y / 8)) % 2 * 255)
		}
	}
	return img
}
