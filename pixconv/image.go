package pixconv

import "image"

// ImageToRGB converts the pixels of img inside img.Rect to packed RGB, row
// by row, and returns the result. dst is reused when it has room for
// Dx*Dy*3 bytes, otherwise a new buffer is allocated.
//
// Tightly packed images (Stride == 4*Dx) are converted in a single call;
// sub-images and padded strides are converted one row at a time.
func ImageToRGB(dst []byte, img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	size := w * h * 3
	if cap(dst) < size {
		dst = make([]byte, size)
	}
	dst = dst[:size]
	if size == 0 {
		return dst
	}

	start := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)
	if img.Stride == w*4 {
		Convert(dst, img.Pix[start:], w*h)
		return dst
	}

	for y := 0; y < h; y++ {
		row := start + y*img.Stride
		Convert(dst[y*w*3:(y+1)*w*3], img.Pix[row:row+w*4], w)
	}
	return dst
}
