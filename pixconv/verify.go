package pixconv

import (
	"bufio"
	"fmt"
	"io"
)

// Mismatch describes the first pixel whose RGB bytes differ from the
// RGBA source.
type Mismatch struct {
	Index      int
	R, G, B, A byte // source pixel
	GotR       byte
	GotG       byte
	GotB       byte
}

func (m Mismatch) String() string {
	return fmt.Sprintf("Mismatch at i=%d: RGBA(%d, %d, %d, %d) but got RGB(%d, %d, %d)",
		m.Index, m.R, m.G, m.B, m.A, m.GotR, m.GotG, m.GotB)
}

// FirstMismatch scans pixels 0..n-1 and returns the first one where dst
// does not hold the R, G, B bytes of src. Alpha is not compared.
func FirstMismatch(src, dst []byte, n int) (Mismatch, bool) {
	for i := 0; i < n; i++ {
		s := src[i*4 : i*4+4 : i*4+4]
		d := dst[i*3 : i*3+3 : i*3+3]
		if s[0] != d[0] || s[1] != d[1] || s[2] != d[2] {
			return Mismatch{
				Index: i,
				R:     s[0], G: s[1], B: s[2], A: s[3],
				GotR: d[0], GotG: d[1], GotB: d[2],
			}, true
		}
	}
	return Mismatch{}, false
}

// Verify reports whether dst is a correct conversion of the first n pixels
// of src. On the first mismatch it writes a dump of both buffers followed
// by a line naming the offending pixel to w, and stops scanning. A nil w
// discards the diagnostics. n == 0 always verifies.
func Verify(w io.Writer, src, dst []byte, n int) bool {
	m, bad := FirstMismatch(src, dst, n)
	if !bad {
		return true
	}

	Logger().Warn("pixconv: conversion mismatch", "pixel", m.Index, "pixels", n)

	if w != nil {
		bw := bufio.NewWriter(w)
		dumpBuffers(bw, src, dst, n)
		fmt.Fprintln(bw, m)
		_ = bw.Flush()
	}
	return false
}

// dumpBuffers writes every channel of both buffers, one pixel per "|"
// separated group.
func dumpBuffers(w io.Writer, src, dst []byte, n int) {
	io.WriteString(w, "rgba: [")
	for i, v := range src[:n*4] {
		fmt.Fprintf(w, "%d ", v)
		if (i+1)%4 == 0 {
			io.WriteString(w, "| ")
		}
	}
	io.WriteString(w, "]\nrgb: [")
	for i, v := range dst[:n*3] {
		fmt.Fprintf(w, "%d ", v)
		if (i+1)%3 == 0 {
			io.WriteString(w, "| ")
		}
	}
	io.WriteString(w, "]\n")
}
