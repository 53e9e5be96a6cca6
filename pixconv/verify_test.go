package pixconv

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestVerifyEmpty(t *testing.T) {
	var buf bytes.Buffer
	if !Verify(&buf, nil, nil, 0) {
		t.Error("Verify(n=0) = false, want vacuous true")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestVerifyPass(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := []byte{1, 2, 3, 5, 6, 7}
	var buf bytes.Buffer
	if !Verify(&buf, src, dst, 2) {
		t.Error("Verify rejected a correct conversion")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestVerifyMismatch(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	dst := []byte{1, 2, 3, 5, 0, 7, 0, 0, 0}

	var buf bytes.Buffer
	if Verify(&buf, src, dst, 3) {
		t.Fatal("Verify accepted a wrong conversion")
	}

	out := buf.String()
	wantLines := []string{
		"rgba: [1 2 3 4 | 5 6 7 8 | 9 10 11 12 | ]",
		"rgb: [1 2 3 | 5 0 7 | 0 0 0 | ]",
		"Mismatch at i=1: RGBA(5, 6, 7, 8) but got RGB(5, 0, 7)",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Scanning stops at the first mismatch.
	if strings.Count(out, "Mismatch") != 1 {
		t.Errorf("expected exactly one mismatch line:\n%s", out)
	}
}

func TestVerifyNilWriter(t *testing.T) {
	if Verify(nil, []byte{1, 2, 3, 4}, []byte{0, 0, 0}, 1) {
		t.Error("Verify accepted a wrong conversion")
	}
}

func TestFirstMismatchIgnoresAlpha(t *testing.T) {
	src := []byte{9, 9, 9, 0, 9, 9, 9, 255}
	dst := []byte{9, 9, 9, 9, 9, 9}
	if m, bad := FirstMismatch(src, dst, 2); bad {
		t.Errorf("unexpected mismatch %v", m)
	}
}

func TestFirstMismatchFields(t *testing.T) {
	m, bad := FirstMismatch([]byte{10, 20, 30, 40}, []byte{10, 21, 30}, 1)
	if !bad {
		t.Fatal("mismatch not detected")
	}
	want := Mismatch{Index: 0, R: 10, G: 20, B: 30, A: 40, GotR: 10, GotG: 21, GotB: 30}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestVerifyLogsMismatch(t *testing.T) {
	var logBuf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Verify(nil, []byte{1, 2, 3, 4}, []byte{0, 0, 0}, 1)

	if !strings.Contains(logBuf.String(), "conversion mismatch") {
		t.Errorf("mismatch not logged: %q", logBuf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}
