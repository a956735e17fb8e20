package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    colorMode
		wantErr bool
	}{
		{"", colorAuto, false},
		{"auto", colorAuto, false},
		{"ALWAYS", colorAlways, false},
		{"never", colorNever, false},
		{"sometimes", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColorMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorModeExplicit(t *testing.T) {
	if !colorAlways.enabled(-1) {
		t.Error("always should be enabled")
	}
	if colorNever.enabled(-1) {
		t.Error("never should be disabled")
	}
	if colorAuto.enabled(-1) {
		t.Error("auto should be disabled for an invalid descriptor")
	}
}

func TestTraceFormatPlain(t *testing.T) {
	tr := &tracer{}
	got := tr.format("Demo", "key", "Escape Press raw=0x1b")
	want := "Demo             key      Escape Press raw=0x1b"
	if got != want {
		t.Errorf("format =\n%q\nwant\n%q", got, want)
	}
}

func TestTraceFormatTruncatesTitle(t *testing.T) {
	tr := &tracer{}
	got := tr.format(strings.Repeat("w", 40), "init", "")
	title := strings.Fields(got)[0]
	if w := ansi.StringWidth(title); w > titleColumn {
		t.Errorf("title occupies %d cells, want at most %d", w, titleColumn)
	}
}

func TestTraceFormatColorStripsToPlain(t *testing.T) {
	plain := (&tracer{}).format("Demo", "closed", "")
	colored := (&tracer{color: true}).format("Demo", "closed", "")
	if colored == plain {
		t.Fatal("color output has no escape sequences")
	}
	if got := ansi.Strip(colored); got != plain {
		t.Errorf("stripped = %q, want %q", got, plain)
	}
}

func TestTraceEventWritesLine(t *testing.T) {
	var buf bytes.Buffer
	tr := &tracer{out: &buf}
	tr.event("Demo", "resize", "%vx%v", float32(800), float32(600))
	if got := buf.String(); !strings.HasSuffix(got, "resize   800x600\n") {
		t.Errorf("line = %q", got)
	}
}
