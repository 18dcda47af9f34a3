package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeStyle_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	style, err := DecodeStyle(strings.NewReader(`
text_color: "#ff8800"
line_stroke:
  width: 2
  color: "#0f0"
height: 60
baseline: zero
`))
	if err != nil {
		t.Fatalf("DecodeStyle error = %v", err)
	}
	if style.TextColor != (Color{255, 136, 0, 255}) {
		t.Fatalf("TextColor = %+v", style.TextColor)
	}
	if style.LineStroke != NewStroke(2, Color{0, 255, 0, 255}) {
		t.Fatalf("LineStroke = %+v", style.LineStroke)
	}
	if style.Width != 200 || style.Height != 60 {
		t.Fatalf("box = %vx%v, want 200x60", style.Width, style.Height)
	}
	if style.RectangleStroke != NewStroke(1, White) {
		t.Fatalf("RectangleStroke = %+v, want default", style.RectangleStroke)
	}
	if style.Baseline != BaselineZero {
		t.Fatalf("Baseline = %v, want zero", style.Baseline)
	}
}

func TestDecodeStyle_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key": "colour: red\n",
		"bad color":   "text_color: \"nope\"\n",
		"bad box":     "width: 0\n",
		"bad anchor":  "baseline: middle\n",
	}
	for name, doc := range cases {
		if _, err := DecodeStyle(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: DecodeStyle accepted %q", name, doc)
		}
	}
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	style, err := LoadStyle("")
	if err != nil || style != DefaultStyle() {
		t.Fatalf("LoadStyle(\"\") = %+v, %v; want defaults", style, err)
	}

	path := filepath.Join(t.TempDir(), "style.yml")
	if err := os.WriteFile(path, []byte("width: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	style, err = LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle error = %v", err)
	}
	if style.Width != 120 {
		t.Fatalf("Width = %v, want 120", style.Width)
	}

	if _, err := LoadStyle(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("LoadStyle of a missing file succeeded")
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := ParseColor("#1a2b3c")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Hex(); got != "#1a2b3c" {
		t.Fatalf("Hex() = %q, want #1a2b3c", got)
	}
}
