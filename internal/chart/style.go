package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tinytelemetry/diagviz/internal/model"
	"gopkg.in/yaml.v3"
)

// Baseline selects the lower bound of the y axis.
type Baseline int

const (
	// BaselineMin stretches the series between its own minimum and maximum.
	BaselineMin Baseline = iota
	// BaselineZero anchors the axis at zero.
	BaselineZero
)

func (b Baseline) String() string {
	if b == BaselineZero {
		return "zero"
	}
	return "min"
}

// ParseBaseline accepts "min" or "zero".
func ParseBaseline(s string) (Baseline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min":
		return BaselineMin, nil
	case "zero", "0":
		return BaselineZero, nil
	}
	return BaselineMin, fmt.Errorf("unknown baseline %q (want min or zero)", s)
}

func (b *Baseline) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseBaseline(node.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b Baseline) MarshalYAML() (any, error) { return b.String(), nil }

// Style is shared by every chart drawn by one visualizer.
type Style struct {
	TextColor       Color    `yaml:"text_color"`
	RectangleStroke Stroke   `yaml:"rectangle_stroke"`
	LineStroke      Stroke   `yaml:"line_stroke"`
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	Baseline        Baseline `yaml:"baseline"`
}

// DefaultStyle is white text and strokes on a 200x100 box.
func DefaultStyle() Style {
	return Style{
		TextColor:       White,
		RectangleStroke: NewStroke(1, White),
		LineStroke:      NewStroke(1, White),
		Width:           model.DefaultChartWidth,
		Height:          model.DefaultChartHeight,
		Baseline:        BaselineMin,
	}
}

// Validate rejects boxes that cannot be drawn.
func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("chart box %gx%g must be positive", s.Width, s.Height)
	}
	return nil
}

// DecodeStyle reads a YAML style on top of DefaultStyle. Unknown keys are
// rejected.
func DecodeStyle(r io.Reader) (Style, error) {
	style := DefaultStyle()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil && !errors.Is(err, io.EOF) {
		return Style{}, fmt.Errorf("decoding style: %w", err)
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// LoadStyle reads a style file. An empty path returns DefaultStyle.
func LoadStyle(path string) (Style, error) {
	if path == "" {
		return DefaultStyle(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("reading style %s: %w", path, err)
	}
	return DecodeStyle(bytes.NewReader(data))
}
