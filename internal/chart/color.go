package chart

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

var (
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// ParseColor parses "#rgb" or "#rrggbb".
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, 255}, nil
}

// Hex returns the color as "#rrggbb"; alpha is dropped.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Visible reports whether the color has any opacity.
func (c Color) Visible() bool { return c.A > 0 }

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) { return c.Hex(), nil }

// Stroke is a line width in pixels and a color.
type Stroke struct {
	Width float64 `yaml:"width"`
	Color Color   `yaml:"color"`
}

// NewStroke returns a Stroke.
func NewStroke(width float64, color Color) Stroke {
	return Stroke{Width: width, Color: color}
}

// Visible reports whether the stroke paints anything.
func (s Stroke) Visible() bool { return s.Width > 0 && s.Color.Visible() }
