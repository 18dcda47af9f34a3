package chart

// Vec2 is a point or size in surface pixels. Y grows downward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// RectFromMinSize builds a Rect from its top-left corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) LeftTop() Vec2    { return r.Min }
func (r Rect) LeftBottom() Vec2 { return Vec2{r.Min.X, r.Max.Y} }
func (r Rect) RightCenter() Vec2 {
	return Vec2{r.Max.X, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Remap linearly maps v from [fromLo, fromHi] to [toLo, toHi]. An empty
// source range maps everything to toLo.
func Remap(v, fromLo, fromHi, toLo, toHi float64) float64 {
	if fromHi == fromLo {
		return toLo
	}
	return toLo + (v-fromLo)*(toHi-toLo)/(fromHi-fromLo)
}
