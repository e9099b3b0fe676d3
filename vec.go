package immui

// Vec2 is a 2D integer point or displacement in pixels.
type Vec2 struct {
	X, Y int32
}

// Add returns the componentwise sum of two vectors.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns the componentwise difference of two vectors.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Rect is an axis-aligned rectangle with a signed origin and a
// non-negative extent.
type Rect struct {
	X, Y, W, H int32
}

// Max returns the bottom-right corner of the rectangle (exclusive).
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }

// Contains reports whether p lies within r (inclusive of the top-left
// edge, exclusive of the bottom-right edge).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Area returns the rectangle's area, 0 for degenerate rectangles.
func (r Rect) Area() int64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return int64(r.W) * int64(r.H)
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlapping region of a and b. The result may be
// empty (W or H <= 0) if the rectangles do not overlap.
func Intersect(a, b Rect) Rect {
	x0 := maxI32(a.X, b.X)
	y0 := maxI32(a.Y, b.Y)
	x1 := minI32(a.X+a.W, b.X+b.W)
	y1 := minI32(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether a and b share any positive area.
func Overlaps(a, b Rect) bool {
	return Intersect(a, b).Area() > 0
}

// Expand returns r grown (or shrunk, for negative n) by n pixels on every
// edge.
func (r Rect) Expand(n int32) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Color is a 32-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func clampI32(x, lo, hi int32) int32 {
	return minI32(hi, maxI32(lo, x))
}
