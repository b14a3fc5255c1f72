package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// nearW rejects points on or behind the camera plane
const nearW = 1e-6

// canvas rasterizes world space lines onto a rectangle of terminal cells
type canvas struct {
	screen        tcell.Screen
	mvp           mgl64.Mat4
	width, height int
}

// project maps a world point to cell coordinates. ok is false for points behind the camera.
func (c canvas) project(p mgl64.Vec3) (mgl64.Vec2, bool) {
	clip := c.mvp.Mul4x1(p.Vec4(1))
	if clip.W() <= nearW {
		return mgl64.Vec2{}, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * float64(c.width),
		(1 - ndc.Y()) / 2 * float64(c.height),
	}, true
}

// line3 draws a world space segment. Segments crossing the camera plane are dropped.
// glyph 0 picks a character from the slope.
func (c canvas) line3(a, b mgl64.Vec3, glyph rune, style tcell.Style) {
	pa, okA := c.project(a)
	pb, okB := c.project(b)
	if !okA || !okB {
		return
	}
	c.line(pa, pb, glyph, style)
}

// line is Bresenham between two cell positions
func (c canvas) line(a, b mgl64.Vec2, glyph rune, style tcell.Style) {
	x0, y0 := int(math.Floor(a.X())), int(math.Floor(a.Y()))
	x1, y1 := int(math.Floor(b.X())), int(math.Floor(b.Y()))

	dx, dy := abs(x1-x0), -abs(y1-y0)
	// projections close to the camera plane explode, nothing of them would be visible anyway
	if dx-dy > 8*(c.width+c.height) {
		return
	}

	if glyph == 0 {
		glyph = slopeGlyph(x1-x0, y1-y0)
	}

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.set(x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c canvas) set(x, y int, glyph rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, glyph, nil, style)
}

// box draws the 12 edges of an oriented box
func (c canvas) box(center, halfExtents mgl64.Vec3, rotation mgl64.Quat, style tcell.Style) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		local := halfExtents
		if i&1 == 0 {
			local[0] = -local[0]
		}
		if i&2 == 0 {
			local[1] = -local[1]
		}
		if i&4 == 0 {
			local[2] = -local[2]
		}
		corners[i] = center.Add(rotation.Rotate(local))
	}

	for i := range corners {
		for _, bit := range [...]int{1, 2, 4} {
			if i&bit == 0 {
				c.line3(corners[i], corners[i|bit], 0, style)
			}
		}
	}
}

// sphere draws latitude rings and meridians
func (c canvas) sphere(center mgl64.Vec3, radius float64, rings, slices int, style tcell.Style) {
	for r := 1; r < rings; r++ {
		lat := math.Pi * (float64(r)/float64(rings) - 0.5)
		y := radius * math.Sin(lat)
		ringRadius := radius * math.Cos(lat)
		c.circle(func(angle float64) mgl64.Vec3 {
			return center.Add(mgl64.Vec3{ringRadius * math.Cos(angle), y, ringRadius * math.Sin(angle)})
		}, slices, style)
	}

	for s := 0; s < slices/2; s++ {
		lon := math.Pi * float64(s) / float64(slices/2)
		c.circle(func(angle float64) mgl64.Vec3 {
			return center.Add(mgl64.Vec3{
				radius * math.Cos(angle) * math.Cos(lon),
				radius * math.Sin(angle),
				radius * math.Cos(angle) * math.Sin(lon),
			})
		}, slices, style)
	}
}

func (c canvas) circle(point func(angle float64) mgl64.Vec3, segments int, style tcell.Style) {
	prev := point(0)
	for i := 1; i <= segments; i++ {
		next := point(2 * math.Pi * float64(i) / float64(segments))
		c.line3(prev, next, '.', style)
		prev = next
	}
}

// grid draws slices lines along X and Z on the y=0 plane, centered on the origin
func (c canvas) grid(slices int, spacing float64, axis, other tcell.Style) {
	half := slices / 2
	extent := float64(half) * spacing

	for i := -half; i <= half; i++ {
		style := other
		if i == 0 {
			style = axis
		}
		offset := float64(i) * spacing
		c.line3(mgl64.Vec3{offset, 0, -extent}, mgl64.Vec3{offset, 0, extent}, '.', style)
		c.line3(mgl64.Vec3{-extent, 0, offset}, mgl64.Vec3{extent, 0, offset}, '.', style)
	}
}

// slopeGlyph picks an ASCII stroke for a segment, y grows downward
func slopeGlyph(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '+'
	case abs(dy)*2 < abs(dx):
		return '-'
	case abs(dx)*2 < abs(dy):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
