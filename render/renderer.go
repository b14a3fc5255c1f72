// Package render draws a scene as a perspective wireframe in the terminal.
package render

import (
	"fmt"
	"image/color"

	"github.com/akmonengine/boxcollide"
	"github.com/akmonengine/boxcollide/actor"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mattn/go-runewidth"
)

const (
	HelpText = "Move player with cursors to collide"

	gridSlices   = 10
	gridSpacing  = 1.0
	sphereRings  = 8
	sphereSlices = 16
	// noseLength is how far the heading marker sticks out of the player box
	noseLength = 0.6
)

// Renderer owns the terminal screen layout: 3D view on top, status line on the last row
type Renderer struct {
	screen     tcell.Screen
	title      string
	cellAspect float64

	background tcell.Style
}

// NewRenderer creates a renderer. cellAspect is the height/width ratio of a terminal cell.
func NewRenderer(screen tcell.Screen, title string, cellAspect float64) *Renderer {
	if cellAspect <= 0 {
		cellAspect = 2
	}

	return &Renderer{
		screen:     screen,
		title:      title,
		cellAspect: cellAspect,
		background: tcell.StyleDefault.Background(toColor(boxcollide.ColorRayWhite)),
	}
}

// Draw renders one frame of the scene and shows it
func (r *Renderer) Draw(scene *boxcollide.Scene, fps int) {
	width, height := r.screen.Size()
	r.screen.Fill(' ', r.background)

	if viewHeight := height - 1; width > 0 && viewHeight > 0 {
		aspect := float64(width) / (float64(viewHeight) * r.cellAspect)
		c := canvas{
			screen: r.screen,
			mvp:    scene.Camera.Projection(aspect).Mul4(scene.Camera.View()),
			width:  width,
			height: viewHeight,
		}

		c.grid(gridSlices, gridSpacing, r.fg(boxcollide.ColorGray), r.fg(boxcollide.ColorLightGray))
		for _, obstacle := range scene.Obstacles {
			r.drawObstacle(c, obstacle)
		}
		r.drawPlayer(c, scene)

		r.text((width-runewidth.StringWidth(HelpText))/2, min(2, viewHeight-1), HelpText, r.fg(boxcollide.ColorGray))
		r.text(1, 0, fmt.Sprintf("%d FPS", fps), r.fg(fpsColor(fps)))
	}

	if height > 0 {
		r.drawStatusLine(scene, width, height-1)
	}

	r.screen.Show()
}

func (r *Renderer) drawObstacle(c canvas, body *actor.Body) {
	style := r.fg(boxcollide.ColorDarkGray)
	if body.IsTrigger {
		style = r.fg(boxcollide.ColorGold)
	}

	switch shape := body.Shape.(type) {
	case *actor.Box:
		c.box(body.Transform.Position, shape.HalfExtents, body.Transform.Rotation, style)
	case *actor.Sphere:
		c.sphere(body.Transform.Position, shape.Radius, sphereRings, sphereSlices, style)
	}
}

// drawPlayer draws the collision box, which never rotates, and a heading marker following the model yaw
func (r *Renderer) drawPlayer(c canvas, scene *boxcollide.Scene) {
	style := r.fg(scene.PlayerColor).Bold(true)
	box := scene.PlayerBox()
	center := box.Center()

	c.box(center, box.HalfExtents(), mgl64.QuatIdent(), style)

	forward := scene.ModelRotation().Rotate(mgl64.Vec3{0, 0, 1})
	tip := center.Add(forward.Mul(box.HalfExtents().Z() + noseLength))
	c.line3(center, tip, 0, style)
	if p, ok := c.project(tip); ok {
		c.set(int(p.X()), int(p.Y()), '*', style)
	}
}

func (r *Renderer) drawStatusLine(scene *boxcollide.Scene, width, y int) {
	style := tcell.StyleDefault.
		Background(toColor(boxcollide.ColorDarkGray)).
		Foreground(toColor(boxcollide.ColorRayWhite))
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	r.text(1, y, r.title, style)

	state := "clear"
	stateStyle := style.Foreground(toColor(boxcollide.ColorGreen))
	if scene.Colliding {
		state = "collision"
		stateStyle = style.Foreground(toColor(boxcollide.ColorRed))
	}
	r.text(width-runewidth.StringWidth(state)-1, y, state, stateStyle)
}

// text writes s starting at x, wide runes take two cells
func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	width, height := r.screen.Size()
	if y < 0 || y >= height {
		return
	}
	for _, ch := range s {
		if x >= width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += max(1, runewidth.RuneWidth(ch))
	}
}

func (r *Renderer) fg(c color.RGBA) tcell.Style {
	return r.background.Foreground(toColor(c))
}

// fpsColor follows the usual FPS counter thresholds
func fpsColor(fps int) color.RGBA {
	switch {
	case fps < 15:
		return boxcollide.ColorRed
	case fps < 30:
		return boxcollide.ColorOrange
	}
	return boxcollide.ColorLime
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
