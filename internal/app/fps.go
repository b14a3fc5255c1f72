package app

import "time"

// fpsCounter reports the frames drawn during the last full second
type fpsCounter struct {
	start  time.Time
	frames int
	fps    int
}

// tick counts a frame drawn at now and returns the current rate
func (c *fpsCounter) tick(now time.Time) int {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	if elapsed := now.Sub(c.start); elapsed >= time.Second {
		c.fps = int(float64(c.frames) / elapsed.Seconds())
		c.frames = 0
		c.start = now
	}

	return c.fps
}
