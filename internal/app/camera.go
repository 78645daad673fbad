package app

type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel
}

// Clamp keeps the view inside the board, centring an axis when the
// whole board fits on screen along it.
func (c *Camera) Clamp(worldW, worldH, fbW, fbH int) {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	halfW := float64(fbW) / (2.0 * c.Zoom)
	halfH := float64(fbH) / (2.0 * c.Zoom)

	minX := halfW
	maxX := float64(worldW) - halfW
	minY := halfH
	maxY := float64(worldH) - halfH

	if minX > maxX {
		c.X = float64(worldW) * 0.5
	} else {
		if c.X < minX {
			c.X = minX
		}
		if c.X > maxX {
			c.X = maxX
		}
	}

	if minY > maxY {
		c.Y = float64(worldH) * 0.5
	} else {
		if c.Y < minY {
			c.Y = minY
		}
		if c.Y > maxY {
			c.Y = maxY
		}
	}
}

// FitWorld centres the camera and picks the largest zoom that shows the
// whole board.
func (c *Camera) FitWorld(worldW, worldH, fbW, fbH int) {
	c.X = float64(worldW) * 0.5
	c.Y = float64(worldH) * 0.5
	zx := float64(fbW) / float64(worldW)
	zy := float64(fbH) / float64(worldH)
	c.Zoom = zx
	if zy < zx {
		c.Zoom = zy
	}
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}
