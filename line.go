package canvas

import "image"

// DrawLine sets every pixel on the line from start to end, both endpoints
// included, to v. It uses integer Bresenham stepping, so the pixels form an
// 8-connected path and the result is the same in every octant.
func (c *Canvas) DrawLine(start, end image.Point, v byte) {
	c.copyCheck()

	dx := abs(end.X - start.X)
	sx := -1
	if start.X < end.X {
		sx = 1
	}
	dy := abs(end.Y - start.Y)
	sy := -1
	if start.Y < end.Y {
		sy = 1
	}

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	p := start
	for {
		c.SetPixel(p.X, p.Y, v)
		if p == end {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			p.X += sx
		}
		if e2 < dy {
			err += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
