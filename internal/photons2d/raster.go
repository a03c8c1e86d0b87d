package photons2d

import "math"

// depositSegment draws the traveled sub-segment (x0,y0)-(x1,y1) as an
// anti-aliased line. Every column along the major axis receives a total
// weight of br = 0.5*length/dx, so the energy laid down per unit length does
// not depend on the slope. Zero-length segments deposit nothing.
func (a *Accumulator) depositSegment(x0, y0, x1, y1 float64, c Color) {
	steep := math.Abs(y1-y0) >= math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	dx := x1 - x0
	dy := y1 - y0
	if dx == 0 || !isFinite(dx) || !isFinite(dy) {
		return
	}
	br := 0.5 * math.Sqrt(dx*dx+dy*dy) / dx
	gradient := dy / dx

	plot := func(x, y int, w float64) {
		if steep {
			a.plot(y, x, w, c)
		} else {
			a.plot(x, y, w, c)
		}
	}

	// first endpoint
	xend := math.Floor(x0 + 0.5)
	yend := y0 + gradient*(xend-x0)
	xgap := br * (1 - (x0 + 0.5 - xend))
	xpxl1 := int(xend)
	ypxl1 := math.Floor(yend)
	fy := yend - ypxl1
	plot(xpxl1, int(ypxl1), (1-fy)*xgap)
	plot(xpxl1, int(ypxl1)+1, fy*xgap)
	intery := yend + gradient

	// second endpoint
	xend = math.Floor(x1 + 0.5)
	yend = y1 + gradient*(xend-x1)
	xgap = br * (x1 + 0.5 - xend)
	xpxl2 := int(xend)
	ypxl2 := math.Floor(yend)
	fy = yend - ypxl2
	plot(xpxl2, int(ypxl2), (1-fy)*xgap)
	plot(xpxl2, int(ypxl2)+1, fy*xgap)

	// interior columns
	for x := xpxl1 + 1; x <= xpxl2-1; x++ {
		fi := math.Floor(intery)
		f := intery - fi
		plot(x, int(fi), br*(1-f))
		plot(x, int(fi)+1, br*f)
		intery += gradient
	}
}
