package app

type entity struct {
	x, y   float32
	w, h   float32
	vx, vy float32
}

// spawnEntities lays out n entities on a grid with fixed velocities so runs are
// reproducible.
func spawnEntities(n int, worldW, worldH float32) []entity {
	out := make([]entity, 0, n)
	for i := 0; i < n; i++ {
		col := float32(i % 4)
		row := float32(i / 4)
		out = append(out, entity{
			x:  40 + col*worldW/5,
			y:  40 + row*32,
			w:  16,
			h:  16,
			vx: float32(1 + i%3),
			vy: float32(1 + (i+1)%2),
		})
	}
	return out
}

// step moves e inside [0,w)x[0,h) and reports whether it bounced.
func (e *entity) step(w, h float32) bool {
	bounced := false
	e.x += e.vx
	e.y += e.vy
	if e.x < 0 {
		e.x, e.vx, bounced = 0, -e.vx, true
	} else if e.x+e.w > w {
		e.x, e.vx, bounced = w-e.w, -e.vx, true
	}
	if e.y < 0 {
		e.y, e.vy, bounced = 0, -e.vy, true
	} else if e.y+e.h > h {
		e.y, e.vy, bounced = h-e.h, -e.vy, true
	}
	return bounced
}
