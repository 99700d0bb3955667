package engine

import "time"

// Target is anything a collider can test against: a single Body or a Group.
type Target interface {
	bodies() []*Body
}

// CollideFunc is invoked for every overlapping pair found during a step.
type CollideFunc func(a, b *Body)

// Collider pairs a body with a target and a callback.
type Collider struct {
	body     *Body
	target   Target
	callback CollideFunc
	active   bool
}

// Destroy disables the collider.
func (c *Collider) Destroy() {
	c.active = false
}

// World owns bodies, colliders and the clock for one simulation.
type World struct {
	Width, Height float64
	Gravity       float64 // Global downward acceleration

	bodies    []*Body
	groups    []*Group
	colliders []*Collider
	clock     *Clock
	destroyed bool
}

// NewWorld creates a world with the given bounds and no global gravity.
func NewWorld(width, height float64) *World {
	return &World{
		Width:  width,
		Height: height,
		clock:  NewClock(),
	}
}

// Clock returns the world's clock.
func (w *World) Clock() *Clock {
	return w.clock
}

// AddBody registers a standalone body for integration.
func (w *World) AddBody(b *Body) *Body {
	w.bodies = append(w.bodies, b)
	return b
}

// AddGroup registers a group; its members are integrated every step.
func (w *World) AddGroup(g *Group) *Group {
	w.groups = append(w.groups, g)
	return g
}

// AddCollider calls cb whenever body overlaps any body of target during a step.
func (w *World) AddCollider(body *Body, target Target, cb CollideFunc) *Collider {
	c := &Collider{body: body, target: target, callback: cb, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Step advances the simulation by dt: clock events fire first, then bodies
// integrate, then colliders run.
func (w *World) Step(dt time.Duration) {
	if w.destroyed || dt <= 0 {
		return
	}
	w.clock.Advance(dt)

	secs := dt.Seconds()
	for _, b := range w.bodies {
		w.integrate(b, secs)
	}
	for _, g := range w.groups {
		for _, b := range g.Children() {
			w.integrate(b, secs)
		}
	}

	w.collide()
}

// Destroy tears the world down: timers are cancelled, bodies destroyed and
// further Steps do nothing.
func (w *World) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.clock.RemoveAll()
	for _, g := range w.groups {
		g.Clear()
	}
	for _, b := range w.bodies {
		b.Destroy()
	}
	for _, c := range w.colliders {
		c.Destroy()
	}
	w.bodies, w.groups, w.colliders = nil, nil, nil
}

// Destroyed reports whether Destroy was called.
func (w *World) Destroyed() bool {
	return w.destroyed
}

func (w *World) integrate(b *Body, secs float64) {
	if b.destroyed || b.Static {
		return
	}
	if b.AllowGravity {
		b.VY += (w.Gravity + b.GravityY) * secs
	}
	b.X += b.VX * secs
	b.Y += b.VY * secs

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
}

func (w *World) clampToBounds(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.VX = 0
	} else if b.X+b.W > w.Width {
		b.X = w.Width - b.W
		b.VX = 0
	}
	if b.Y < 0 {
		b.Y = 0
		b.VY = 0
	} else if b.Y+b.H > w.Height {
		b.Y = w.Height - b.H
		b.VY = 0
	}
}

func (w *World) collide() {
	colliders := make([]*Collider, len(w.colliders))
	copy(colliders, w.colliders)

	for _, c := range colliders {
		if !c.active || c.body.destroyed {
			continue
		}
		candidates := c.target.bodies()
		others := make([]*Body, len(candidates))
		copy(others, candidates)

		for _, o := range others {
			if o == c.body || o.destroyed || !c.active {
				continue
			}
			if c.body.Bounds().Intersects(o.Bounds()) {
				c.callback(c.body, o)
			}
		}
	}
}
