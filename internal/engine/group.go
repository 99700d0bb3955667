package engine

// Group is a set of bodies that share creation defaults and can be used as a
// collider target as a whole.
type Group struct {
	members []*Body

	// Defaults applied to bodies created through Create.
	AllowGravity bool
	Static       bool
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Create adds a new body to the group with the group's defaults.
func (g *Group) Create(x, y, w, h float64) *Body {
	b := NewBody(x, y, w, h)
	b.AllowGravity = g.AllowGravity
	b.Static = g.Static
	g.Add(b)
	return b
}

// Add puts an existing body into the group.
func (g *Group) Add(b *Body) {
	if b.group == g || b.destroyed {
		return
	}
	if b.group != nil {
		b.group.remove(b)
	}
	b.group = g
	g.members = append(g.members, b)
}

// Children returns a snapshot of the live bodies in creation order.
// The snapshot stays valid while bodies are destroyed during iteration.
func (g *Group) Children() []*Body {
	out := make([]*Body, len(g.members))
	copy(out, g.members)
	return out
}

// Len returns the number of live bodies.
func (g *Group) Len() int {
	return len(g.members)
}

// Clear destroys every body in the group.
func (g *Group) Clear() {
	for _, b := range g.Children() {
		b.Destroy()
	}
}

func (g *Group) remove(b *Body) {
	for i, m := range g.members {
		if m == b {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	b.group = nil
}

func (g *Group) bodies() []*Body {
	return g.members
}
