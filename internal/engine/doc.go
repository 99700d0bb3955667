// Package engine is a minimal arcade-physics layer: axis-aligned bodies moved
// by velocity and optional gravity, groups of bodies, colliders that invoke a
// callback on contact, and a cooperative clock for delayed and repeating
// events. Everything advances only when World.Step is called, so a single
// goroutine drives the whole simulation and no locking is needed.
package engine
