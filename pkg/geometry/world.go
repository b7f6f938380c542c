package geometry

import (
	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/material"
)

// World is an ordered collection of shapes tested by brute-force linear
// scan. Append-only during scene construction, read-only during render.
type World struct {
	Shapes []Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{Shapes: make([]Shape, 0)}
}

// Add appends shapes to the world
func (w *World) Add(shapes ...Shape) {
	w.Shapes = append(w.Shapes, shapes...)
}

// Count returns the number of shapes in the world
func (w *World) Count() int {
	return len(w.Shapes)
}

// Hit returns the nearest intersection across all shapes within tRange.
// The search interval's upper bound shrinks to the closest hit found so far,
// so only the globally nearest hit survives the scan.
func (w *World) Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closest := tRange

	for _, shape := range w.Shapes {
		if hit, isHit := shape.Hit(ray, closest); isHit {
			closest.Max = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
