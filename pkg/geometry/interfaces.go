package geometry

import (
	"github.com/akobel/weekend-tracer/pkg/core"
	"github.com/akobel/weekend-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.HitRecord, bool)
}
