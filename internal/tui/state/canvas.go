package state

import "github.com/cristianoliveira/glide/internal/translate"

// Canvas is the sink the terminal surface renders from. It accepts both
// translator strategies and exposes the committed offset.
type Canvas struct {
	left, top float64
	matrix    translate.Matrix
}

// NewCanvas returns a canvas at the origin.
func NewCanvas() *Canvas {
	return &Canvas{matrix: translate.Identity}
}

func (c *Canvas) SetLeft(px float64) { c.left = px }
func (c *Canvas) SetTop(px float64)  { c.top = px }
func (c *Canvas) Left() float64      { return c.left }
func (c *Canvas) Top() float64       { return c.top }

// SetTransform records the matrix and its translation as the offset.
func (c *Canvas) SetTransform(m translate.Matrix) {
	c.matrix = m
	c.left, c.top = m.E, m.F
}

func (c *Canvas) Transform() translate.Matrix { return c.matrix }

// Offset returns the committed content offset in engine pixels.
func (c *Canvas) Offset() (x, y float64) { return c.left, c.top }
