package translate

import "fmt"

// Matrix is a 2-D affine transform in CSS order: [a c e; b d f; 0 0 1].
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the no-op transform.
var Identity = Matrix{A: 1, D: 1}

// TranslateScale composes translate(x, y) followed by scale(s).
func TranslateScale(x, y, s float64) Matrix {
	return Matrix{A: s, D: s, E: x, F: y}
}

// Multiply returns m × n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps a point through the transform.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}

// TransformSink receives a combined transform.
type TransformSink interface {
	SetTransform(m Matrix)
	Transform() Matrix
}

// Transform renders x, y and scale as one affine matrix per commit.
type Transform struct {
	state
	sink TransformSink
}

// NewTransform creates a transform translator writing to sink.
func NewTransform(sink TransformSink) *Transform {
	return &Transform{state: newState(), sink: sink}
}

// UpdatePosition stores and renders the position.
func (t *Transform) UpdatePosition(x, y, scale float64) {
	t.store(x, y, scale)
	t.sink.SetTransform(TranslateScale(t.pos.X, t.pos.Y, t.pos.Scale))
}

// ComputedPosition decodes the committed matrix.
func (t *Transform) ComputedPosition() Position {
	m := t.sink.Transform()
	p := t.pos
	p.X = m.E
	p.Y = m.F
	if m.A > 0 {
		p.Scale = m.A
	}
	return p
}

// Reflow flushes the sink if it buffers writes.
func (t *Transform) Reflow() {
	reflow(t.sink)
}
