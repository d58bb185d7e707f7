package translate

// MemorySink keeps committed values in memory. It satisfies both sink
// interfaces and is used by headless surfaces.
type MemorySink struct {
	left, top float64
	matrix    Matrix
	Commits   int
	Reflows   int
}

// NewMemorySink returns a sink holding the identity transform.
func NewMemorySink() *MemorySink {
	return &MemorySink{matrix: Identity}
}

func (m *MemorySink) SetLeft(px float64) { m.left = px; m.Commits++ }
func (m *MemorySink) SetTop(px float64)  { m.top = px }
func (m *MemorySink) Left() float64      { return m.left }
func (m *MemorySink) Top() float64       { return m.top }

func (m *MemorySink) SetTransform(mx Matrix) { m.matrix = mx; m.Commits++ }
func (m *MemorySink) Transform() Matrix      { return m.matrix }

// Reflow counts layout barriers.
func (m *MemorySink) Reflow() { m.Reflows++ }
