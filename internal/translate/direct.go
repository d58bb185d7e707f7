package translate

// DirectSink receives two independent positional properties.
type DirectSink interface {
	SetLeft(px float64)
	SetTop(px float64)
	Left() float64
	Top() float64
}

// Direct renders x and y as left/top offsets. Scale is tracked but never rendered.
type Direct struct {
	state
	sink DirectSink
}

// NewDirect creates a direct translator writing to sink.
func NewDirect(sink DirectSink) *Direct {
	return &Direct{state: newState(), sink: sink}
}

// UpdatePosition stores and renders the position.
func (d *Direct) UpdatePosition(x, y, scale float64) {
	d.store(x, y, scale)
	d.sink.SetLeft(d.pos.X)
	d.sink.SetTop(d.pos.Y)
}

// ComputedPosition reads left/top from the sink.
func (d *Direct) ComputedPosition() Position {
	p := d.pos
	p.X = d.sink.Left()
	p.Y = d.sink.Top()
	return p
}

// Reflow flushes the sink if it buffers writes.
func (d *Direct) Reflow() {
	reflow(d.sink)
}
