package slide

import "math"

// Index identifies a page in the grid.
type Index struct {
	PageX int
	PageY int
}

// Page is an Index together with the offset of the page's top-left corner.
type Page struct {
	Index
	X float64
	Y float64
}

// Geometry is the measured input the page grid is built from.
type Geometry struct {
	WrapperWidth  float64
	WrapperHeight float64
	ContentWidth  float64
	ContentHeight float64
	MaxScrollX    float64
	MaxScrollY    float64
}

type cell struct {
	x, y   float64
	cx, cy float64
}

// Pages is the discrete page grid laid over a surface's content. With
// looping on an axis the grid includes one clone page at each end of it.
type Pages struct {
	SlideX bool
	LoopX  bool
	LoopY  bool

	grid    [][]cell
	current Page
}

// NewPages creates an empty grid; call Refresh before resolving pages.
func NewPages(slideX, loopX, loopY bool) *Pages {
	return &Pages{SlideX: slideX, LoopX: loopX, LoopY: loopY}
}

// Refresh rebuilds the grid in wrapper-sized steps across the content.
// Page offsets never pass the end of the scroll range.
func (p *Pages) Refresh(g Geometry) {
	stepX, stepY := g.WrapperWidth, g.WrapperHeight
	cx, cy := math.Round(stepX/2), math.Round(stepY/2)

	p.grid = p.grid[:0]
	for x, i := 0.0, 0; i == 0 || (stepX > 0 && x > -g.ContentWidth); x, i = x-stepX, i+1 {
		var column []cell
		for y, j := 0.0, 0; j == 0 || (stepY > 0 && y > -g.ContentHeight); y, j = y-stepY, j+1 {
			column = append(column, cell{
				x:  math.Max(x, g.MaxScrollX),
				y:  math.Max(y, g.MaxScrollY),
				cx: x - cx,
				cy: y - cy,
			})
		}
		p.grid = append(p.grid, column)
	}
}

// XLen and YLen return the grid size, clone pages included.
func (p *Pages) XLen() int { return len(p.grid) }

func (p *Pages) YLen() int {
	if len(p.grid) == 0 {
		return 0
	}
	return len(p.grid[0])
}

// Current returns the page the surface is on or heading to.
func (p *Pages) Current() Page { return p.current }

// ChangeCurrentPage records the page the surface is heading to.
func (p *Pages) ChangeCurrentPage(page Page) { p.current = page }

// Change2SafePage clamps an index into the whole grid and returns it with its
// offset. Loop clones are valid results here: Next and Prev step onto them
// and scrollEnd re-centres onto the real twin. Only RealPage2Page keeps
// caller-supplied indexes off the clones.
func (p *Pages) Change2SafePage(pageX, pageY int) Page {
	if p.XLen() == 0 {
		return Page{}
	}
	pageX = between(pageX, 0, p.XLen()-1)
	pageY = between(pageY, 0, p.YLen()-1)
	c := p.grid[pageX][pageY]
	return Page{Index: Index{PageX: pageX, PageY: pageY}, X: c.x, Y: c.y}
}

// RealPage2Page maps a real page index to a grid index, skipping the
// leading clone and keeping clones out of reach.
func (p *Pages) RealPage2Page(x, y int) Index {
	firstX, lastX := 0, p.XLen()-1
	firstY, lastY := 0, p.YLen()-1
	if p.LoopX {
		x++
		firstX, lastX = firstX+1, lastX-1
	}
	if p.LoopY {
		y++
		firstY, lastY = firstY+1, lastY-1
	}
	return Index{PageX: between(x, firstX, lastX), PageY: between(y, firstY, lastY)}
}

// RealPage maps a grid index back to the real page it shows. Clone pages
// map to their originals.
func (p *Pages) RealPage(idx Index) Index {
	if p.LoopX {
		idx.PageX = realIndex(idx.PageX, p.XLen()-2)
	}
	if p.LoopY {
		idx.PageY = realIndex(idx.PageY, p.YLen()-2)
	}
	return idx
}

func realIndex(page, realLen int) int {
	if realLen <= 0 {
		return 0
	}
	switch {
	case page <= 0:
		return realLen - 1
	case page > realLen:
		return 0
	default:
		return page - 1
	}
}

// NextPage and PrevPage step one page along the paging axis.
func (p *Pages) NextPage() Index { return p.step(1) }

func (p *Pages) PrevPage() Index { return p.step(-1) }

func (p *Pages) step(delta int) Index {
	idx := p.current.Index
	if p.SlideX {
		idx.PageX += delta
	} else {
		idx.PageY += delta
	}
	return idx
}

// NearestPage resolves the page a release at (x, y) lands on. Landing back
// on the current page moves one page in the gesture direction instead.
func (p *Pages) NearestPage(x, y float64, directionX, directionY int) Page {
	if p.XLen() == 0 {
		return Page{}
	}
	i := 0
	for ; i < p.XLen()-1; i++ {
		if x >= p.grid[i][0].cx {
			break
		}
	}
	j := 0
	for ; j < p.YLen()-1; j++ {
		if y >= p.grid[0][j].cy {
			break
		}
	}
	if i == p.current.PageX {
		i = between(i+directionX, 0, p.XLen()-1)
	}
	if j == p.current.PageY {
		j = between(j+directionY, 0, p.YLen()-1)
	}
	c := p.grid[i][j]
	return Page{Index: Index{PageX: i, PageY: j}, X: c.x, Y: c.y}
}

// ResetLoopPage reports the real twin of the current page when it is a
// loop clone.
func (p *Pages) ResetLoopPage() (Index, bool) {
	idx := p.current.Index
	if p.LoopX {
		switch idx.PageX {
		case 0:
			return Index{PageX: p.XLen() - 2, PageY: idx.PageY}, true
		case p.XLen() - 1:
			return Index{PageX: 1, PageY: idx.PageY}, true
		}
	}
	if p.LoopY {
		switch idx.PageY {
		case 0:
			return Index{PageX: idx.PageX, PageY: p.YLen() - 2}, true
		case p.YLen() - 1:
			return Index{PageX: idx.PageX, PageY: 1}, true
		}
	}
	return Index{}, false
}

// InitPage returns the grid page for a real start page.
func (p *Pages) InitPage(startX, startY int) Page {
	idx := p.RealPage2Page(startX, startY)
	return p.Change2SafePage(idx.PageX, idx.PageY)
}

func between(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func betweenFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
