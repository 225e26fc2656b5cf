package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a cell compositor with dirty tracking, flushed to a
// tcell.Screen once per tick. Cells default to the space-backdrop color
// in finalize so passes only write what they touch.
type Buffer struct {
	cells    []Cell
	touched  []bool
	width    int
	height   int
	backdrop RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int, backdrop RGB) *Buffer {
	b := &Buffer{backdrop: backdrop}
	b.alloc(width, height)
	return b
}

func (b *Buffer) alloc(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	b.alloc(width, height)
}

// Size returns current dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: b.backdrop, Bg: b.backdrop}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetBg replaces the background color, the hot path for dot plotting
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetCell replaces the whole cell with a glyphless background, dropping
// any foreground rune a previous pass left behind
func (b *Buffer) SetCell(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	b.touched[idx] = true
}

// BlendBg alpha-blends color onto the existing background
func (b *Buffer) BlendBg(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = Blend(b.cells[idx].Bg, c, alpha)
	b.touched[idx] = true
}

// AddBg additively blends color onto the existing background, used for
// glow layers
func (b *Buffer) AddBg(x, y int, c RGB, intensity float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = AddScaled(b.cells[idx].Bg, c, intensity)
	b.touched[idx] = true
}

// BgAt returns the current background color, for passes that shade
// relative to what is already composited
func (b *Buffer) BgAt(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.cells[y*b.width+x].Bg
}

// SetFg writes rune and foreground while preserving the background,
// used for star glyphs and HUD text
func (b *Buffer) SetFg(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Rune = r
	b.cells[idx].Fg = fg
}

// WriteString renders a text run at (x,y), foreground only
func (b *Buffer) WriteString(x, y int, s string, fg RGB) {
	for _, r := range s {
		b.SetFg(x, y, r, fg)
		x++
	}
}

// Flush pushes the composited frame to the screen. Only the render
// goroutine may call this; the screen is a thread-affine resource.
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if !b.touched[row+x] {
				c.Bg = b.backdrop
			}
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
	screen.Show()
}
