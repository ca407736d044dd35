package core

// Frame is a 2D RGB pixel buffer for rendering game graphics.
// It decouples game rendering from the actual display, allowing games to
// draw with simple pixel writes while the platform handles presentation
// (terminal cells, SSH sessions, or a hardware panel).
type Frame struct {
	width  int
	height int
	pix    []RGB
}

// NewFrame creates a new frame buffer with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Clear fills the entire frame with black.
func (f *Frame) Clear() {
	for i := range f.pix {
		f.pix[i] = Black
	}
}

// Set places a color at the given pixel.
// Out-of-bounds coordinates are silently dropped.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// Get returns the color at the given pixel.
// Returns black for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pix[y*f.width+x]
}

// FillRect fills a rectangular area with the given color, clipped to bounds.
func (f *Frame) FillRect(r Rect, c RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.Set(x, y, c)
		}
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (f *Frame) DrawHLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		f.Set(x+i, y, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (f *Frame) DrawVLine(x, y, length int, c RGB) {
	for i := 0; i < length; i++ {
		f.Set(x, y+i, c)
	}
}

// Equal reports whether two frames have identical dimensions and pixels.
// Used by tests to assert render purity.
func (f *Frame) Equal(other *Frame) bool {
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.pix {
		if f.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}
