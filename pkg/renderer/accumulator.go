package renderer

import (
	"sync"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// AccumPixel is the accumulated history of one pixel. Age counts the frames
// averaged into Color.
type AccumPixel struct {
	Color core.Vec3
	Age   uint32
}

// Accumulator is the double-buffered temporal accumulation image. During a
// frame each pixel task reads the previous buffer and writes its own pixel of
// the current buffer; Swap publishes the frame.
type Accumulator struct {
	mu       sync.RWMutex // Guards buffer identity for Swap, Resize and readers
	width    int
	height   int
	previous []AccumPixel
	current  []AccumPixel
}

// NewAccumulator creates an empty accumulator
func NewAccumulator(width, height int) *Accumulator {
	return &Accumulator{
		width:    width,
		height:   height,
		previous: make([]AccumPixel, width*height),
		current:  make([]AccumPixel, width*height),
	}
}

// Resolve folds estimate into the history of pixel (x, y) and stores the
// result in the current buffer. A reset discards the history so the new
// estimate stands alone. Only the task owning the pixel may call it, and only
// between swaps.
func (a *Accumulator) Resolve(x, y int, estimate core.Vec3, reset bool) AccumPixel {
	i := y*a.width + x
	prev := a.previous[i]

	age := prev.Age
	if reset {
		age = 0
	}

	blended := prev.Color.Add(estimate.Subtract(prev.Color).Multiply(1 / float64(age+1)))
	a.current[i] = AccumPixel{Color: blended, Age: age + 1}
	return a.current[i]
}

// Swap makes the current buffer the history for the next frame
func (a *Accumulator) Swap() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.previous, a.current = a.current, a.previous
}

// Resize reallocates both buffers, discarding all history
func (a *Accumulator) Resize(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.width = width
	a.height = height
	a.previous = make([]AccumPixel, width*height)
	a.current = make([]AccumPixel, width*height)
}

// Size returns the image dimensions
func (a *Accumulator) Size() (int, int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.width, a.height
}

// Pixel returns the latest published value of pixel (x, y)
func (a *Accumulator) Pixel(x, y int) AccumPixel {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.previous[y*a.width+x]
}

// Snapshot copies the latest published frame
func (a *Accumulator) Snapshot() (pixels []AccumPixel, width, height int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	pixels = make([]AccumPixel, len(a.previous))
	copy(pixels, a.previous)
	return pixels, a.width, a.height
}

// Restore replaces the history with pixels of the same size
func (a *Accumulator) Restore(pixels []AccumPixel) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(pixels) != len(a.previous) {
		return false
	}
	copy(a.previous, pixels)
	return true
}
