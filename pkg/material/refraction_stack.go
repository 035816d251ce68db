package material

// MaxRefractionDepth is the number of nested media a path can track
const MaxRefractionDepth = 8

// RefractionStack records the index of refraction of every transparent medium
// the current path is inside. Pushes past capacity are dropped but still
// counted, so Len, IsFull and IsEmpty stay consistent with the nesting depth.
type RefractionStack struct {
	items [MaxRefractionDepth]float64
	len   int
}

// Push enters a medium
func (s *RefractionStack) Push(ior float64) {
	if s.len < MaxRefractionDepth {
		s.items[s.len] = ior
	}
	s.len++
}

// Pop leaves the innermost medium
func (s *RefractionStack) Pop() {
	if s.len > 0 {
		s.len--
	}
}

// Peek returns the innermost IOR, or def if the stack is empty or the top was dropped
func (s *RefractionStack) Peek(def float64) float64 {
	return s.at(s.len-1, def)
}

// PeekUnder returns the IOR of the medium surrounding the innermost one
func (s *RefractionStack) PeekUnder(def float64) float64 {
	return s.at(s.len-2, def)
}

func (s *RefractionStack) at(i int, def float64) float64 {
	if i < 0 || i >= MaxRefractionDepth {
		return def
	}
	return s.items[i]
}

// Len returns the logical depth including dropped entries
func (s *RefractionStack) Len() int {
	return s.len
}

// IsFull reports whether further pushes will be dropped
func (s *RefractionStack) IsFull() bool {
	return s.len >= MaxRefractionDepth
}

// IsEmpty reports whether the path is outside every tracked medium
func (s *RefractionStack) IsEmpty() bool {
	return s.len == 0
}
