package tre

// Extensions is an ordered sequence of TREs with insertion-order
// significance: serialization order equals insertion order. Every subheader
// kind owns one or two of these (userDefinedSection/extendedSection).
type Extensions struct {
	items []*TRE
}

// NewExtensions returns an empty Extensions section.
func NewExtensions() *Extensions {
	return &Extensions{}
}

// Len returns the number of TREs currently in the section.
func (e *Extensions) Len() int { return len(e.items) }

// At returns the TRE at position i, or nil if out of range.
func (e *Extensions) At(i int) *TRE {
	if i < 0 || i >= len(e.items) {
		return nil
	}
	return e.items[i]
}

// All returns the section's TREs in serialization order. The slice is owned
// by the caller; mutating it does not affect the section.
func (e *Extensions) All() []*TRE {
	out := make([]*TRE, len(e.items))
	copy(out, e.items)
	return out
}

// Append adds t to the end of the section (the section takes ownership: a
// TRE belongs to exactly one Extensions section at a time, so callers must
// Remove it from its prior owner first).
func (e *Extensions) Append(t *TRE) {
	e.items = append(e.items, t)
}

// RemoveFrom removes and returns the TRE at index i.
func (e *Extensions) RemoveFrom(i int) *TRE {
	if i < 0 || i >= len(e.items) {
		return nil
	}
	t := e.items[i]
	e.items = append(e.items[:i], e.items[i+1:]...)
	return t
}

// TakeFrom removes every TRE starting at index i (inclusive) through the end
// of the section and returns them in original order — the "skip then
// transfer" operation the overflow engine needs.
func (e *Extensions) TakeFrom(i int) []*TRE {
	if i < 0 || i >= len(e.items) {
		return nil
	}
	moved := append([]*TRE(nil), e.items[i:]...)
	e.items = e.items[:i]
	return moved
}

// AppendAll appends a batch of TREs, preserving their relative order.
func (e *Extensions) AppendAll(ts []*TRE) {
	e.items = append(e.items, ts...)
}

// Clear removes and returns every TRE in the section, leaving it empty.
func (e *Extensions) Clear() []*TRE {
	all := e.items
	e.items = nil
	return all
}

// SerializedLength returns the sum over all TREs of 11 (CETAG+CEL prefix)
// plus each TRE's current payload size — recomputed every call, never
// cached, per §4.6.1 step 1.
func (e *Extensions) SerializedLength() (uint32, error) {
	var total uint32
	for _, t := range e.items {
		sz, err := t.TotalSize()
		if err != nil {
			return 0, err
		}
		total += sz
	}
	return total, nil
}

// Serialize writes every TRE's wire form in order.
func (e *Extensions) Serialize() ([]byte, error) {
	var out []byte
	for _, t := range e.items {
		b, err := t.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// Clone returns a deep, independent copy of the section.
func (e *Extensions) Clone() *Extensions {
	cp := &Extensions{items: make([]*TRE, len(e.items))}
	for i, t := range e.items {
		cp.items[i] = t.Clone()
	}
	return cp
}
