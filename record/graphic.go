package record

import "github.com/nitfgo/nitfgo/subheader"

// NewGraphicSegment appends a new graphic segment with a version-aware
// default subheader, a zero-valued ComponentInfo, and an incremented NUMS.
func (r *Record) NewGraphicSegment() (*GraphicSegment, error) {
	count := len(r.Graphics)
	if count >= 999 {
		return nil, ErrTooMany
	}

	seg := &GraphicSegment{Subheader: subheader.NewGraphicSubheader(r.Version(), count+1)}
	info := subheader.NewComponentInfo(string(KindGraphic))

	r.Graphics = append(r.Graphics, seg)
	r.Header.Graphics = append(r.Header.Graphics, info)
	if err := r.Header.NUMS.SetInt(int64(len(r.Graphics))); err != nil {
		r.Graphics = r.Graphics[:len(r.Graphics)-1]
		r.Header.Graphics = r.Header.Graphics[:len(r.Header.Graphics)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveGraphicSegment removes and returns the graphic segment at i, drops
// its ComponentInfo, decrements NUMS, and fixes up SXSHD overflow
// cross-references.
func (r *Record) RemoveGraphicSegment(i int) (*GraphicSegment, error) {
	if i < 0 || i >= len(r.Graphics) {
		return nil, invalidIndex("RemoveGraphicSegment", i)
	}
	seg := r.Graphics[i]
	r.Graphics = append(r.Graphics[:i], r.Graphics[i+1:]...)
	r.Header.Graphics = append(r.Header.Graphics[:i], r.Header.Graphics[i+1:]...)
	_ = r.Header.NUMS.SetInt(int64(len(r.Graphics)))

	FixOverflowIndexes(r, "SXSHD", i)
	return seg, nil
}

// MoveGraphicSegment reorders the graphic list and its parallel
// ComponentInfo entries together.
func (r *Record) MoveGraphicSegment(from, to int) error {
	if from < 0 || from >= len(r.Graphics) || to < 0 || to >= len(r.Graphics) {
		return invalidIndex("MoveGraphicSegment", from)
	}
	r.Graphics[from], r.Graphics[to] = r.Graphics[to], r.Graphics[from]
	r.Header.Graphics[from], r.Header.Graphics[to] = r.Header.Graphics[to], r.Header.Graphics[from]
	return nil
}
