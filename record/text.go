package record

import "github.com/nitfgo/nitfgo/subheader"

// NewTextSegment appends a new text segment with a version-aware default
// subheader, a zero-valued ComponentInfo, and an incremented NUMT.
func (r *Record) NewTextSegment() (*TextSegment, error) {
	count := len(r.Texts)
	if count >= 999 {
		return nil, ErrTooMany
	}

	seg := &TextSegment{Subheader: subheader.NewTextSubheader(r.Version(), count+1)}
	info := subheader.NewComponentInfo(string(KindText))

	r.Texts = append(r.Texts, seg)
	r.Header.Texts = append(r.Header.Texts, info)
	if err := r.Header.NUMT.SetInt(int64(len(r.Texts))); err != nil {
		r.Texts = r.Texts[:len(r.Texts)-1]
		r.Header.Texts = r.Header.Texts[:len(r.Header.Texts)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveTextSegment removes and returns the text segment at i, drops its
// ComponentInfo, decrements NUMT, and fixes up TXSHD overflow
// cross-references.
func (r *Record) RemoveTextSegment(i int) (*TextSegment, error) {
	if i < 0 || i >= len(r.Texts) {
		return nil, invalidIndex("RemoveTextSegment", i)
	}
	seg := r.Texts[i]
	r.Texts = append(r.Texts[:i], r.Texts[i+1:]...)
	r.Header.Texts = append(r.Header.Texts[:i], r.Header.Texts[i+1:]...)
	_ = r.Header.NUMT.SetInt(int64(len(r.Texts)))

	FixOverflowIndexes(r, "TXSHD", i)
	return seg, nil
}

// MoveTextSegment reorders the text list and its parallel ComponentInfo
// entries together.
func (r *Record) MoveTextSegment(from, to int) error {
	if from < 0 || from >= len(r.Texts) || to < 0 || to >= len(r.Texts) {
		return invalidIndex("MoveTextSegment", from)
	}
	r.Texts[from], r.Texts[to] = r.Texts[to], r.Texts[from]
	r.Header.Texts[from], r.Header.Texts[to] = r.Header.Texts[to], r.Header.Texts[from]
	return nil
}
