package record

import "github.com/nitfgo/nitfgo/subheader"

// NewLabelSegment appends a new label segment. Label segments only exist
// under V20 (§3); under V21 this returns subheader.ErrUnsupportedByVersion
// without mutating the Record.
func (r *Record) NewLabelSegment() (*LabelSegment, error) {
	count := len(r.Labels)
	if count >= 999 {
		return nil, ErrTooMany
	}

	sh, err := subheader.NewLabelSubheader(r.Version(), count+1)
	if err != nil {
		return nil, err
	}
	seg := &LabelSegment{Subheader: sh}
	info := subheader.NewComponentInfo(string(KindLabel))

	r.Labels = append(r.Labels, seg)
	r.Header.Labels = append(r.Header.Labels, info)
	if err := r.Header.NUML.SetInt(int64(len(r.Labels))); err != nil {
		r.Labels = r.Labels[:len(r.Labels)-1]
		r.Header.Labels = r.Header.Labels[:len(r.Header.Labels)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveLabelSegment removes and returns the label segment at i, drops its
// ComponentInfo, decrements NUML, and fixes up LXSHD overflow
// cross-references.
func (r *Record) RemoveLabelSegment(i int) (*LabelSegment, error) {
	if i < 0 || i >= len(r.Labels) {
		return nil, invalidIndex("RemoveLabelSegment", i)
	}
	seg := r.Labels[i]
	r.Labels = append(r.Labels[:i], r.Labels[i+1:]...)
	r.Header.Labels = append(r.Header.Labels[:i], r.Header.Labels[i+1:]...)
	_ = r.Header.NUML.SetInt(int64(len(r.Labels)))

	FixOverflowIndexes(r, "LXSHD", i)
	return seg, nil
}

// MoveLabelSegment reorders the label list and its parallel ComponentInfo
// entries together.
func (r *Record) MoveLabelSegment(from, to int) error {
	if from < 0 || from >= len(r.Labels) || to < 0 || to >= len(r.Labels) {
		return invalidIndex("MoveLabelSegment", from)
	}
	r.Labels[from], r.Labels[to] = r.Labels[to], r.Labels[from]
	r.Header.Labels[from], r.Header.Labels[to] = r.Header.Labels[to], r.Header.Labels[from]
	return nil
}
