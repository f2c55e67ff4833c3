package record

import "github.com/nitfgo/nitfgo/subheader"

// NewImageSegment appends a new image segment: a version-aware default
// subheader with IDLVL set to its 1-based position, a zero-valued
// ComponentInfo, and an incremented NUMI. It fails with ErrTooMany without
// mutating anything if the kind already holds 999 segments (§4.5 step 1).
func (r *Record) NewImageSegment() (*ImageSegment, error) {
	count := len(r.Images)
	if count >= 999 {
		return nil, ErrTooMany
	}

	seg := &ImageSegment{Subheader: subheader.NewImageSubheader(r.Version(), count+1)}
	info := subheader.NewComponentInfo(string(KindImage))

	r.Images = append(r.Images, seg)
	r.Header.Images = append(r.Header.Images, info)
	if err := r.Header.NUMI.SetInt(int64(len(r.Images))); err != nil {
		r.Images = r.Images[:len(r.Images)-1]
		r.Header.Images = r.Header.Images[:len(r.Header.Images)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveImageSegment removes and returns the image segment at i, drops its
// ComponentInfo, decrements NUMI, and fixes up overflow cross-references for
// both of the image's overflow-capable sections (UDID, IXSHD).
func (r *Record) RemoveImageSegment(i int) (*ImageSegment, error) {
	if i < 0 || i >= len(r.Images) {
		return nil, invalidIndex("RemoveImageSegment", i)
	}
	seg := r.Images[i]
	r.Images = append(r.Images[:i], r.Images[i+1:]...)
	r.Header.Images = append(r.Header.Images[:i], r.Header.Images[i+1:]...)
	_ = r.Header.NUMI.SetInt(int64(len(r.Images)))

	FixOverflowIndexes(r, "UDID", i)
	FixOverflowIndexes(r, "IXSHD", i)
	return seg, nil
}

// MoveImageSegment reorders the image list, swapping the parallel
// ComponentInfo entries in the same call so I2 is preserved. No overflow
// index fixup is needed: the set of existing 1-based indices is unchanged.
func (r *Record) MoveImageSegment(from, to int) error {
	if from < 0 || from >= len(r.Images) || to < 0 || to >= len(r.Images) {
		return invalidIndex("MoveImageSegment", from)
	}
	r.Images[from], r.Images[to] = r.Images[to], r.Images[from]
	r.Header.Images[from], r.Header.Images[to] = r.Header.Images[to], r.Header.Images[from]
	return nil
}
