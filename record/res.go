package record

import "github.com/nitfgo/nitfgo/subheader"

// NewReservedExtensionSegment appends a new RES segment with a version-aware
// default subheader, a zero-valued ComponentInfo, and an incremented
// NUMRES. RES segments carry no TRE extension protocol, so no overflow
// fixup is ever required for this kind.
func (r *Record) NewReservedExtensionSegment() (*RESegment, error) {
	count := len(r.ReservedExtensions)
	if count >= 999 {
		return nil, ErrTooMany
	}

	seg := &RESegment{Subheader: subheader.NewRESubheader(r.Version(), count+1)}
	info := subheader.NewComponentInfo(string(KindReservedExtension))

	r.ReservedExtensions = append(r.ReservedExtensions, seg)
	r.Header.ReservedExts = append(r.Header.ReservedExts, info)
	if err := r.Header.NUMRES.SetInt(int64(len(r.ReservedExtensions))); err != nil {
		r.ReservedExtensions = r.ReservedExtensions[:len(r.ReservedExtensions)-1]
		r.Header.ReservedExts = r.Header.ReservedExts[:len(r.Header.ReservedExts)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveReservedExtensionSegment removes and returns the RES segment at i,
// drops its ComponentInfo, and decrements NUMRES.
func (r *Record) RemoveReservedExtensionSegment(i int) (*RESegment, error) {
	if i < 0 || i >= len(r.ReservedExtensions) {
		return nil, invalidIndex("RemoveReservedExtensionSegment", i)
	}
	seg := r.ReservedExtensions[i]
	r.ReservedExtensions = append(r.ReservedExtensions[:i], r.ReservedExtensions[i+1:]...)
	r.Header.ReservedExts = append(r.Header.ReservedExts[:i], r.Header.ReservedExts[i+1:]...)
	_ = r.Header.NUMRES.SetInt(int64(len(r.ReservedExtensions)))
	return seg, nil
}

// MoveReservedExtensionSegment reorders the RES list and its parallel
// ComponentInfo entries together.
func (r *Record) MoveReservedExtensionSegment(from, to int) error {
	if from < 0 || from >= len(r.ReservedExtensions) || to < 0 || to >= len(r.ReservedExtensions) {
		return invalidIndex("MoveReservedExtensionSegment", from)
	}
	r.ReservedExtensions[from], r.ReservedExtensions[to] = r.ReservedExtensions[to], r.ReservedExtensions[from]
	r.Header.ReservedExts[from], r.Header.ReservedExts[to] = r.Header.ReservedExts[to], r.Header.ReservedExts[from]
	return nil
}
