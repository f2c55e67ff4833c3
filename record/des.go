package record

import "github.com/nitfgo/nitfgo/subheader"

// NewDataExtensionSegment appends a new DES with a version-aware default
// subheader (DESTAG left blank for the caller to populate), a zero-valued
// ComponentInfo, and an incremented NUMDES.
func (r *Record) NewDataExtensionSegment() (*DESegment, error) {
	count := len(r.DataExtensions)
	if count >= 999 {
		return nil, ErrTooMany
	}

	seg := &DESegment{Subheader: subheader.NewDESubheader(r.Version(), "")}
	info := subheader.NewComponentInfo(string(KindDataExtension))

	r.DataExtensions = append(r.DataExtensions, seg)
	r.Header.DataExtensions = append(r.Header.DataExtensions, info)
	if err := r.Header.NUMDES.SetInt(int64(len(r.DataExtensions))); err != nil {
		r.DataExtensions = r.DataExtensions[:len(r.DataExtensions)-1]
		r.Header.DataExtensions = r.Header.DataExtensions[:len(r.Header.DataExtensions)-1]
		return nil, err
	}
	return seg, nil
}

// RemoveDataExtensionSegment removes and returns the DES at i, drops its
// ComponentInfo, decrements NUMDES, and fixes up every host's overflow
// offset field via FixSegmentIndexes — removing a DES shifts DES indices,
// unlike removing a host segment (§4.6.3).
func (r *Record) RemoveDataExtensionSegment(i int) (*DESegment, error) {
	if i < 0 || i >= len(r.DataExtensions) {
		return nil, invalidIndex("RemoveDataExtensionSegment", i)
	}
	seg := r.DataExtensions[i]
	r.DataExtensions = append(r.DataExtensions[:i], r.DataExtensions[i+1:]...)
	r.Header.DataExtensions = append(r.Header.DataExtensions[:i], r.Header.DataExtensions[i+1:]...)
	_ = r.Header.NUMDES.SetInt(int64(len(r.DataExtensions)))

	FixSegmentIndexes(r, i)
	return seg, nil
}

// MoveDataExtensionSegment reorders the DES list and its parallel
// ComponentInfo entries together. No index fixup is needed: a move does not
// change the set of existing 1-based indices, only which segment currently
// occupies each one (§4.5).
func (r *Record) MoveDataExtensionSegment(from, to int) error {
	if from < 0 || from >= len(r.DataExtensions) || to < 0 || to >= len(r.DataExtensions) {
		return invalidIndex("MoveDataExtensionSegment", from)
	}
	r.DataExtensions[from], r.DataExtensions[to] = r.DataExtensions[to], r.DataExtensions[from]
	r.Header.DataExtensions[from], r.Header.DataExtensions[to] = r.Header.DataExtensions[to], r.Header.DataExtensions[from]
	return nil
}
