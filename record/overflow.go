package record

// FixOverflowIndexes decrements by one the DESITEM of every overflow DES
// segment whose DESOFLW trims to hostKind and whose DESITEM is greater than
// i0based+1. Call this after removing a host segment of the given kind at
// 0-based position i0based (§4.6.3): the DES indices themselves do not move,
// but the host positions they point at do.
func FixOverflowIndexes(r *Record, hostKind string, i0based int) {
	removedHost1based := int64(i0based + 1)
	for _, des := range r.DataExtensions {
		if des.Subheader.DESOFLW.String() != hostKind {
			continue
		}
		item, err := des.Subheader.DESITEM.Int()
		if err != nil || item <= removedHost1based {
			continue
		}
		_ = des.Subheader.DESITEM.SetInt(item - 1)
	}
}

// FixSegmentIndexes decrements by one every stored overflow offset field
// (UDHOFL, XHDLOFL, UDOFL, IXSOFL, SXSOFL, LXSOFL, TXSOFL) whose value is
// greater than removedIndex0based+1. Call this after removing the DES at
// removedIndex0based (§4.6.3): every host index referencing a later DES must
// shift down with it.
func FixSegmentIndexes(r *Record, removedIndex0based int) {
	removed1based := int64(removedIndex0based + 1)
	decrementIfAbove := func(f interface {
		Int() (int64, error)
		SetInt(int64) error
	}) {
		v, err := f.Int()
		if err != nil || v <= removed1based {
			return
		}
		_ = f.SetInt(v - 1)
	}

	decrementIfAbove(r.Header.UDHOFL)
	decrementIfAbove(r.Header.XHDLOFL)
	for _, seg := range r.Images {
		decrementIfAbove(seg.Subheader.UDOFL)
		decrementIfAbove(seg.Subheader.IXSOFL)
	}
	for _, seg := range r.Graphics {
		decrementIfAbove(seg.Subheader.SXSOFL)
	}
	for _, seg := range r.Labels {
		decrementIfAbove(seg.Subheader.LXSOFL)
	}
	for _, seg := range r.Texts {
		decrementIfAbove(seg.Subheader.TXSOFL)
	}
}
