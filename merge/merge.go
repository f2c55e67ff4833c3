package merge

import (
	"fmt"

	"github.com/nitfgo/nitfgo/internal/nitferr"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

// UnmergeTREs prepares r for writing (§4.6.1). Every overflow-capable
// extension section whose serialized length exceeds its table limit is
// split: TREs are moved out starting with the first one whose accumulated
// size would push the running total over the limit, and everything from
// that TRE onward is appended, in order, to an overflow DES (allocating one
// if the host does not already name one). Sections within the limit are
// left untouched.
func UnmergeTREs(r *record.Record) error {
	for _, ref := range collectSections(r) {
		if err := unmergeSection(r, ref); err != nil {
			return err
		}
	}
	return nil
}

func unmergeSection(r *record.Record, ref sectionRef) error {
	length, err := ref.section.SerializedLength()
	if err != nil {
		return err
	}
	if int(length) <= ref.limit {
		return nil
	}

	destination, err := resolveDestination(r, ref)
	if err != nil {
		return err
	}

	splitAt, err := splitPoint(ref.section, ref.limit)
	if err != nil {
		return err
	}
	moved := ref.section.TakeFrom(splitAt)
	destination.AppendAll(moved)

	retained, err := ref.section.SerializedLength()
	if err != nil {
		return err
	}
	return ref.lengthField.SetUint(uint64(retained))
}

// splitPoint finds the index of the first TRE in section whose inclusion
// would push the running serialized total above limit. Every TRE from that
// index onward is the overflow; everything before it is retained.
func splitPoint(section *tre.Extensions, limit int) (int, error) {
	var running int
	items := section.All()
	for i, t := range items {
		sz, err := t.TotalSize()
		if err != nil {
			return 0, err
		}
		if running+int(sz) > limit {
			return i, nil
		}
		running += int(sz)
	}
	return len(items), nil
}

// resolveDestination returns the Extensions section TREs should be moved
// into for ref: the userDefinedSection of the DES already named by ref's
// offset field, or a freshly allocated overflow DES if none is named yet.
func resolveDestination(r *record.Record, ref sectionRef) (*tre.Extensions, error) {
	offset := readOffset(ref.offsetField)
	if offset != 0 {
		des, ok := desAt(r, int(offset))
		if !ok {
			return nil, nitferr.New(nitferr.KindInvalidOverflow,
				fmt.Sprintf("merge: unmerge: %s offset names missing DES %d", ref.hostKind, offset))
		}
		return des.Subheader.UserDefinedSection, nil
	}
	seg, err := addOverflowSegment(r, ref)
	if err != nil {
		return nil, err
	}
	return seg.Subheader.UserDefinedSection, nil
}

// addOverflowSegment allocates a new DES segment through the Record's
// ordinary factory (so NUMDES/ComponentInfo stay consistent, per §4.6.1
// step 3), replaces its subheader with a TRE_OVERFLOW one carrying the
// host's classification/security and back-reference, and writes the new
// DES's 1-based index into ref's offset field.
func addOverflowSegment(r *record.Record, ref sectionRef) (*record.DESegment, error) {
	seg, err := r.NewDataExtensionSegment()
	if err != nil {
		return nil, err
	}

	overflow := subheader.NewOverflowDESubheader(r.Version(), ref.hostKind, ref.hostIndex0+1)
	if ref.security != nil {
		overflow.Security = ref.security.Clone()
	}
	seg.Subheader = overflow

	index1based := len(r.DataExtensions)
	if err := ref.offsetField.SetUint(uint64(index1based)); err != nil {
		return nil, err
	}
	return seg, nil
}

func desAt(r *record.Record, index1based int) (*record.DESegment, bool) {
	if index1based < 1 || index1based > len(r.DataExtensions) {
		return nil, false
	}
	return r.DataExtensions[index1based-1], true
}

// MergeTREs collapses every TRE_OVERFLOW DES back into the section it
// spilled from (§4.6.2). It walks dataExtensions from the front, and after
// every removal restarts from the front: removing a DES renumbers every
// later DES's 1-based index, so any position computed before a removal is
// stale afterward.
func MergeTREs(r *record.Record) error {
	for {
		i, ok := nextOverflowIndex(r)
		if !ok {
			return nil
		}
		if err := mergeOne(r, i); err != nil {
			return err
		}
	}
}

func nextOverflowIndex(r *record.Record) (int, bool) {
	for i, des := range r.DataExtensions {
		if des.Subheader.IsOverflow() {
			return i, true
		}
	}
	return 0, false
}

func mergeOne(r *record.Record, i0based int) error {
	des := r.DataExtensions[i0based]

	hostKind := des.Subheader.DESOFLW.String()
	segIndex1based, err := des.Subheader.DESITEM.Int()
	if err != nil {
		return nitferr.Wrap(nitferr.KindInvalidOverflow,
			fmt.Sprintf("merge: merge: DES %d has unreadable DESITEM", i0based+1), err)
	}

	dest, ok := findSection(r, hostKind, int(segIndex1based))
	if !ok {
		return nitferr.New(nitferr.KindInvalidOverflow,
			fmt.Sprintf("merge: merge: DES %d names unrecognized host %q item %d", i0based+1, hostKind, segIndex1based))
	}

	dest.section.AppendAll(des.Subheader.UserDefinedSection.Clear())

	if err := dest.lengthField.SetUint(0); err != nil {
		return err
	}
	if err := dest.offsetField.SetUint(0); err != nil {
		return err
	}

	_, err = r.RemoveDataExtensionSegment(i0based)
	return err
}
