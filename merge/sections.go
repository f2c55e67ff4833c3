package merge

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

// Section limits in bytes, per §4.6.1's table.
const (
	fileHeaderSectionLimit = 99999
	imageSectionLimit      = 99999
	graphicSectionLimit    = subheader.GraphicExtendedSectionLimit
	labelSectionLimit      = subheader.LabelExtendedSectionLimit
	textSectionLimit       = subheader.TextExtendedSectionLimit
)

// sectionRef names one extension section that participates in the overflow
// protocol: which host it belongs to, that host's 0-based position within
// its kind (always 0 for the file header, which has only one), the section's
// byte budget, the section itself, the offset field naming the DES carrying
// its overflow (0 = none), the declared-length field a writer would emit for
// the retained portion, and the FileSecurity a newly allocated overflow DES
// must copy.
type sectionRef struct {
	hostKind    string
	hostIndex0  int
	limit       int
	section     *tre.Extensions
	offsetField *field.Field
	lengthField *field.Field
	security    *subheader.FileSecurity
}

// collectSections enumerates every overflow-capable section in r, in a
// fixed, deterministic order: file header, then images, graphics, labels,
// texts.
func collectSections(r *record.Record) []sectionRef {
	var out []sectionRef

	out = append(out,
		sectionRef{
			hostKind: "UDHD", hostIndex0: 0, limit: fileHeaderSectionLimit,
			section: r.Header.UserDefinedSection, offsetField: r.Header.UDHOFL,
			lengthField: r.Header.UDHDL, security: r.Header.Security,
		},
		sectionRef{
			hostKind: "XHD", hostIndex0: 0, limit: fileHeaderSectionLimit,
			section: r.Header.ExtendedSection, offsetField: r.Header.XHDLOFL,
			lengthField: r.Header.XHDL, security: r.Header.Security,
		},
	)

	for i, seg := range r.Images {
		out = append(out,
			sectionRef{
				hostKind: "UDID", hostIndex0: i, limit: imageSectionLimit,
				section: seg.Subheader.UserDefinedSection, offsetField: seg.Subheader.UDOFL,
				lengthField: seg.Subheader.UDIDL, security: seg.Subheader.Security,
			},
			sectionRef{
				hostKind: "IXSHD", hostIndex0: i, limit: imageSectionLimit,
				section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.IXSOFL,
				lengthField: seg.Subheader.IXSHDL, security: seg.Subheader.Security,
			},
		)
	}
	for i, seg := range r.Graphics {
		out = append(out, sectionRef{
			hostKind: "SXSHD", hostIndex0: i, limit: graphicSectionLimit,
			section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.SXSOFL,
			lengthField: seg.Subheader.SXSHDL, security: seg.Subheader.Security,
		})
	}
	for i, seg := range r.Labels {
		out = append(out, sectionRef{
			hostKind: "LXSHD", hostIndex0: i, limit: labelSectionLimit,
			section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.LXSOFL,
			lengthField: seg.Subheader.LXSHDL, security: seg.Subheader.Security,
		})
	}
	for i, seg := range r.Texts {
		out = append(out, sectionRef{
			hostKind: "TXSHD", hostIndex0: i, limit: textSectionLimit,
			section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.TXSOFL,
			lengthField: seg.Subheader.TXSHDL, security: seg.Subheader.Security,
		})
	}
	return out
}

// findSection resolves (hostKind, segIndex1based) to the destination section
// a merge should transfer TREs into, per the table in §4.6.2. segIndex1based
// is ignored for the file header kinds, which have exactly one instance.
func findSection(r *record.Record, hostKind string, segIndex1based int) (sectionRef, bool) {
	switch hostKind {
	case "UDHD":
		return sectionRef{hostKind: hostKind, section: r.Header.UserDefinedSection, offsetField: r.Header.UDHOFL, lengthField: r.Header.UDHDL}, true
	case "XHD":
		return sectionRef{hostKind: hostKind, section: r.Header.ExtendedSection, offsetField: r.Header.XHDLOFL, lengthField: r.Header.XHDL}, true
	case "UDID":
		if seg, ok := imageAt(r, segIndex1based); ok {
			return sectionRef{hostKind: hostKind, section: seg.Subheader.UserDefinedSection, offsetField: seg.Subheader.UDOFL, lengthField: seg.Subheader.UDIDL}, true
		}
	case "IXSHD":
		if seg, ok := imageAt(r, segIndex1based); ok {
			return sectionRef{hostKind: hostKind, section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.IXSOFL, lengthField: seg.Subheader.IXSHDL}, true
		}
	case "SXSHD":
		if segIndex1based >= 1 && segIndex1based <= len(r.Graphics) {
			seg := r.Graphics[segIndex1based-1]
			return sectionRef{hostKind: hostKind, section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.SXSOFL, lengthField: seg.Subheader.SXSHDL}, true
		}
	case "LXSHD":
		if segIndex1based >= 1 && segIndex1based <= len(r.Labels) {
			seg := r.Labels[segIndex1based-1]
			return sectionRef{hostKind: hostKind, section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.LXSOFL, lengthField: seg.Subheader.LXSHDL}, true
		}
	case "TXSHD":
		if segIndex1based >= 1 && segIndex1based <= len(r.Texts) {
			seg := r.Texts[segIndex1based-1]
			return sectionRef{hostKind: hostKind, section: seg.Subheader.ExtendedSection, offsetField: seg.Subheader.TXSOFL, lengthField: seg.Subheader.TXSHDL}, true
		}
	}
	return sectionRef{}, false
}

func imageAt(r *record.Record, segIndex1based int) (*record.ImageSegment, bool) {
	if segIndex1based < 1 || segIndex1based > len(r.Images) {
		return nil, false
	}
	return r.Images[segIndex1based-1], true
}

// readOffset reads an offset field, treating a never-written field the same
// as an explicit 0 ("no overflow") — both mean the same thing here.
func readOffset(f *field.Field) int64 {
	if f.Blank() {
		return 0
	}
	v, err := f.Int()
	if err != nil {
		return 0
	}
	return v
}
