package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// DESOverflowTag is the DESTAG value a synthetic overflow DES segment
// carries, per the unmerge protocol (§4.6).
const DESOverflowTag = "TRE_OVERFLOW"

// DESubheader models a data extension segment's subheader. Unlike the other
// segment kinds it carries only a userDefinedSection (no extendedSection,
// no overflow pair of its own) plus three fields the overflow protocol
// depends on directly: DESOFLW names which host subheader section spilled
// into this DES, DESITEM is that host's 1-based index within its kind, and
// subheaderFieldsLength records the length of the fixed fields that precede
// the user-defined section on the wire.
type DESubheader struct {
	DE     *field.Field
	DESTAG *field.Field
	DESVER *field.Field

	Security *FileSecurity

	DESOFLW *field.Field
	DESITEM *field.Field

	subheaderFieldsLength *field.Field

	UserDefinedSection *tre.Extensions
}

// NewDESubheader builds a default DESubheader for version v with the given
// DESTAG (left-justified, space-padded to width).
func NewDESubheader(v Version, destag string) *DESubheader {
	s := &DESubheader{
		DE:     field.New("DE", 2, field.String),
		DESTAG: field.New("DESTAG", 25, field.String),
		DESVER: field.New("DESVER", 2, field.Integer),

		Security: NewFileSecurity(v),

		DESOFLW: field.New("DESOFLW", 6, field.String),
		DESITEM: field.New("DESITEM", 3, field.Integer),

		subheaderFieldsLength: field.New("DESSHL", 4, field.Integer),

		UserDefinedSection: tre.NewExtensions(),
	}
	_ = s.DE.SetString("DE")
	_ = s.DESTAG.SetString(destag)
	_ = s.DESVER.SetInt(1)
	return s
}

// NewOverflowDESubheader builds the synthetic DES subheader an unmerge
// produces to host the TREs spilled out of hostKind's extension section at
// 1-based index hostIndex within that kind's segment list.
func NewOverflowDESubheader(v Version, hostKind string, hostIndex int) *DESubheader {
	s := NewDESubheader(v, DESOverflowTag)
	_ = s.DESOFLW.SetString(hostKind)
	_ = s.DESITEM.SetInt(int64(hostIndex))
	return s
}

// IsOverflow reports whether this DES carries spilled TREs rather than
// ordinary user payload data.
func (s *DESubheader) IsOverflow() bool {
	return s.DESTAG.String() == DESOverflowTag
}

// SubheaderFieldsLength returns the DESSHL field (the byte length of the
// fixed fields preceding the user-defined section on the wire).
func (s *DESubheader) SubheaderFieldsLength() *field.Field { return s.subheaderFieldsLength }
