package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// GraphicSubheader models a graphic/symbol segment's subheader: it carries
// only an extendedSection TRE section (no user-defined section), whose
// serialized size is bounded at 9,741 bytes before it must overflow into a
// TRE_OVERFLOW DES.
type GraphicSubheader struct {
	SY     *field.Field
	IDLVL  *field.Field
	ENCRYP *field.Field

	Security *FileSecurity

	SXSHDL *field.Field
	SXSOFL *field.Field

	ExtendedSection *tre.Extensions
}

// GraphicExtendedSectionLimit is the maximum serialized size (§4.3) of a
// graphic subheader's extendedSection before TRE overflow is required.
const GraphicExtendedSectionLimit = 9741

// NewGraphicSubheader builds a default GraphicSubheader for version v at the
// given 1-based display level, with SY="SY" and ENCRYP="0" set.
func NewGraphicSubheader(v Version, idlvl int) *GraphicSubheader {
	s := &GraphicSubheader{
		SY:     field.New("SY", 2, field.String),
		IDLVL:  field.New("IDLVL", 3, field.Integer),
		ENCRYP: field.New("ENCRYP", 1, field.Integer),

		Security: NewFileSecurity(v),

		SXSHDL: field.New("SXSHDL", 5, field.Integer),
		SXSOFL: field.New("SXSOFL", 3, field.Integer),

		ExtendedSection: tre.NewExtensions(),
	}
	_ = s.SY.SetString("SY")
	_ = s.ENCRYP.SetInt(0)
	_ = s.IDLVL.SetInt(int64(idlvl))
	return s
}
