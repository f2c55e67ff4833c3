package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// ImageSubheader carries the fields the CLEVEL battery inspects (dimensions,
// blocking, representation, bits-per-pixel, mode, compression, location) plus
// the userDefinedSection/extendedSection TRE pair and their overflow fields.
type ImageSubheader struct {
	IM     *field.Field
	IDLVL  *field.Field
	ENCRYP *field.Field

	NROWS *field.Field
	NCOLS *field.Field
	NPPBH *field.Field
	NPPBV *field.Field
	IREP  *field.Field
	NBANDS *field.Field
	NBPP  *field.Field
	IMODE *field.Field
	IC    *field.Field
	ILOC  *field.Field
	IMAG  *field.Field

	Security *FileSecurity

	UDIDL  *field.Field
	UDOFL  *field.Field
	IXSHDL *field.Field
	IXSOFL *field.Field

	UserDefinedSection *tre.Extensions
	ExtendedSection    *tre.Extensions
}

// NewImageSubheader builds a default ImageSubheader for version v, placed at
// the given 1-based display level (idlvl). Mandatory static fields are set
// at construction: IM="IM", ENCRYP="0", IC="NC" (not compressed), IMAG="1.0
// ", and ILOC="0000000000" (origin at the CCS's top-left corner) so a
// freshly created segment is immediately readable by the CLEVEL engine's CCS
// extent check without every caller having to set a placement first.
func NewImageSubheader(v Version, idlvl int) *ImageSubheader {
	s := &ImageSubheader{
		IM:     field.New("IM", 2, field.String),
		IDLVL:  field.New("IDLVL", 3, field.Integer),
		ENCRYP: field.New("ENCRYP", 1, field.Integer),

		NROWS:  field.New("NROWS", 8, field.Integer),
		NCOLS:  field.New("NCOLS", 8, field.Integer),
		NPPBH:  field.New("NPPBH", 4, field.Integer),
		NPPBV:  field.New("NPPBV", 4, field.Integer),
		IREP:   field.New("IREP", 8, field.String),
		NBANDS: field.New("NBANDS", 5, field.Integer),
		NBPP:   field.New("NBPP", 2, field.Integer),
		IMODE:  field.New("IMODE", 1, field.String),
		IC:     field.New("IC", 2, field.String),
		ILOC:   field.New("ILOC", 10, field.String),
		IMAG:   field.New("IMAG", 4, field.String),

		Security: NewFileSecurity(v),

		UDIDL:  field.New("UDIDL", 5, field.Integer),
		UDOFL:  field.New("UDOFL", 3, field.Integer),
		IXSHDL: field.New("IXSHDL", 5, field.Integer),
		IXSOFL: field.New("IXSOFL", 3, field.Integer),

		UserDefinedSection: tre.NewExtensions(),
		ExtendedSection:    tre.NewExtensions(),
	}
	_ = s.IM.SetString("IM")
	_ = s.ENCRYP.SetInt(0)
	_ = s.IC.SetString("NC")
	_ = s.IMAG.SetString("1.0 ")
	_ = s.ILOC.SetString("0000000000")
	_ = s.IDLVL.SetInt(int64(idlvl))
	return s
}
