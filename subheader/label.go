package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// LabelSubheader exists only under V20: NITF 2.1/NSIF 1.0 dropped the label
// segment kind. It carries an extendedSection bounded at 9,747 bytes.
type LabelSubheader struct {
	LA     *field.Field
	LLVL   *field.Field
	ENCRYP *field.Field

	Security *FileSecurity

	LXSHDL *field.Field
	LXSOFL *field.Field

	ExtendedSection *tre.Extensions
}

// LabelExtendedSectionLimit is the maximum serialized size of a label
// subheader's extendedSection before TRE overflow is required.
const LabelExtendedSectionLimit = 9747

// NewLabelSubheader builds a default LabelSubheader at the given 1-based
// display level. It fails with ErrUnsupportedByVersion under V21, since
// label segments do not exist there.
func NewLabelSubheader(v Version, idlvl int) (*LabelSubheader, error) {
	if !v.HasLabels() {
		return nil, ErrUnsupportedByVersion
	}
	s := &LabelSubheader{
		LA:     field.New("LA", 2, field.String),
		LLVL:   field.New("LLVL", 3, field.Integer),
		ENCRYP: field.New("ENCRYP", 1, field.Integer),

		Security: NewFileSecurity(v),

		LXSHDL: field.New("LXSHDL", 5, field.Integer),
		LXSOFL: field.New("LXSOFL", 3, field.Integer),

		ExtendedSection: tre.NewExtensions(),
	}
	_ = s.LA.SetString("LA")
	_ = s.ENCRYP.SetInt(0)
	_ = s.LLVL.SetInt(int64(idlvl))
	return s, nil
}
