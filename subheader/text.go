package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// TextSubheader models a text segment's subheader: an extendedSection
// bounded at 9,717 bytes.
type TextSubheader struct {
	TE      *field.Field
	TXTALVL *field.Field
	ENCRYP  *field.Field

	Security *FileSecurity

	TXSHDL *field.Field
	TXSOFL *field.Field

	ExtendedSection *tre.Extensions
}

// TextExtendedSectionLimit is the maximum serialized size of a text
// subheader's extendedSection before TRE overflow is required.
const TextExtendedSectionLimit = 9717

// NewTextSubheader builds a default TextSubheader for version v at the given
// 1-based display level, with TE="TE" and ENCRYP="0" set.
func NewTextSubheader(v Version, idlvl int) *TextSubheader {
	s := &TextSubheader{
		TE:      field.New("TE", 2, field.String),
		TXTALVL: field.New("TXTALVL", 3, field.Integer),
		ENCRYP:  field.New("ENCRYP", 1, field.Integer),

		Security: NewFileSecurity(v),

		TXSHDL: field.New("TXSHDL", 5, field.Integer),
		TXSOFL: field.New("TXSOFL", 3, field.Integer),

		ExtendedSection: tre.NewExtensions(),
	}
	_ = s.TE.SetString("TE")
	_ = s.ENCRYP.SetInt(0)
	_ = s.TXTALVL.SetInt(int64(idlvl))
	return s
}
