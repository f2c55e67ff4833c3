package subheader

import "github.com/nitfgo/nitfgo/field"

// RESubheader models a reserved extension segment's subheader. RES segments
// carry no TRE extension protocol at all — no userDefinedSection, no
// extendedSection, no overflow fields — just identification and security.
type RESubheader struct {
	RE     *field.Field
	IDLVL  *field.Field
	ENCRYP *field.Field

	Security *FileSecurity
}

// NewRESubheader builds a default RESubheader for version v at the given
// 1-based display level, with RE="RE" and ENCRYP="0" set.
func NewRESubheader(v Version, idlvl int) *RESubheader {
	s := &RESubheader{
		RE:     field.New("RE", 2, field.String),
		IDLVL:  field.New("IDLVL", 3, field.Integer),
		ENCRYP: field.New("ENCRYP", 1, field.Integer),
		Security: NewFileSecurity(v),
	}
	_ = s.RE.SetString("RE")
	_ = s.ENCRYP.SetInt(0)
	_ = s.IDLVL.SetInt(int64(idlvl))
	return s
}
