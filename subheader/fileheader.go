package subheader

import (
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/tre"
)

// FileHeader is the top-level subheader: file identification, the security
// group, and one ComponentInfo slice plus count field per segment kind, plus
// the file-level userDefinedSection/extendedSection TRE extension pair and
// their overflow index fields.
type FileHeader struct {
	version Version

	fhdr *field.Field
	fver *field.Field

	CLEVEL *field.Field
	FL     *field.Field

	Security *FileSecurity

	NUMI           *field.Field
	Images         []ComponentInfo
	NUML           *field.Field
	Labels         []ComponentInfo
	NUMS           *field.Field
	Graphics       []ComponentInfo
	NUMT           *field.Field
	Texts          []ComponentInfo
	NUMDES         *field.Field
	DataExtensions []ComponentInfo
	NUMRES         *field.Field
	ReservedExts   []ComponentInfo

	UDHDL  *field.Field
	UDHOFL *field.Field
	XHDL   *field.Field
	XHDLOFL *field.Field

	UserDefinedSection *tre.Extensions
	ExtendedSection    *tre.Extensions
}

// NewFileHeader builds a default FileHeader for the given version: FHDR/FVER
// set to that version's identifiers, CLEVEL blank (left for the complexity
// engine to fill in), every count at zero, and empty extension sections.
func NewFileHeader(v Version) *FileHeader {
	h := &FileHeader{
		version: v,
		fhdr:    field.New("FHDR", 4, field.String),
		fver:    field.New("FVER", 5, field.String),
		CLEVEL:  field.New("CLEVEL", 2, field.String),
		FL:      field.New("FL", 12, field.Integer),
		Security: NewFileSecurity(v),

		NUMI:   field.New("NUMI", 3, field.Integer),
		NUML:   field.New("NUML", 3, field.Integer),
		NUMS:   field.New("NUMS", 3, field.Integer),
		NUMT:   field.New("NUMT", 3, field.Integer),
		NUMDES: field.New("NUMDES", 3, field.Integer),
		NUMRES: field.New("NUMRES", 3, field.Integer),

		UDHDL:   field.New("UDHDL", 5, field.Integer),
		UDHOFL:  field.New("UDHOFL", 3, field.Integer),
		XHDL:    field.New("XHDL", 5, field.Integer),
		XHDLOFL: field.New("XHDLOFL", 3, field.Integer),

		UserDefinedSection: tre.NewExtensions(),
		ExtendedSection:    tre.NewExtensions(),
	}
	_ = h.fhdr.SetString(v.FHDR())
	_ = h.fver.SetString(v.FVER())
	return h
}

// Version reports which edition this header was constructed for.
func (h *FileHeader) Version() Version { return h.version }

// FHDR returns the file-type identifier field ("NITF").
func (h *FileHeader) FHDR() *field.Field { return h.fhdr }

// FVER returns the file-version identifier field ("02.00"/"02.10").
func (h *FileHeader) FVER() *field.Field { return h.fver }
