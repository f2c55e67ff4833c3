package record

import (
	"github.com/nitfgo/nitfgo/internal/nitferr"
	"github.com/nitfgo/nitfgo/subheader"
)

// Kind names the six segment kinds a Record carries. These match the
// strings ComponentInfo widths are keyed by; DESOFLW uses section names
// (UDHD, IXSHD, ...) instead.
type Kind string

const (
	KindImage             Kind = "image"
	KindGraphic           Kind = "graphic"
	KindLabel             Kind = "label"
	KindText              Kind = "text"
	KindDataExtension     Kind = "dataExtension"
	KindReservedExtension Kind = "reservedExtension"
)

// ImageSegment, GraphicSegment, LabelSegment, TextSegment, DESegment and
// RESegment each pair a subheader with the record's view of them — the core
// does not model pixel/graphic/text payload bytes (§1, out of scope),
// beyond a raw placeholder a reader/writer seam can populate.
type ImageSegment struct {
	Subheader *subheader.ImageSubheader
	Data      []byte
}

type GraphicSegment struct {
	Subheader *subheader.GraphicSubheader
	Data      []byte
}

type LabelSegment struct {
	Subheader *subheader.LabelSubheader
	Data      []byte
}

type TextSegment struct {
	Subheader *subheader.TextSubheader
	Data      []byte
}

type DESegment struct {
	Subheader *subheader.DESubheader
	Data      []byte
}

type RESegment struct {
	Subheader *subheader.RESubheader
	Data      []byte
}

// Record is the in-memory object graph of one NITF file: a file header and
// six ordered segment lists. A Record is single-threaded per instance (§5);
// it is not safe for concurrent mutation from multiple goroutines.
type Record struct {
	Header *subheader.FileHeader

	Images             []*ImageSegment
	Graphics           []*GraphicSegment
	Labels             []*LabelSegment
	Texts              []*TextSegment
	DataExtensions     []*DESegment
	ReservedExtensions []*RESegment
}

// New builds a Record with a default-populated FileHeader for version v and
// no segments.
func New(v subheader.Version) *Record {
	return &Record{Header: subheader.NewFileHeader(v)}
}

// Version inspects the header's FHDR/FVER fields, per §4.5.
func (r *Record) Version() subheader.Version {
	return subheader.ParseVersion(r.Header.FHDR().String(), r.Header.FVER().String())
}

// SetComplexityLevelIfUnset writes CLEVEL from measure when the field is
// currently blank. measure is injected rather than imported directly so
// this package never depends on the complexity engine (the overall
// orchestration layer wires the two together, mirroring the resolver
// injection the TRE/registry packages use).
func (r *Record) SetComplexityLevelIfUnset(measure func(*Record) (string, error)) error {
	if !r.Header.CLEVEL.Blank() {
		return nil
	}
	level, err := measure(r)
	if err != nil {
		return err
	}
	return r.Header.CLEVEL.SetString(level)
}

// Clone produces a deep, independent copy: a new header, new FileSecurity,
// and a fresh clone of every segment's subheader and extension sections.
// The plugin registry is process-wide state and is never part of a Record,
// so there is nothing registry-related to clone.
func (r *Record) Clone() *Record {
	c := &Record{Header: cloneFileHeader(r.Header)}
	c.Images = make([]*ImageSegment, len(r.Images))
	for i, s := range r.Images {
		c.Images[i] = &ImageSegment{Subheader: cloneImageSubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	c.Graphics = make([]*GraphicSegment, len(r.Graphics))
	for i, s := range r.Graphics {
		c.Graphics[i] = &GraphicSegment{Subheader: cloneGraphicSubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	c.Labels = make([]*LabelSegment, len(r.Labels))
	for i, s := range r.Labels {
		c.Labels[i] = &LabelSegment{Subheader: cloneLabelSubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	c.Texts = make([]*TextSegment, len(r.Texts))
	for i, s := range r.Texts {
		c.Texts[i] = &TextSegment{Subheader: cloneTextSubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	c.DataExtensions = make([]*DESegment, len(r.DataExtensions))
	for i, s := range r.DataExtensions {
		c.DataExtensions[i] = &DESegment{Subheader: cloneDESubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	c.ReservedExtensions = make([]*RESegment, len(r.ReservedExtensions))
	for i, s := range r.ReservedExtensions {
		c.ReservedExtensions[i] = &RESegment{Subheader: cloneRESubheader(s.Subheader), Data: cloneBytes(s.Data)}
	}
	return c
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// invalidIndex builds the kInvalidObject error remove/move share.
func invalidIndex(op string, i int) error {
	return nitferr.New(nitferr.KindInvalidObject, "record: "+op+": index out of range")
}
