package subheader

import "github.com/nitfgo/nitfgo/field"

// FileSecurity is the classification/security group embedded in a file
// header and every subheader kind. Two of its fields (declassification
// exemption, classification authority) are wider under V21 than V20; every
// other field is the same width in both versions. Resizing from V20 to V21
// is always lossless; resizing from V21 to V20 truncates those two fields
// if their content does not fit.
type FileSecurity struct {
	version Version

	classificationSystem      *field.Field
	codewords                 *field.Field
	controlAndHandling        *field.Field
	releasingInstructions     *field.Field
	declassificationType      *field.Field
	declassificationDate      *field.Field
	declassificationExemption *field.Field
	downgrade                 *field.Field
	downgradeDate             *field.Field
	classificationText        *field.Field
	classificationAuthType    *field.Field
	classificationAuthority   *field.Field
	classificationReason      *field.Field
	sourceDate                *field.Field
	securityControlNumber     *field.Field
}

func declassificationExemptionWidth(v Version) int {
	if v == V21 {
		return 6
	}
	return 4
}

func classificationAuthorityWidth(v Version) int {
	if v == V21 {
		return 40
	}
	return 20
}

// NewFileSecurity builds a default, blank-filled FileSecurity for the given
// version, with classification defaulted to "U" (unclassified) as a
// constructor-time mandatory static field.
func NewFileSecurity(v Version) *FileSecurity {
	s := &FileSecurity{version: v}
	s.classificationSystem = field.New("classificationSystem", 2, field.String)
	s.codewords = field.New("codewords", 11, field.String)
	s.controlAndHandling = field.New("controlAndHandling", 2, field.String)
	s.releasingInstructions = field.New("releasingInstructions", 20, field.String)
	s.declassificationType = field.New("declassificationType", 2, field.String)
	s.declassificationDate = field.New("declassificationDate", 8, field.String)
	s.declassificationExemption = field.New("declassificationExemption", declassificationExemptionWidth(v), field.String)
	s.downgrade = field.New("downgrade", 1, field.String)
	s.downgradeDate = field.New("downgradeDate", 8, field.String)
	s.classificationText = field.New("classificationText", 43, field.String)
	s.classificationAuthType = field.New("classificationAuthType", 1, field.String)
	s.classificationAuthority = field.New("classificationAuthority", classificationAuthorityWidth(v), field.String)
	s.classificationReason = field.New("classificationReason", 1, field.String)
	s.sourceDate = field.New("sourceDate", 8, field.String)
	s.securityControlNumber = field.New("securityControlNumber", 15, field.String)
	_ = s.classificationSystem.SetString("U")
	return s
}

// Version reports which edition's widths this group currently uses.
func (s *FileSecurity) Version() Version { return s.version }

// Resize rebuilds the version-dependent fields for target, preserving
// content that still fits and truncating (via the field's own blank/pad
// semantics) what does not when moving from V21 down to V20.
func (s *FileSecurity) Resize(target Version) {
	if s.version == target {
		return
	}
	s.declassificationExemption = resizeField(s.declassificationExemption, declassificationExemptionWidth(target))
	s.classificationAuthority = resizeField(s.classificationAuthority, classificationAuthorityWidth(target))
	s.version = target
}

func resizeField(f *field.Field, width int) *field.Field {
	nf := field.New(f.Name(), width, f.Type())
	content := f.String()
	if len(content) > width {
		content = content[:width]
	}
	_ = nf.SetString(content)
	return nf
}

func (s *FileSecurity) Classification() *field.Field           { return s.classificationSystem }
func (s *FileSecurity) Codewords() *field.Field                { return s.codewords }
func (s *FileSecurity) ControlAndHandling() *field.Field       { return s.controlAndHandling }
func (s *FileSecurity) ReleasingInstructions() *field.Field    { return s.releasingInstructions }
func (s *FileSecurity) DeclassificationType() *field.Field     { return s.declassificationType }
func (s *FileSecurity) DeclassificationDate() *field.Field     { return s.declassificationDate }
func (s *FileSecurity) DeclassificationExemption() *field.Field { return s.declassificationExemption }
func (s *FileSecurity) Downgrade() *field.Field                { return s.downgrade }
func (s *FileSecurity) DowngradeDate() *field.Field            { return s.downgradeDate }
func (s *FileSecurity) ClassificationText() *field.Field       { return s.classificationText }
func (s *FileSecurity) ClassificationAuthType() *field.Field   { return s.classificationAuthType }
func (s *FileSecurity) ClassificationAuthority() *field.Field  { return s.classificationAuthority }
func (s *FileSecurity) ClassificationReason() *field.Field     { return s.classificationReason }
func (s *FileSecurity) SourceDate() *field.Field                { return s.sourceDate }
func (s *FileSecurity) SecurityControlNumber() *field.Field     { return s.securityControlNumber }

// Clone returns a deep, independent copy.
func (s *FileSecurity) Clone() *FileSecurity {
	c := NewFileSecurity(s.version)
	c.classificationSystem = s.classificationSystem.Clone()
	c.codewords = s.codewords.Clone()
	c.controlAndHandling = s.controlAndHandling.Clone()
	c.releasingInstructions = s.releasingInstructions.Clone()
	c.declassificationType = s.declassificationType.Clone()
	c.declassificationDate = s.declassificationDate.Clone()
	c.declassificationExemption = s.declassificationExemption.Clone()
	c.downgrade = s.downgrade.Clone()
	c.downgradeDate = s.downgradeDate.Clone()
	c.classificationText = s.classificationText.Clone()
	c.classificationAuthType = s.classificationAuthType.Clone()
	c.classificationAuthority = s.classificationAuthority.Clone()
	c.classificationReason = s.classificationReason.Clone()
	c.sourceDate = s.sourceDate.Clone()
	c.securityControlNumber = s.securityControlNumber.Clone()
	return c
}
