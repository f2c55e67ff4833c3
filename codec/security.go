package codec

import (
	"bytes"

	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/subheader"
)

// securityFields returns s's ~14 fields in a fixed wire order, shared by the
// writer and reader so they can never drift apart.
func securityFields(s *subheader.FileSecurity) []*field.Field {
	return []*field.Field{
		s.Classification(),
		s.Codewords(),
		s.ControlAndHandling(),
		s.ReleasingInstructions(),
		s.DeclassificationType(),
		s.DeclassificationDate(),
		s.DeclassificationExemption(),
		s.Downgrade(),
		s.DowngradeDate(),
		s.ClassificationText(),
		s.ClassificationAuthType(),
		s.ClassificationAuthority(),
		s.ClassificationReason(),
		s.SourceDate(),
		s.SecurityControlNumber(),
	}
}

func writeSecurity(buf *bytes.Buffer, s *subheader.FileSecurity) {
	for _, f := range securityFields(s) {
		writeField(buf, f)
	}
}

func readSecurity(c *cursor, s *subheader.FileSecurity) error {
	for _, f := range securityFields(s) {
		if err := readField(c, f); err != nil {
			return err
		}
	}
	return nil
}
