package codec

import (
	"bytes"

	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

// --- Image ---

func writeImageSubheader(buf *bytes.Buffer, s *subheader.ImageSubheader) error {
	for _, f := range []*field.Field{
		s.IM, s.IDLVL, s.ENCRYP, s.NROWS, s.NCOLS, s.NPPBH, s.NPPBV,
		s.IREP, s.NBANDS, s.NBPP, s.IMODE, s.IC, s.ILOC, s.IMAG,
	} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)

	udid, err := s.UserDefinedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.UDIDL.SetUint(uint64(len(udid))); err != nil {
		return err
	}
	writeField(buf, s.UDIDL)
	writeField(buf, s.UDOFL)
	buf.Write(udid)

	ixshd, err := s.ExtendedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.IXSHDL.SetUint(uint64(len(ixshd))); err != nil {
		return err
	}
	writeField(buf, s.IXSHDL)
	writeField(buf, s.IXSOFL)
	buf.Write(ixshd)
	return nil
}

func readImageSubheader(c *cursor, v subheader.Version, resolver tre.Resolver) (*subheader.ImageSubheader, error) {
	s := subheader.NewImageSubheader(v, 1)
	for _, f := range []*field.Field{
		s.IM, s.IDLVL, s.ENCRYP, s.NROWS, s.NCOLS, s.NPPBH, s.NPPBV,
		s.IREP, s.NBANDS, s.NBPP, s.IMODE, s.IC, s.ILOC, s.IMAG,
	} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}

	if err := readField(c, s.UDIDL); err != nil {
		return nil, err
	}
	if err := readField(c, s.UDOFL); err != nil {
		return nil, err
	}
	udidLen, err := s.UDIDL.Int()
	if err != nil {
		return nil, err
	}
	uds, err := readExtensions(c, int(udidLen), resolver)
	if err != nil {
		return nil, err
	}
	s.UserDefinedSection = uds

	if err := readField(c, s.IXSHDL); err != nil {
		return nil, err
	}
	if err := readField(c, s.IXSOFL); err != nil {
		return nil, err
	}
	ixshdLen, err := s.IXSHDL.Int()
	if err != nil {
		return nil, err
	}
	ext, err := readExtensions(c, int(ixshdLen), resolver)
	if err != nil {
		return nil, err
	}
	s.ExtendedSection = ext
	return s, nil
}

// --- Graphic ---

func writeGraphicSubheader(buf *bytes.Buffer, s *subheader.GraphicSubheader) error {
	for _, f := range []*field.Field{s.SY, s.IDLVL, s.ENCRYP} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)

	sxshd, err := s.ExtendedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.SXSHDL.SetUint(uint64(len(sxshd))); err != nil {
		return err
	}
	writeField(buf, s.SXSHDL)
	writeField(buf, s.SXSOFL)
	buf.Write(sxshd)
	return nil
}

func readGraphicSubheader(c *cursor, v subheader.Version, resolver tre.Resolver) (*subheader.GraphicSubheader, error) {
	s := subheader.NewGraphicSubheader(v, 1)
	for _, f := range []*field.Field{s.SY, s.IDLVL, s.ENCRYP} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}
	if err := readField(c, s.SXSHDL); err != nil {
		return nil, err
	}
	if err := readField(c, s.SXSOFL); err != nil {
		return nil, err
	}
	length, err := s.SXSHDL.Int()
	if err != nil {
		return nil, err
	}
	ext, err := readExtensions(c, int(length), resolver)
	if err != nil {
		return nil, err
	}
	s.ExtendedSection = ext
	return s, nil
}

// --- Label (V20 only) ---

func writeLabelSubheader(buf *bytes.Buffer, s *subheader.LabelSubheader) error {
	for _, f := range []*field.Field{s.LA, s.LLVL, s.ENCRYP} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)

	lxshd, err := s.ExtendedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.LXSHDL.SetUint(uint64(len(lxshd))); err != nil {
		return err
	}
	writeField(buf, s.LXSHDL)
	writeField(buf, s.LXSOFL)
	buf.Write(lxshd)
	return nil
}

func readLabelSubheader(c *cursor, v subheader.Version, resolver tre.Resolver) (*subheader.LabelSubheader, error) {
	s, err := subheader.NewLabelSubheader(v, 1)
	if err != nil {
		return nil, err
	}
	for _, f := range []*field.Field{s.LA, s.LLVL, s.ENCRYP} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}
	if err := readField(c, s.LXSHDL); err != nil {
		return nil, err
	}
	if err := readField(c, s.LXSOFL); err != nil {
		return nil, err
	}
	length, err := s.LXSHDL.Int()
	if err != nil {
		return nil, err
	}
	ext, err := readExtensions(c, int(length), resolver)
	if err != nil {
		return nil, err
	}
	s.ExtendedSection = ext
	return s, nil
}

// --- Text ---

func writeTextSubheader(buf *bytes.Buffer, s *subheader.TextSubheader) error {
	for _, f := range []*field.Field{s.TE, s.TXTALVL, s.ENCRYP} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)

	txshd, err := s.ExtendedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.TXSHDL.SetUint(uint64(len(txshd))); err != nil {
		return err
	}
	writeField(buf, s.TXSHDL)
	writeField(buf, s.TXSOFL)
	buf.Write(txshd)
	return nil
}

func readTextSubheader(c *cursor, v subheader.Version, resolver tre.Resolver) (*subheader.TextSubheader, error) {
	s := subheader.NewTextSubheader(v, 1)
	for _, f := range []*field.Field{s.TE, s.TXTALVL, s.ENCRYP} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}
	if err := readField(c, s.TXSHDL); err != nil {
		return nil, err
	}
	if err := readField(c, s.TXSOFL); err != nil {
		return nil, err
	}
	length, err := s.TXSHDL.Int()
	if err != nil {
		return nil, err
	}
	ext, err := readExtensions(c, int(length), resolver)
	if err != nil {
		return nil, err
	}
	s.ExtendedSection = ext
	return s, nil
}

// --- Data Extension ---

func writeDESubheader(buf *bytes.Buffer, s *subheader.DESubheader) error {
	for _, f := range []*field.Field{s.DE, s.DESTAG, s.DESVER} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)
	for _, f := range []*field.Field{s.DESOFLW, s.DESITEM} {
		writeField(buf, f)
	}

	uds, err := s.UserDefinedSection.Serialize()
	if err != nil {
		return err
	}
	if err := s.SubheaderFieldsLength().SetUint(uint64(len(uds))); err != nil {
		return err
	}
	writeField(buf, s.SubheaderFieldsLength())
	buf.Write(uds)
	return nil
}

func readDESubheader(c *cursor, v subheader.Version, resolver tre.Resolver) (*subheader.DESubheader, error) {
	s := subheader.NewDESubheader(v, "")
	for _, f := range []*field.Field{s.DE, s.DESTAG, s.DESVER} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}
	for _, f := range []*field.Field{s.DESOFLW, s.DESITEM} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readField(c, s.SubheaderFieldsLength()); err != nil {
		return nil, err
	}
	length, err := s.SubheaderFieldsLength().Int()
	if err != nil {
		return nil, err
	}
	uds, err := readExtensions(c, int(length), resolver)
	if err != nil {
		return nil, err
	}
	s.UserDefinedSection = uds
	return s, nil
}

// --- Reserved Extension ---

func writeRESubheader(buf *bytes.Buffer, s *subheader.RESubheader) error {
	for _, f := range []*field.Field{s.RE, s.IDLVL, s.ENCRYP} {
		writeField(buf, f)
	}
	writeSecurity(buf, s.Security)
	return nil
}

func readRESubheader(c *cursor, v subheader.Version) (*subheader.RESubheader, error) {
	s := subheader.NewRESubheader(v, 1)
	for _, f := range []*field.Field{s.RE, s.IDLVL, s.ENCRYP} {
		if err := readField(c, f); err != nil {
			return nil, err
		}
	}
	if err := readSecurity(c, s.Security); err != nil {
		return nil, err
	}
	return s, nil
}
