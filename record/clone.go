package record

import "github.com/nitfgo/nitfgo/subheader"

func cloneFileHeader(h *subheader.FileHeader) *subheader.FileHeader {
	c := subheader.NewFileHeader(h.Version())
	_ = c.FHDR().SetBytes(h.FHDR().Bytes())
	_ = c.FVER().SetBytes(h.FVER().Bytes())
	c.CLEVEL = h.CLEVEL.Clone()
	c.FL = h.FL.Clone()
	c.Security = h.Security.Clone()

	c.NUMI = h.NUMI.Clone()
	c.Images = append([]subheader.ComponentInfo(nil), h.Images...)
	c.NUML = h.NUML.Clone()
	c.Labels = append([]subheader.ComponentInfo(nil), h.Labels...)
	c.NUMS = h.NUMS.Clone()
	c.Graphics = append([]subheader.ComponentInfo(nil), h.Graphics...)
	c.NUMT = h.NUMT.Clone()
	c.Texts = append([]subheader.ComponentInfo(nil), h.Texts...)
	c.NUMDES = h.NUMDES.Clone()
	c.DataExtensions = append([]subheader.ComponentInfo(nil), h.DataExtensions...)
	c.NUMRES = h.NUMRES.Clone()
	c.ReservedExts = append([]subheader.ComponentInfo(nil), h.ReservedExts...)

	c.UDHDL = h.UDHDL.Clone()
	c.UDHOFL = h.UDHOFL.Clone()
	c.XHDL = h.XHDL.Clone()
	c.XHDLOFL = h.XHDLOFL.Clone()

	c.UserDefinedSection = h.UserDefinedSection.Clone()
	c.ExtendedSection = h.ExtendedSection.Clone()
	return c
}

func cloneImageSubheader(s *subheader.ImageSubheader) *subheader.ImageSubheader {
	idlvl, _ := s.IDLVL.Int()
	c := subheader.NewImageSubheader(s.Security.Version(), int(idlvl))
	c.NROWS = s.NROWS.Clone()
	c.NCOLS = s.NCOLS.Clone()
	c.NPPBH = s.NPPBH.Clone()
	c.NPPBV = s.NPPBV.Clone()
	c.IREP = s.IREP.Clone()
	c.NBANDS = s.NBANDS.Clone()
	c.NBPP = s.NBPP.Clone()
	c.IMODE = s.IMODE.Clone()
	c.IC = s.IC.Clone()
	c.ILOC = s.ILOC.Clone()
	c.IMAG = s.IMAG.Clone()
	c.Security = s.Security.Clone()
	c.UDIDL = s.UDIDL.Clone()
	c.UDOFL = s.UDOFL.Clone()
	c.IXSHDL = s.IXSHDL.Clone()
	c.IXSOFL = s.IXSOFL.Clone()
	c.UserDefinedSection = s.UserDefinedSection.Clone()
	c.ExtendedSection = s.ExtendedSection.Clone()
	return c
}

func cloneGraphicSubheader(s *subheader.GraphicSubheader) *subheader.GraphicSubheader {
	idlvl, _ := s.IDLVL.Int()
	c := subheader.NewGraphicSubheader(s.Security.Version(), int(idlvl))
	c.Security = s.Security.Clone()
	c.SXSHDL = s.SXSHDL.Clone()
	c.SXSOFL = s.SXSOFL.Clone()
	c.ExtendedSection = s.ExtendedSection.Clone()
	return c
}

func cloneLabelSubheader(s *subheader.LabelSubheader) *subheader.LabelSubheader {
	llvl, _ := s.LLVL.Int()
	c, _ := subheader.NewLabelSubheader(s.Security.Version(), int(llvl))
	c.Security = s.Security.Clone()
	c.LXSHDL = s.LXSHDL.Clone()
	c.LXSOFL = s.LXSOFL.Clone()
	c.ExtendedSection = s.ExtendedSection.Clone()
	return c
}

func cloneTextSubheader(s *subheader.TextSubheader) *subheader.TextSubheader {
	lvl, _ := s.TXTALVL.Int()
	c := subheader.NewTextSubheader(s.Security.Version(), int(lvl))
	c.Security = s.Security.Clone()
	c.TXSHDL = s.TXSHDL.Clone()
	c.TXSOFL = s.TXSOFL.Clone()
	c.ExtendedSection = s.ExtendedSection.Clone()
	return c
}

func cloneDESubheader(s *subheader.DESubheader) *subheader.DESubheader {
	c := subheader.NewDESubheader(s.Security.Version(), s.DESTAG.String())
	c.DESVER = s.DESVER.Clone()
	c.Security = s.Security.Clone()
	c.DESOFLW = s.DESOFLW.Clone()
	c.DESITEM = s.DESITEM.Clone()
	_ = c.SubheaderFieldsLength().SetBytes(s.SubheaderFieldsLength().Bytes())
	c.UserDefinedSection = s.UserDefinedSection.Clone()
	return c
}

func cloneRESubheader(s *subheader.RESubheader) *subheader.RESubheader {
	idlvl, _ := s.IDLVL.Int()
	c := subheader.NewRESubheader(s.Security.Version(), int(idlvl))
	c.Security = s.Security.Clone()
	return c
}
