package codec

import (
	"bytes"

	"github.com/nitfgo/nitfgo/complexity"
	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/merge"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/nitfgo/nitfgo/tre"
)

// Write runs the write path from §2: UnmergeTREs, then serialize r's
// structural skeleton to bytes and patch in FL, then fill a blank CLEVEL
// (measured once FL is known) and patch it in too. It mutates r (the
// overflow DES segments UnmergeTREs may create become part of r), matching
// the spec's description of the write path as operating on the Record in
// place before handing it to the writer.
func Write(r *record.Record) ([]byte, error) {
	if err := merge.UnmergeTREs(r); err != nil {
		return nil, err
	}

	imageBlocks, err := writeSegmentBlocks(len(r.Images), r.Header.Images, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeImageSubheader(&sbuf, r.Images[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.Images[i].Data, nil
	})
	if err != nil {
		return nil, err
	}
	graphicBlocks, err := writeSegmentBlocks(len(r.Graphics), r.Header.Graphics, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeGraphicSubheader(&sbuf, r.Graphics[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.Graphics[i].Data, nil
	})
	if err != nil {
		return nil, err
	}
	labelBlocks, err := writeSegmentBlocks(len(r.Labels), r.Header.Labels, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeLabelSubheader(&sbuf, r.Labels[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.Labels[i].Data, nil
	})
	if err != nil {
		return nil, err
	}
	textBlocks, err := writeSegmentBlocks(len(r.Texts), r.Header.Texts, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeTextSubheader(&sbuf, r.Texts[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.Texts[i].Data, nil
	})
	if err != nil {
		return nil, err
	}
	desBlocks, err := writeSegmentBlocks(len(r.DataExtensions), r.Header.DataExtensions, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeDESubheader(&sbuf, r.DataExtensions[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.DataExtensions[i].Data, nil
	})
	if err != nil {
		return nil, err
	}
	resBlocks, err := writeSegmentBlocks(len(r.ReservedExtensions), r.Header.ReservedExts, func(i int) ([]byte, []byte, error) {
		var sbuf bytes.Buffer
		if err := writeRESubheader(&sbuf, r.ReservedExtensions[i].Subheader); err != nil {
			return nil, nil, err
		}
		return sbuf.Bytes(), r.ReservedExtensions[i].Data, nil
	})
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	writeField(&out, r.Header.FHDR())
	writeField(&out, r.Header.FVER())
	clevelOffset := out.Len()
	writeField(&out, r.Header.CLEVEL)
	flOffset := out.Len()
	writeField(&out, r.Header.FL)
	writeSecurity(&out, r.Header.Security)

	writeField(&out, r.Header.NUMI)
	for _, ci := range r.Header.Images {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}
	writeField(&out, r.Header.NUML)
	for _, ci := range r.Header.Labels {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}
	writeField(&out, r.Header.NUMS)
	for _, ci := range r.Header.Graphics {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}
	writeField(&out, r.Header.NUMT)
	for _, ci := range r.Header.Texts {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}
	writeField(&out, r.Header.NUMDES)
	for _, ci := range r.Header.DataExtensions {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}
	writeField(&out, r.Header.NUMRES)
	for _, ci := range r.Header.ReservedExts {
		if err := writeComponentInfo(&out, ci); err != nil {
			return nil, err
		}
	}

	udhd, err := r.Header.UserDefinedSection.Serialize()
	if err != nil {
		return nil, err
	}
	if err := r.Header.UDHDL.SetUint(uint64(len(udhd))); err != nil {
		return nil, err
	}
	writeField(&out, r.Header.UDHDL)
	writeField(&out, r.Header.UDHOFL)
	out.Write(udhd)

	xhd, err := r.Header.ExtendedSection.Serialize()
	if err != nil {
		return nil, err
	}
	if err := r.Header.XHDL.SetUint(uint64(len(xhd))); err != nil {
		return nil, err
	}
	writeField(&out, r.Header.XHDL)
	writeField(&out, r.Header.XHDLOFL)
	out.Write(xhd)

	for _, block := range [][][]byte{imageBlocks, graphicBlocks, labelBlocks, textBlocks, desBlocks, resBlocks} {
		for _, b := range block {
			out.Write(b)
		}
	}

	final := out.Bytes()
	if err := r.Header.FL.SetUint(uint64(len(final))); err != nil {
		return nil, err
	}
	copy(final[flOffset:flOffset+r.Header.FL.Width()], r.Header.FL.Bytes())
	if err := r.SetComplexityLevelIfUnset(complexity.MeasureString); err != nil {
		return nil, err
	}
	copy(final[clevelOffset:clevelOffset+r.Header.CLEVEL.Width()], r.Header.CLEVEL.Bytes())
	return final, nil
}

// writeSegmentBlocks serializes count segments via build, records each
// one's subheader/data lengths into the parallel ComponentInfo slice
// (recomputed from the fresh serialization, never trusted from a prior
// write), and returns each segment's full subheader+data byte block.
func writeSegmentBlocks(count int, infos []subheader.ComponentInfo, build func(i int) (subBytes []byte, dataBytes []byte, err error)) ([][]byte, error) {
	blocks := make([][]byte, count)
	for i := 0; i < count; i++ {
		sub, data, err := build(i)
		if err != nil {
			return nil, err
		}
		infos[i].SubheaderLength = uint64(len(sub))
		infos[i].DataLength = uint64(len(data))
		blocks[i] = append(append([]byte(nil), sub...), data...)
	}
	return blocks, nil
}

// Read decodes a structural skeleton written by Write (or one shaped the
// same way) into a Record, then runs the read path's merge step so any
// TRE_OVERFLOW DES segments are collapsed back into their hosts before the
// caller sees them. resolver is consulted for every TRE tag; nil falls back
// to the default raw handler for all of them.
func Read(data []byte, resolver tre.Resolver) (*record.Record, error) {
	c := newCursor(data)

	fhdr := field.New("FHDR", 4, field.String)
	if err := readField(c, fhdr); err != nil {
		return nil, err
	}
	fver := field.New("FVER", 5, field.String)
	if err := readField(c, fver); err != nil {
		return nil, err
	}
	version := subheader.ParseVersion(fhdr.String(), fver.String())

	header := subheader.NewFileHeader(version)
	if err := readField(c, header.CLEVEL); err != nil {
		return nil, err
	}
	if err := readField(c, header.FL); err != nil {
		return nil, err
	}
	if err := readSecurity(c, header.Security); err != nil {
		return nil, err
	}

	if err := readField(c, header.NUMI); err != nil {
		return nil, err
	}
	numImages, err := countOf(header.NUMI)
	if err != nil {
		return nil, err
	}
	header.Images, err = readComponentInfoList(c, "image", numImages)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.NUML); err != nil {
		return nil, err
	}
	numLabels, err := countOf(header.NUML)
	if err != nil {
		return nil, err
	}
	header.Labels, err = readComponentInfoList(c, "label", numLabels)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.NUMS); err != nil {
		return nil, err
	}
	numGraphics, err := countOf(header.NUMS)
	if err != nil {
		return nil, err
	}
	header.Graphics, err = readComponentInfoList(c, "graphic", numGraphics)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.NUMT); err != nil {
		return nil, err
	}
	numTexts, err := countOf(header.NUMT)
	if err != nil {
		return nil, err
	}
	header.Texts, err = readComponentInfoList(c, "text", numTexts)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.NUMDES); err != nil {
		return nil, err
	}
	numDES, err := countOf(header.NUMDES)
	if err != nil {
		return nil, err
	}
	header.DataExtensions, err = readComponentInfoList(c, "dataExtension", numDES)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.NUMRES); err != nil {
		return nil, err
	}
	numRES, err := countOf(header.NUMRES)
	if err != nil {
		return nil, err
	}
	header.ReservedExts, err = readComponentInfoList(c, "reservedExtension", numRES)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.UDHDL); err != nil {
		return nil, err
	}
	if err := readField(c, header.UDHOFL); err != nil {
		return nil, err
	}
	udhdLen, err := header.UDHDL.Int()
	if err != nil {
		return nil, err
	}
	header.UserDefinedSection, err = readExtensions(c, int(udhdLen), resolver)
	if err != nil {
		return nil, err
	}

	if err := readField(c, header.XHDL); err != nil {
		return nil, err
	}
	if err := readField(c, header.XHDLOFL); err != nil {
		return nil, err
	}
	xhdLen, err := header.XHDL.Int()
	if err != nil {
		return nil, err
	}
	header.ExtendedSection, err = readExtensions(c, int(xhdLen), resolver)
	if err != nil {
		return nil, err
	}

	r := &record.Record{Header: header}

	r.Images = make([]*record.ImageSegment, numImages)
	for i := range r.Images {
		sub, data, err := c.takeSegment(header.Images[i])
		if err != nil {
			return nil, err
		}
		sh, err := readImageSubheader(newCursor(sub), version, resolver)
		if err != nil {
			return nil, err
		}
		r.Images[i] = &record.ImageSegment{Subheader: sh, Data: data}
	}

	r.Graphics = make([]*record.GraphicSegment, numGraphics)
	for i := range r.Graphics {
		sub, data, err := c.takeSegment(header.Graphics[i])
		if err != nil {
			return nil, err
		}
		sh, err := readGraphicSubheader(newCursor(sub), version, resolver)
		if err != nil {
			return nil, err
		}
		r.Graphics[i] = &record.GraphicSegment{Subheader: sh, Data: data}
	}

	r.Labels = make([]*record.LabelSegment, numLabels)
	for i := range r.Labels {
		sub, data, err := c.takeSegment(header.Labels[i])
		if err != nil {
			return nil, err
		}
		sh, err := readLabelSubheader(newCursor(sub), version, resolver)
		if err != nil {
			return nil, err
		}
		r.Labels[i] = &record.LabelSegment{Subheader: sh, Data: data}
	}

	r.Texts = make([]*record.TextSegment, numTexts)
	for i := range r.Texts {
		sub, data, err := c.takeSegment(header.Texts[i])
		if err != nil {
			return nil, err
		}
		sh, err := readTextSubheader(newCursor(sub), version, resolver)
		if err != nil {
			return nil, err
		}
		r.Texts[i] = &record.TextSegment{Subheader: sh, Data: data}
	}

	r.DataExtensions = make([]*record.DESegment, numDES)
	for i := range r.DataExtensions {
		sub, data, err := c.takeSegment(header.DataExtensions[i])
		if err != nil {
			return nil, err
		}
		sh, err := readDESubheader(newCursor(sub), version, resolver)
		if err != nil {
			return nil, err
		}
		r.DataExtensions[i] = &record.DESegment{Subheader: sh, Data: data}
	}

	r.ReservedExtensions = make([]*record.RESegment, numRES)
	for i := range r.ReservedExtensions {
		sub, data, err := c.takeSegment(header.ReservedExts[i])
		if err != nil {
			return nil, err
		}
		sh, err := readRESubheader(newCursor(sub), version)
		if err != nil {
			return nil, err
		}
		r.ReservedExtensions[i] = &record.RESegment{Subheader: sh, Data: data}
	}

	if err := merge.MergeTREs(r); err != nil {
		return nil, err
	}
	return r, nil
}

func countOf(f *field.Field) (int, error) {
	v, err := f.Int()
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func readComponentInfoList(c *cursor, kind string, count int) ([]subheader.ComponentInfo, error) {
	out := make([]subheader.ComponentInfo, count)
	for i := range out {
		ci, err := readComponentInfo(c, kind)
		if err != nil {
			return nil, err
		}
		out[i] = ci
	}
	return out, nil
}

// takeSegment consumes exactly ci's declared subheader and data lengths off
// the cursor, in that order, as the two contiguous byte runs Write laid down.
func (c *cursor) takeSegment(ci subheader.ComponentInfo) (subBytes, dataBytes []byte, err error) {
	subBytes, err = c.take(int(ci.SubheaderLength))
	if err != nil {
		return nil, nil, err
	}
	dataBytes, err = c.take(int(ci.DataLength))
	if err != nil {
		return nil, nil, err
	}
	return subBytes, append([]byte(nil), dataBytes...), nil
}
