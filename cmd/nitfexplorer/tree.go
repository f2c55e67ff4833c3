package main

import (
	"fmt"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/tre"
)

// node is one row of the segment/TRE tree: a label, an optional multi-line
// detail shown when it is the selected row, a yankable payload (for the
// clipboard "copy value" binding), and its children. NITF's structure is
// shallow (six segment kinds, each with at most two extension sections, each
// holding TREs with named fields) so a flattened, depth-indented list covers
// it without needing hiveexplorer's dedicated keytree widget.
type node struct {
	label    string
	detail   string
	yankText string
	children []*node
	expanded bool
	depth    int
}

// buildTree turns a Record into the root node of the browsable tree.
func buildTree(r *record.Record) *node {
	root := &node{label: fmt.Sprintf("NITF Record (version %s, CLEVEL %s)", r.Version(), r.Header.CLEVEL.String()), expanded: true}

	root.children = append(root.children, fileHeaderNode(r))
	root.children = append(root.children, segmentGroupNode("Images", len(r.Images), func(i int) *node {
		seg := r.Images[i]
		n := &node{label: fmt.Sprintf("image[%d]  %sx%s  %s", i, seg.Subheader.NROWS.String(), seg.Subheader.NCOLS.String(), seg.Subheader.IREP.String())}
		n.detail = imageDetail(seg)
		n.yankText = n.detail
		n.children = append(n.children, extensionNode("UDID", seg.Subheader.UserDefinedSection))
		n.children = append(n.children, extensionNode("IXSHD", seg.Subheader.ExtendedSection))
		return n
	}))
	root.children = append(root.children, segmentGroupNode("Graphics", len(r.Graphics), func(i int) *node {
		seg := r.Graphics[i]
		n := &node{label: fmt.Sprintf("graphic[%d]", i)}
		n.children = append(n.children, extensionNode("SXSHD", seg.Subheader.ExtendedSection))
		return n
	}))
	root.children = append(root.children, segmentGroupNode("Labels", len(r.Labels), func(i int) *node {
		seg := r.Labels[i]
		n := &node{label: fmt.Sprintf("label[%d]", i)}
		n.children = append(n.children, extensionNode("LXSHD", seg.Subheader.ExtendedSection))
		return n
	}))
	root.children = append(root.children, segmentGroupNode("Texts", len(r.Texts), func(i int) *node {
		seg := r.Texts[i]
		n := &node{label: fmt.Sprintf("text[%d]", i)}
		n.children = append(n.children, extensionNode("TXSHD", seg.Subheader.ExtendedSection))
		return n
	}))
	root.children = append(root.children, segmentGroupNode("Data Extensions", len(r.DataExtensions), func(i int) *node {
		seg := r.DataExtensions[i]
		label := fmt.Sprintf("dataExtension[%d]  %s", i, seg.Subheader.DESTAG.String())
		n := &node{label: label}
		n.detail = desDetail(seg)
		n.yankText = n.detail
		n.children = append(n.children, extensionNode("userDefinedSection", seg.Subheader.UserDefinedSection))
		return n
	}))
	root.children = append(root.children, segmentGroupNode("Reserved Extensions", len(r.ReservedExtensions), func(i int) *node {
		return &node{label: fmt.Sprintf("reservedExtension[%d]", i)}
	}))

	return root
}

func fileHeaderNode(r *record.Record) *node {
	n := &node{label: "File Header"}
	n.detail = fmt.Sprintf(
		"FHDR=%s FVER=%s\nCLEVEL=%s\nFL=%s\nNUMI=%s NUMS=%s NUML=%s NUMT=%s NUMDES=%s NUMRES=%s",
		r.Header.FHDR().String(), r.Header.FVER().String(), r.Header.CLEVEL.String(), r.Header.FL.String(),
		r.Header.NUMI.String(), r.Header.NUMS.String(), r.Header.NUML.String(), r.Header.NUMT.String(),
		r.Header.NUMDES.String(), r.Header.NUMRES.String(),
	)
	n.yankText = n.detail
	n.children = append(n.children, extensionNode("UDHD", r.Header.UserDefinedSection))
	n.children = append(n.children, extensionNode("XHD", r.Header.ExtendedSection))
	return n
}

func segmentGroupNode(label string, count int, build func(i int) *node) *node {
	n := &node{label: fmt.Sprintf("%s (%d)", label, count)}
	for i := 0; i < count; i++ {
		n.children = append(n.children, build(i))
	}
	return n
}

func extensionNode(section string, ext *tre.Extensions) *node {
	n := &node{label: fmt.Sprintf("%s (%d TREs)", section, ext.Len())}
	for _, t := range ext.All() {
		n.children = append(n.children, treNode(t))
	}
	return n
}

func treNode(t *tre.TRE) *node {
	size, _ := t.TotalSize()
	label := t.Tag
	if t.ID != "" {
		label = fmt.Sprintf("%s [%s]", t.Tag, t.ID)
	}
	n := &node{label: fmt.Sprintf("%s (%d bytes)", label, size)}
	payload, err := t.Serialize()
	if err == nil {
		n.yankText = fmt.Sprintf("%s\n%x", label, payload)
	}
	for _, nf := range t.Enumerate() {
		n.children = append(n.children, &node{
			label:    fmt.Sprintf("%s = %q", nf.Path, nf.Field.String()),
			detail:   fmt.Sprintf("%s = %q", nf.Path, nf.Field.String()),
			yankText: nf.Field.String(),
		})
	}
	return n
}

func imageDetail(seg *record.ImageSegment) string {
	s := seg.Subheader
	return fmt.Sprintf(
		"IDLVL=%s ILOC=%s\nNROWS=%s NCOLS=%s NPPBH=%s NPPBV=%s\nIREP=%s NBANDS=%s NBPP=%s IMODE=%s IC=%s",
		s.IDLVL.String(), s.ILOC.String(), s.NROWS.String(), s.NCOLS.String(), s.NPPBH.String(), s.NPPBV.String(),
		s.IREP.String(), s.NBANDS.String(), s.NBPP.String(), s.IMODE.String(), s.IC.String(),
	)
}

func desDetail(seg *record.DESegment) string {
	s := seg.Subheader
	return fmt.Sprintf("DESTAG=%s DESVER=%s DESOFLW=%s DESITEM=%s", s.DESTAG.String(), s.DESVER.String(), s.DESOFLW.String(), s.DESITEM.String())
}

// flatten walks the tree in display order, emitting only rows that are
// currently visible (every ancestor expanded), each tagged with its depth
// for indentation.
func flatten(n *node, depth int, out []*node) []*node {
	n.depth = depth
	out = append(out, n)
	if !n.expanded {
		return out
	}
	for _, c := range n.children {
		out = flatten(c, depth+1, out)
	}
	return out
}
