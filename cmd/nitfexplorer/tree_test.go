package main

import (
	"testing"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
)

func TestBuildTreeTopLevelGroups(t *testing.T) {
	r := record.New(subheader.V21)
	if _, err := r.NewImageSegment(); err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}

	root := buildTree(r)
	if len(root.children) != 7 {
		t.Fatalf("root children = %d, want 7 (header + 6 segment groups)", len(root.children))
	}

	images := root.children[1]
	if images.label != "Images (1)" {
		t.Errorf("images group label = %q", images.label)
	}
	if len(images.children) != 1 {
		t.Fatalf("images group children = %d, want 1", len(images.children))
	}
}

func TestFlattenRespectsExpanded(t *testing.T) {
	root := &node{
		label:    "root",
		expanded: true,
		children: []*node{
			{label: "a", expanded: false, children: []*node{{label: "a.1"}}},
			{label: "b"},
		},
	}

	rows := flatten(root, 0, nil)
	if len(rows) != 3 {
		t.Fatalf("collapsed flatten length = %d, want 3", len(rows))
	}

	root.children[0].expanded = true
	rows = flatten(root, 0, nil)
	if len(rows) != 4 {
		t.Fatalf("expanded flatten length = %d, want 4", len(rows))
	}
	if rows[2].label != "a.1" || rows[2].depth != 2 {
		t.Errorf("rows[2] = %+v, want label a.1 depth 2", rows[2])
	}
}

func TestExtensionNodeCountsTREs(t *testing.T) {
	r := record.New(subheader.V21)
	seg, err := r.NewImageSegment()
	if err != nil {
		t.Fatalf("NewImageSegment: %v", err)
	}

	n := extensionNode("IXSHD", seg.Subheader.ExtendedSection)
	if n.label != "IXSHD (0 TREs)" {
		t.Errorf("label = %q, want IXSHD (0 TREs)", n.label)
	}
	if len(n.children) != 0 {
		t.Errorf("children = %d, want 0", len(n.children))
	}
}
