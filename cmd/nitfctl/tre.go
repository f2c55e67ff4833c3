package main

import (
	"fmt"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/tre"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTRECmd())
}

func newTRECmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tre <file>",
		Short: "List every TRE across a NITF file's extension sections",
		Long: `The tre command walks the file header and every segment's
userDefinedSection/extendedSection and prints each TRE's tag, host, section,
and serialized size.

Example:
  nitfctl tre sample.ntf
  nitfctl tre sample.ntf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTRE(args)
		},
	}
	return cmd
}

type treRow struct {
	Host    string `json:"host"`
	Section string `json:"section"`
	Tag     string `json:"tag"`
	Size    uint32 `json:"size"`
}

func collectTRERows(r *record.Record) ([]treRow, error) {
	var rows []treRow
	add := func(host, section string, ext *tre.Extensions) error {
		for _, t := range ext.All() {
			size, err := t.TotalSize()
			if err != nil {
				return err
			}
			rows = append(rows, treRow{Host: host, Section: section, Tag: t.Tag, Size: size})
		}
		return nil
	}

	if err := add("fileHeader", "UDHD", r.Header.UserDefinedSection); err != nil {
		return nil, err
	}
	if err := add("fileHeader", "XHD", r.Header.ExtendedSection); err != nil {
		return nil, err
	}
	for i, seg := range r.Images {
		host := fmt.Sprintf("image[%d]", i)
		if err := add(host, "UDID", seg.Subheader.UserDefinedSection); err != nil {
			return nil, err
		}
		if err := add(host, "IXSHD", seg.Subheader.ExtendedSection); err != nil {
			return nil, err
		}
	}
	for i, seg := range r.Graphics {
		host := fmt.Sprintf("graphic[%d]", i)
		if err := add(host, "SXSHD", seg.Subheader.ExtendedSection); err != nil {
			return nil, err
		}
	}
	for i, seg := range r.Labels {
		host := fmt.Sprintf("label[%d]", i)
		if err := add(host, "LXSHD", seg.Subheader.ExtendedSection); err != nil {
			return nil, err
		}
	}
	for i, seg := range r.Texts {
		host := fmt.Sprintf("text[%d]", i)
		if err := add(host, "TXSHD", seg.Subheader.ExtendedSection); err != nil {
			return nil, err
		}
	}
	for i, seg := range r.DataExtensions {
		host := fmt.Sprintf("dataExtension[%d]", i)
		if err := add(host, "userDefinedSection", seg.Subheader.UserDefinedSection); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func runTRE(args []string) error {
	path := args[0]
	r, closeFn, err := openRecord(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer closeFn()

	rows, err := collectTRERows(r)
	if err != nil {
		return fmt.Errorf("failed to enumerate TREs: %w", err)
	}

	if jsonOut {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		printInfo("(no TREs)\n")
		return nil
	}
	for _, row := range rows {
		printInfo("%-20s %-20s %-6s %d bytes\n", row.Host, row.Section, row.Tag, row.Size)
	}
	return nil
}
