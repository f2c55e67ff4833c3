package main

import (
	"fmt"

	"github.com/nitfgo/nitfgo/field"
	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a Record against its structural invariants",
		Long: `The validate command checks a decoded Record against §8's quantified
invariants: segment counts matching their NUM fields and ComponentInfo
arrays (I1/I2), and every overflow offset field naming an existing
TRE_OVERFLOW DES whose DESOFLW names the host's section (I3). DESITEM is
not compared against the host's position.

Example:
  nitfctl validate sample.ntf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

type validationIssue struct {
	Check string `json:"check"`
	Issue string `json:"issue"`
}

func runValidate(args []string) error {
	path := args[0]
	r, closeFn, err := openRecord(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer closeFn()

	var issues []validationIssue
	note := func(check, format string, a ...interface{}) {
		issues = append(issues, validationIssue{Check: check, Issue: fmt.Sprintf(format, a...)})
	}

	checkCount(r, note, "image", len(r.Images), len(r.Header.Images), r.Header.NUMI)
	checkCount(r, note, "graphic", len(r.Graphics), len(r.Header.Graphics), r.Header.NUMS)
	checkCount(r, note, "label", len(r.Labels), len(r.Header.Labels), r.Header.NUML)
	checkCount(r, note, "text", len(r.Texts), len(r.Header.Texts), r.Header.NUMT)
	checkCount(r, note, "dataExtension", len(r.DataExtensions), len(r.Header.DataExtensions), r.Header.NUMDES)
	checkCount(r, note, "reservedExtension", len(r.ReservedExtensions), len(r.Header.ReservedExts), r.Header.NUMRES)

	checkOverflow(r, note, "fileHeader", "UDHD", r.Header.UDHOFL)
	checkOverflow(r, note, "fileHeader", "XHD", r.Header.XHDLOFL)
	for i, seg := range r.Images {
		checkOverflow(r, note, fmt.Sprintf("image[%d]", i), "UDID", seg.Subheader.UDOFL)
		checkOverflow(r, note, fmt.Sprintf("image[%d]", i), "IXSHD", seg.Subheader.IXSOFL)
	}
	for i, seg := range r.Graphics {
		checkOverflow(r, note, fmt.Sprintf("graphic[%d]", i), "SXSHD", seg.Subheader.SXSOFL)
	}
	for i, seg := range r.Labels {
		checkOverflow(r, note, fmt.Sprintf("label[%d]", i), "LXSHD", seg.Subheader.LXSOFL)
	}
	for i, seg := range r.Texts {
		checkOverflow(r, note, fmt.Sprintf("text[%d]", i), "TXSHD", seg.Subheader.TXSOFL)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":   path,
			"ok":     len(issues) == 0,
			"issues": issues,
		})
	}

	if len(issues) == 0 {
		printInfo("%s: OK\n", path)
		return nil
	}
	printInfo("%s: %d issue(s)\n", path, len(issues))
	for _, iss := range issues {
		printInfo("  [%s] %s\n", iss.Check, iss.Issue)
	}
	return nil
}

func checkCount(r *record.Record, note func(string, string, ...interface{}), kind string, segCount, infoCount int, num *field.Field) {
	n, err := num.Int()
	if err != nil {
		note(kind, "NUM field unreadable: %v", err)
		return
	}
	if int(n) != segCount {
		note(kind, "NUM field (%d) does not match segment count (%d)", n, segCount)
	}
	if infoCount != segCount {
		note(kind, "ComponentInfo count (%d) does not match segment count (%d)", infoCount, segCount)
	}
}

func checkOverflow(r *record.Record, note func(string, string, ...interface{}), host, sectionKind string, offset *field.Field) {
	idx, err := offset.Int()
	if err != nil {
		note(host, "%s overflow offset field unreadable: %v", sectionKind, err)
		return
	}
	if idx == 0 {
		return
	}
	if idx < 1 || int(idx) > len(r.DataExtensions) {
		note(host, "%s overflow offset %d does not name an existing DES", sectionKind, idx)
		return
	}
	des := r.DataExtensions[idx-1]
	if des.Subheader.DESTAG.String() != subheader.DESOverflowTag {
		note(host, "%s overflow offset %d names a DES that is not TRE_OVERFLOW", sectionKind, idx)
		return
	}
	if des.Subheader.DESOFLW.String() != sectionKind {
		note(host, "%s overflow DES[%d] DESOFLW=%q does not match host section %q", sectionKind, idx, des.Subheader.DESOFLW.String(), sectionKind)
	}
}
