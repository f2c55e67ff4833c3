package main

import (
	"fmt"

	"github.com/nitfgo/nitfgo/record"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a NITF file's structure",
		Long: `The inspect command prints the file header version, complexity level, file
length, and the per-kind segment counts of a NITF file.

Example:
  nitfctl inspect sample.ntf
  nitfctl inspect sample.ntf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
	return cmd
}

type segmentCount struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

func runInspect(args []string) error {
	path := args[0]
	printVerbose("Opening NITF file: %s\n", path)

	r, closeFn, err := openRecord(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer closeFn()

	counts := []segmentCount{
		{string(record.KindImage), len(r.Images)},
		{string(record.KindGraphic), len(r.Graphics)},
		{string(record.KindLabel), len(r.Labels)},
		{string(record.KindText), len(r.Texts)},
		{string(record.KindDataExtension), len(r.DataExtensions)},
		{string(record.KindReservedExtension), len(r.ReservedExtensions)},
	}

	if jsonOut {
		result := map[string]interface{}{
			"path":     path,
			"version":  r.Version().String(),
			"clevel":   r.Header.CLEVEL.String(),
			"fileSize": r.Header.FL.String(),
			"segments": counts,
		}
		return printJSON(result)
	}

	printInfo("NITF file: %s\n", path)
	printInfo("  Version:  %s\n", r.Version().String())
	printInfo("  CLEVEL:   %s\n", r.Header.CLEVEL.String())
	printInfo("  FL:       %s bytes\n", r.Header.FL.String())
	printInfo("  Segments:\n")
	for _, c := range counts {
		printInfo("    %-16s %d\n", c.Kind, c.Count)
	}
	return nil
}
