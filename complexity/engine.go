package complexity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nitfgo/nitfgo/record"
)

// Measure runs the §4.7 check battery, in order, over r and returns the
// maximum of their results. Any check that cannot read a field it needs
// fails the whole measurement immediately with ErrCheckFailed.
func Measure(r *record.Record) (Level, error) {
	checks := []func(*record.Record) (Level, error){
		checkCCSExtent,
		checkFileSize,
		checkImageSize,
		checkImageBlock,
		checkNUMI,
		checkNUMDES,
		checkImageAttributes,
	}

	level := Level03
	for _, check := range checks {
		result, err := check(r)
		if err != nil {
			return 0, err
		}
		level = raiseMax(level, result)
	}
	return level, nil
}

// MeasureString is the convenience form Record.SetComplexityLevelIfUnset
// expects: Measure followed by String.
func MeasureString(r *record.Record) (string, error) {
	level, err := Measure(r)
	if err != nil {
		return "", err
	}
	return level.String(), nil
}

// Get returns r's current CLEVEL if the field has already been set,
// parsing it into a Level; otherwise it falls back to Measure, mirroring
// §6.4's "get(record)" without mutating r (unlike
// Record.SetComplexityLevelIfUnset, which writes the computed value back).
func Get(r *record.Record) (Level, error) {
	if !r.Header.CLEVEL.Blank() {
		v, err := strconv.Atoi(strings.TrimSpace(r.Header.CLEVEL.String()))
		if err != nil {
			return 0, fmt.Errorf("%w: CLEVEL %q: %v", ErrCheckFailed, r.Header.CLEVEL.String(), err)
		}
		return Level(v), nil
	}
	return Measure(r)
}

func failed(field string, err error) (Level, error) {
	return 0, fmt.Errorf("%w: %s: %v", ErrCheckFailed, field, err)
}

// checkCCSExtent implements the CCS-extent row in §4.7: for each image, the
// last row/column it occupies in the Common Coordinate System (ILOC's
// origin plus NROWS/NCOLS) is measured against levelForExtent's four
// thresholds (2047, 8191, 65535, 99999999).
func checkCCSExtent(r *record.Record) (Level, error) {
	level := Level03
	for i, seg := range r.Images {
		rowOrigin, colOrigin, err := parseILOC(seg.Subheader.ILOC.String())
		if err != nil {
			return failed(fmt.Sprintf("image %d ILOC", i), err)
		}
		nrows, err := seg.Subheader.NROWS.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NROWS", i), err)
		}
		ncols, err := seg.Subheader.NCOLS.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NCOLS", i), err)
		}
		level = raiseMax(level, levelForExtent(rowOrigin+nrows))
		level = raiseMax(level, levelForExtent(colOrigin+ncols))
	}
	return level, nil
}

func levelForExtent(v int64) Level {
	switch {
	case v <= 2047:
		return Level03
	case v <= 8191:
		return Level05
	case v <= 65535:
		return Level06
	case v <= 99999999:
		return Level07
	default:
		return Level09
	}
}

// parseILOC splits a 10-character ILOC value into its 5-digit row and
// column origin components.
func parseILOC(raw string) (row, col int64, err error) {
	if len(raw) != 10 {
		return 0, 0, fmt.Errorf("ILOC %q is not 10 characters", raw)
	}
	row, err = strconv.ParseInt(raw[:5], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	col, err = strconv.ParseInt(raw[5:], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// checkFileSize implements the FL row in §4.7.
func checkFileSize(r *record.Record) (Level, error) {
	fl, err := r.Header.FL.Int()
	if err != nil {
		return failed("FL", err)
	}
	switch {
	case fl <= 52428799:
		return Level03, nil
	case fl <= 1073741823:
		return Level05, nil
	case fl <= 2147483647:
		return Level06, nil
	case fl <= 10737418239:
		return Level07, nil
	default:
		return Level09, nil
	}
}

// checkImageSize implements the "Per-image rows×cols" row in §4.7: each
// dimension is checked independently against the thresholds 2048, 8192,
// 65536 and 99999999 (inclusive), not their product, so a long thin image
// (e.g. 4096x512) lands on the tier its larger dimension demands.
func checkImageSize(r *record.Record) (Level, error) {
	levelForDim := func(v int64) Level {
		for i, max := range []int64{2048, 8192, 65536, 99999999} {
			if v <= max {
				return []Level{Level03, Level05, Level06, Level07}[i]
			}
		}
		return Level09
	}
	level := Level03
	for i, seg := range r.Images {
		nrows, err := seg.Subheader.NROWS.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NROWS", i), err)
		}
		ncols, err := seg.Subheader.NCOLS.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NCOLS", i), err)
		}
		level = raiseMax(level, levelForDim(nrows))
		level = raiseMax(level, levelForDim(ncols))
	}
	return level, nil
}

// checkImageBlock implements the "Per-image block size NPPBH/NPPBV" row in
// §4.7: an unblocked image (either dimension zero) is 09; otherwise each
// dimension is checked independently against two thresholds, with anything
// above the second capped at 06 (there is no 07 tier for this check).
func checkImageBlock(r *record.Record) (Level, error) {
	level := Level03
	for i, seg := range r.Images {
		nppbh, err := seg.Subheader.NPPBH.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NPPBH", i), err)
		}
		nppbv, err := seg.Subheader.NPPBV.Int()
		if err != nil {
			return failed(fmt.Sprintf("image %d NPPBV", i), err)
		}
		if nppbh == 0 || nppbv == 0 {
			level = raiseMax(level, Level09)
			continue
		}
		level = raiseMax(level, levelForBlockDim(nppbh))
		level = raiseMax(level, levelForBlockDim(nppbv))
	}
	return level, nil
}

func levelForBlockDim(v int64) Level {
	switch {
	case v <= 2048:
		return Level03
	case v <= 8192:
		return Level05
	default:
		return Level06
	}
}

// checkNUMI implements the NUMI row in §4.7.
func checkNUMI(r *record.Record) (Level, error) {
	numi, err := r.Header.NUMI.Int()
	if err != nil {
		return failed("NUMI", err)
	}
	if numi <= 20 {
		return Level03, nil
	}
	return Level05, nil
}

// checkNUMDES implements the NUMDES row in §4.7.
func checkNUMDES(r *record.Record) (Level, error) {
	numdes, err := r.Header.NUMDES.Int()
	if err != nil {
		return failed("NUMDES", err)
	}
	switch {
	case numdes <= 10:
		return Level03, nil
	case numdes <= 50:
		return Level06, nil
	case numdes <= 100:
		return Level07, nil
	default:
		return Level09, nil
	}
}
