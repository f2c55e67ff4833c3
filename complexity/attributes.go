package complexity

import (
	"strings"

	"github.com/nitfgo/nitfgo/record"
	"github.com/nitfgo/nitfgo/subheader"
)

// checkImageAttributes implements §4.7a: dispatch by each image's trimmed
// IREP and apply that representation's own rules, combining across images
// with the same raiseMax an unrecognized IREP (Unknown) does not disturb.
func checkImageAttributes(r *record.Record) (Level, error) {
	level := Level03
	for _, seg := range r.Images {
		result, err := imageAttributeLevel(seg.Subheader)
		if err != nil {
			return failed("image attribute check", err)
		}
		level = raiseMax(level, result)
	}
	return level, nil
}

func imageAttributeLevel(s *subheader.ImageSubheader) (Level, error) {
	nbands, err := s.NBANDS.Int()
	if err != nil {
		return 0, err
	}
	nbpp, err := s.NBPP.Int()
	if err != nil {
		return 0, err
	}
	imode := strings.TrimSpace(s.IMODE.String())
	ic := strings.TrimSpace(s.IC.String())
	irep := strings.TrimSpace(s.IREP.String())

	switch irep {
	case "MONO":
		return monoLevel(nbands, nbpp, imode, ic), nil
	case "RGB":
		return rgbLevel(nbands, nbpp, imode, ic), nil
	case "RGB/LUT":
		return rgbLUTLevel(nbands, nbpp, imode, ic), nil
	case "MULTI":
		return multiLevel(nbands, nbpp, imode, ic), nil
	default:
		return Unknown, nil
	}
}

func isCompressed3(ic string) bool { return ic == "C3" || ic == "M3" }
func isCompressed8(ic string) bool { return ic == "C8" || ic == "M8" }

func monoLevel(nbands, nbpp int64, imode, ic string) Level {
	if nbands != 1 || imode != "B" {
		return Level09
	}
	if !oneOf(nbpp, 1, 8, 12, 16, 32, 64) {
		return Level09
	}
	if isCompressed3(ic) && !oneOf(nbpp, 8, 12) {
		return Level09
	}
	return Level03
}

func rgbLevel(nbands, nbpp int64, imode, ic string) Level {
	if nbands != 3 {
		return Level09
	}
	if imode != "B" && imode != "P" && imode != "S" && imode != "R" {
		return Level09
	}
	var level Level
	switch {
	case nbpp == 8:
		level = Level03
	case nbpp == 16 || nbpp == 32:
		level = Level06
	default:
		return Level09
	}
	if isCompressed8(ic) && nbpp > 32 {
		return Level09
	}
	if isCompressed3(ic) && (nbpp > 8 || imode != "P") {
		return Level09
	}
	return level
}

func rgbLUTLevel(nbands, nbpp int64, imode, ic string) Level {
	if nbands != 1 || imode != "B" {
		return Level09
	}
	if !oneOf(nbpp, 1, 8) {
		return Level09
	}
	if ic != "NC" && ic != "NM" {
		return Level09
	}
	return Level03
}

func multiLevel(nbands, nbpp int64, imode, ic string) Level {
	var level Level
	switch {
	case nbands >= 2 && nbands <= 9:
		level = Level03
	case nbands >= 10 && nbands <= 255:
		level = Level06
	case nbands >= 256 && nbands <= 999:
		level = Level07
	default:
		return Level09
	}
	if !oneOf(nbpp, 8, 16, 32, 64) || imode != "B" {
		return Level09
	}
	if isCompressed8(ic) && (imode == "B" || nbpp > 32) {
		return Level09
	}
	if isCompressed3(ic) && !oneOf(nbpp, 8, 12) {
		return Level09
	}
	return level
}

func oneOf(v int64, options ...int64) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
