package complexity

// Level is a computed Complexity Level. The five conforming values are
// 03/05/06/07/09; Unknown is a sixth internal value a sub-check can return
// to mean "this check has nothing to say about this Record" — it neither
// raises nor caps the running maximum (§4.7a, "Other IREP").
type Level int

const (
	Level03 Level = 3
	Level05 Level = 5
	Level06 Level = 6
	Level07 Level = 7
	Level09 Level = 9

	// Unknown is returned by the image-attribute check for an IREP this
	// engine does not recognize. It is distinct from Level09 internally (it
	// does not force the record's CLEVEL up to 09) but renders the same way.
	Unknown Level = -1
)

// raiseMax folds candidate into current, the way Measure combines every
// sub-check's result: Unknown never changes the running maximum; otherwise
// the higher level wins.
func raiseMax(current, candidate Level) Level {
	if candidate == Unknown {
		return current
	}
	if candidate > current {
		return candidate
	}
	return current
}

// String emits exactly two ASCII digits for every conforming level;
// Unknown renders as "09", matching ToString's documented behavior for
// kUnknown (§4.7, "to_string").
func (l Level) String() string {
	switch l {
	case Level03:
		return "03"
	case Level05:
		return "05"
	case Level06:
		return "06"
	case Level07:
		return "07"
	case Level09, Unknown:
		return "09"
	default:
		return "09"
	}
}
