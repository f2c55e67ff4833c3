package subheader

// Version identifies which edition of the standard a Record conforms to.
// It governs FileSecurity field widths and a handful of subheader defaults
// (LabelSubheader only exists under V20).
type Version int

const (
	// Unknown is the zero value: neither FHDR/FVER nor NITF/NSIF identifiers
	// have been recognized yet.
	Unknown Version = iota
	// V20 is NITF 2.0.
	V20
	// V21 is NITF 2.1 or NSIF 1.0 (the two share a wire format for every
	// field this core models).
	V21
)

func (v Version) String() string {
	switch v {
	case V20:
		return "2.0"
	case V21:
		return "2.1"
	default:
		return "unknown"
	}
}

// ParseVersion derives a Version from a file header's FHDR and FVER field
// contents. NITF files carry FHDR="NITF", NSIF files carry FHDR="NSIF"; both
// use FVER to distinguish 02.00 from 02.10. An unrecognized combination
// yields Unknown rather than an error — callers decide whether that is
// fatal.
func ParseVersion(fhdr, fver string) Version {
	switch fhdr {
	case "NITF":
		switch fver {
		case "02.00":
			return V20
		case "02.10":
			return V21
		}
	case "NSIF":
		if fver == "01.00" {
			return V21
		}
	}
	return Unknown
}

// FHDR returns the file-type identifier this version is written with.
func (v Version) FHDR() string {
	if v == V21 {
		return "NITF"
	}
	return "NITF"
}

// FVER returns the file-version identifier this version is written with.
func (v Version) FVER() string {
	switch v {
	case V20:
		return "02.00"
	case V21:
		return "02.10"
	default:
		return ""
	}
}

// HasLabels reports whether this version's Record supports label segments.
// NITF 2.1/NSIF 1.0 dropped the label segment kind entirely.
func (v Version) HasLabels() bool {
	return v == V20
}
