package subheader

// ComponentInfo is one entry of a file header's per-kind component
// information array: the declared byte widths of a segment's subheader and
// data length fields, and the two values themselves. The file header carries
// one ComponentInfo slice per segment kind, index-parallel with that kind's
// segment list (invariant I2).
type ComponentInfo struct {
	SubheaderLengthWidth int
	DataLengthWidth      int
	SubheaderLength      uint64
	DataLength           uint64
}

// componentInfoWidths returns the standard (subheader-length, data-length)
// field widths for a segment kind's entry in the file header.
func componentInfoWidths(kind string) (subheaderWidth, dataWidth int) {
	switch kind {
	case "image":
		return 6, 10
	case "graphic":
		return 4, 6
	case "label":
		return 4, 3
	case "text":
		return 4, 5
	case "dataExtension":
		return 4, 9
	case "reservedExtension":
		return 4, 7
	default:
		return 0, 0
	}
}

// NewComponentInfo builds a zero-valued ComponentInfo with the standard
// widths for kind.
func NewComponentInfo(kind string) ComponentInfo {
	sw, dw := componentInfoWidths(kind)
	return ComponentInfo{SubheaderLengthWidth: sw, DataLengthWidth: dw}
}
