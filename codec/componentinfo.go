package codec

import (
	"bytes"

	"github.com/nitfgo/nitfgo/subheader"
)

func writeComponentInfo(buf *bytes.Buffer, ci subheader.ComponentInfo) error {
	if err := writeFixedUint(buf, ci.SubheaderLengthWidth, ci.SubheaderLength); err != nil {
		return err
	}
	return writeFixedUint(buf, ci.DataLengthWidth, ci.DataLength)
}

func readComponentInfo(c *cursor, kind string) (subheader.ComponentInfo, error) {
	ci := subheader.NewComponentInfo(kind)
	sl, err := readFixedUint(c, ci.SubheaderLengthWidth)
	if err != nil {
		return ci, err
	}
	dl, err := readFixedUint(c, ci.DataLengthWidth)
	if err != nil {
		return ci, err
	}
	ci.SubheaderLength = sl
	ci.DataLength = dl
	return ci, nil
}
