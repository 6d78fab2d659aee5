// Package fingerprint implements the anonymous identity hash used by the
// embeddable widget. The server-side fold must produce byte-identical output
// to the client-side one in public/widget.js, so the algorithm operates on
// UTF-16 code units with 32-bit wrapping arithmetic.
package fingerprint

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// Hash folds s into a base-36 rendered 31-multiplier hash over its UTF-16
// code units, wrapped to int32 at every step, absolute value taken at the end.
func Hash(s string) string {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(cu)
	}
	return render(h)
}

// render matches JS Math.abs(hash).toString(36). The absolute value is taken
// in int64 because -MinInt32 does not exist in int32 and must come out as
// 2147483648, the way Math.abs produces it.
func render(h int32) string {
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// FromSignals concatenates environment signals in their fixed order and
// hashes the result. Signal order is part of the contract: reordering changes
// every fingerprint.
func FromSignals(signals ...string) string {
	return Hash(strings.Join(signals, ""))
}
