// SPDX-License-Identifier: MIT

package geom

import (
	"strconv"
	"strings"
)

// writeFixed renders x like fmt's "%8.4f" without going through reflection.
func writeFixed(b *strings.Builder, x Scalar) {
	var buf [32]byte
	digits := strconv.AppendFloat(buf[:0], float64(x), 'f', prettyPrecision, 32)
	for pad := prettyWidth - len(digits); pad > 0; pad-- {
		b.WriteByte(' ')
	}
	b.Write(digits)
}

// prettyMatrix renders one row per line in mathematical (row) order:
//
//	mat3 (
//	  (  1.0000,   0.0000,   0.0000 )
//	  ...
//	)
func prettyMatrix(name string, named bool, rows [][]Scalar) string {
	var b strings.Builder
	if named {
		b.WriteString(name)
		b.WriteByte(' ')
	}
	b.WriteString("(\n")
	for _, r := range rows {
		b.WriteString("  ")
		writeComponents(&b, r)
		b.WriteByte('\n')
	}
	b.WriteByte(')')

	return b.String()
}
