// SPDX-License-Identifier: MIT

package matrix

// Formatting literals shared by Vector.String and Matrix.String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtLineSep  = "\n"
)
