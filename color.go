package ctext

const (
	// csi opens a control sequence; every expression renders as
	// csi + params + "m"
	csi = "\x1b["

	// sgrReset reverts the terminal to plain formatting
	sgrReset = "\x1b[0m"
)

// styles maps a style marker to its SGR parameter. The zero marker is
// plain formatting.
var styles = map[byte]string{
	'*': "1", // bold
	'_': "4", // underline
	0:   "0", // plain
}

// colors maps the sixteen color letters to SGR foreground parameters.
// Lowercase letters select the normal ANSI colors 30-37, uppercase the
// bright variants 90-97.
var colors = map[byte]string{
	'k': "30", 'K': "90", // black
	'r': "31", 'R': "91", // red
	'g': "32", 'G': "92", // green
	'y': "33", 'Y': "93", // yellow
	'b': "34", 'B': "94", // blue
	'm': "35", 'M': "95", // magenta
	'c': "36", 'C': "96", // cyan
	'w': "37", 'W': "97", // white
}
