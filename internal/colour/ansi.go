package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bg + block + ansiReset
}

// FormatWithPreview formats a colour with its preview block and hex code.
func FormatWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(rgb, width), rgb.Hex())
}

// FormatWithLabel formats a colour with a preview block, a label and its hex code.
func FormatWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-24s %s", Preview(rgb, width), label, rgb.Hex())
}
