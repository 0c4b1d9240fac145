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
)

// bg returns the truecolor background escape sequence for c.
func bg(c RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

// GradientBlocks renders one background-coloured cell per colour, emitting an
// escape sequence only when the cell colour changes.
func GradientBlocks(colours []RGB) string {
	var sb strings.Builder
	last := ""
	for _, c := range colours {
		seq := bg(c)
		if seq != last {
			sb.WriteString(seq)
			last = seq
		}
		sb.WriteByte(' ')
	}
	if len(colours) > 0 {
		sb.WriteString(ansiReset)
	}
	return sb.String()
}
