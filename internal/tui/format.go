package tui

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Used only from the render path.
var printer = message.NewPrinter(language.English)

const (
	checkboxOn  = "[x]"
	checkboxOff = "[ ]"
	emptyCell   = "-"
)

// checkbox renders a checkbox cell.
func checkbox(on bool) string {
	if on {
		return checkboxOn
	}
	return checkboxOff
}

// cellText flattens multi-line API text into a single table cell.
func cellText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return emptyCell
	}
	return s
}

// yearText renders a year, leaving unknown (zero) years blank.
func yearText(y int) string {
	if y == 0 {
		return emptyCell
	}
	return strconv.Itoa(y)
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}
