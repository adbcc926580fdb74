package text

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// ErrInvalidWidth is returned by Abbreviated when the requested width cannot
// hold the ellipsis and at least one cell of text.
var ErrInvalidWidth = errors.New("invalid width")

const ellipsis = "..."

// Abbreviated shortens t so that it fits into width terminal cells, ending
// with "..." when anything was cut. East Asian wide characters count as two
// cells. Text that already fits is returned as is.
func Abbreviated(t Text, width int) Text {
	return From(func() (string, error) {
		if width <= runewidth.StringWidth(ellipsis) {
			return "", fmt.Errorf("%w: %d", ErrInvalidWidth, width)
		}
		if t == nil {
			return "", ErrNilSource
		}
		s, err := t.AsString()
		if err != nil {
			return "", err
		}
		return runewidth.Truncate(s, width, ellipsis), nil
	})
}
