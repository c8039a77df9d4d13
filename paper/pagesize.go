package paper

import (
	"fmt"
	"strings"
)

// PageSize selects the paper format of the generated document.
type PageSize int

const (
	A4 PageSize = iota
	Letter
)

func (p PageSize) String() string {
	switch p {
	case Letter:
		return "Letter"
	default:
		return "A4"
	}
}

// Dimensions returns the page width and height in millimeters.
func (p PageSize) Dimensions() (w, h float64) {
	switch p {
	case Letter:
		return 215.9, 279.4
	default:
		return 210, 297
	}
}

func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a4":
		return A4, nil
	case "letter":
		return Letter, nil
	}
	return A4, fmt.Errorf("unknown page size %q (want A4 or Letter)", s)
}
