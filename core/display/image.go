// Package display describes what can be shown on the 5x5 LED matrix.
package display

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Width  = 5
	Height = 5

	// MaxBrightness is the brightest level a single LED can take.
	MaxBrightness = 9
)

var (
	ErrInvalidImageShape = errors.New("image must have 5 rows of 5 columns")
	ErrInvalidBrightness = errors.New("brightness must be a digit between 0 and 9")
)

// Image is a full frame for the matrix, one brightness level per LED.
type Image [Height][Width]uint8

// ParseImage reads the row format used by the board firmware, e.g.
// "69996:06960:00600:00000:00000:". Rows are separated by ':' and the
// trailing separator is optional.
func ParseImage(rows string) (Image, error) {
	var img Image

	parts := strings.Split(strings.TrimSuffix(rows, ":"), ":")
	if len(parts) != Height {
		return img, fmt.Errorf("parse image %q: %w", rows, ErrInvalidImageShape)
	}

	for y, row := range parts {
		if len(row) != Width {
			return img, fmt.Errorf("parse image %q: row %d: %w", rows, y, ErrInvalidImageShape)
		}
		for x, r := range row {
			if r < '0' || r > '9' {
				return img, fmt.Errorf("parse image %q: row %d column %d: %w", rows, y, x, ErrInvalidBrightness)
			}
			img[y][x] = uint8(r - '0')
		}
	}

	return img, nil
}

// MustParseImage is like ParseImage but panics on malformed input. Only use
// it for package-level literals.
func MustParseImage(rows string) Image {
	img, err := ParseImage(rows)
	if err != nil {
		panic(err)
	}
	return img
}

// At returns the brightness at column x, row y. Out of range coordinates are
// dark.
func (img Image) At(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return img[y][x]
}

func (img Image) IsBlank() bool {
	return img == Blank
}

// String returns the image in the same row format ParseImage accepts.
func (img Image) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for _, row := range img {
		for _, level := range row {
			sb.WriteByte('0' + level)
		}
		sb.WriteByte(':')
	}
	return sb.String()
}

// Built-in icons.
var (
	Blank    = Image{}
	Yes      = MustParseImage("00000:00009:00090:90900:09000")
	No       = MustParseImage("90009:09090:00900:09090:90009")
	Fabulous = MustParseImage("99999:99099:00000:09090:00900")
	Question = MustParseImage("09990:90009:00990:00000:00900")
	Target   = MustParseImage("30003:60006:90009:60006:30003")
)
