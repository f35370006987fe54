package display

import (
	"errors"
	"testing"
)

func TestParseImageReadsRowsTopToBottom(t *testing.T) {
	img, err := ParseImage("69996:06960:00600:00000:00000:")
	if err != nil {
		t.Fatalf("expected image to parse, got %v", err)
	}

	if got := img.At(0, 0); got != 6 {
		t.Fatalf("expected top-left brightness 6, got %d", got)
	}
	if got := img.At(2, 2); got != 6 {
		t.Fatalf("expected centre brightness 6, got %d", got)
	}
	if got := img.At(1, 0); got != 9 {
		t.Fatalf("expected (1,0) brightness 9, got %d", got)
	}
	if got := img.At(4, 4); got != 0 {
		t.Fatalf("expected bottom-right to be dark, got %d", got)
	}
}

func TestParseImageTrailingSeparatorIsOptional(t *testing.T) {
	withSep, err := ParseImage("30003:60006:90009:60006:30003:")
	if err != nil {
		t.Fatalf("expected image with trailing separator to parse, got %v", err)
	}
	withoutSep, err := ParseImage("30003:60006:90009:60006:30003")
	if err != nil {
		t.Fatalf("expected image without trailing separator to parse, got %v", err)
	}

	if withSep != withoutSep {
		t.Fatalf("expected both forms to produce the same image")
	}
}

func TestParseImageRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name     string
		rows     string
		expected error
	}{
		{name: "too few rows", rows: "00000:00000", expected: ErrInvalidImageShape},
		{name: "short row", rows: "0000:00000:00000:00000:00000", expected: ErrInvalidImageShape},
		{name: "too many rows", rows: "00000:00000:00000:00000:00000:00000", expected: ErrInvalidImageShape},
		{name: "non digit", rows: "0000a:00000:00000:00000:00000", expected: ErrInvalidBrightness},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ParseImage(testCase.rows)
			if !errors.Is(err, testCase.expected) {
				t.Fatalf("expected error %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestImageStringRoundTrips(t *testing.T) {
	for _, img := range []Image{Yes, No, Fabulous, Question, Target} {
		parsed, err := ParseImage(img.String())
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", img.String(), err)
		}
		if parsed != img {
			t.Fatalf("expected %q to round trip", img.String())
		}
	}
}

func TestAtOutOfRangeIsDark(t *testing.T) {
	full := MustParseImage("99999:99999:99999:99999:99999")

	for _, coords := range [][2]int{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}} {
		if got := full.At(coords[0], coords[1]); got != 0 {
			t.Fatalf("expected (%d,%d) to be dark, got %d", coords[0], coords[1], got)
		}
	}
}

func TestBlankIsBlank(t *testing.T) {
	if !Blank.IsBlank() {
		t.Fatalf("expected blank image to report blank")
	}
	if Question.IsBlank() {
		t.Fatalf("expected question image to not report blank")
	}
}
