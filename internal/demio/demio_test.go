package demio

import (
	"strings"
	"testing"
)

func TestTextReaderParsesHeaderAndRows(t *testing.T) {
	input := "10 10\n1 2 3\n4 5 6\n"
	dx, dy, elev, err := TextReader{}.ReadElevations(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if dx != 10 || dy != 10 {
		t.Errorf("pitch = (%v, %v), want (10, 10)", dx, dy)
	}
	if len(elev) != 2 || len(elev[0]) != 3 {
		t.Fatalf("elevations shape = %dx%d, want 2x3", len(elev), len(elev[0]))
	}
	if elev[1][2] != 6 {
		t.Errorf("elev[1][2] = %d, want 6", elev[1][2])
	}
}

func TestTextReaderRejectsBadHeader(t *testing.T) {
	if _, _, _, err := (TextReader{}).ReadElevations(strings.NewReader("not-a-number 10\n")); err == nil {
		t.Fatal("want error for non-numeric dx")
	}
}
