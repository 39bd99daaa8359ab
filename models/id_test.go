package models

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	valid := map[string]uint{
		"1":     1,
		"42":    42,
		" 42 ":  42,
		"00007": 7,
	}
	for in, want := range valid {
		got, err := ParseID(in)
		if err != nil {
			t.Errorf("ParseID(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseID(%q) = %d, want %d", in, got, want)
		}
	}

	for _, in := range []string{"", "0", "-1", "abc", "1.5", "1e3", "99999999999999999999"} {
		if _, err := ParseID(in); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q): err = %v, want ErrInvalidID", in, err)
		}
	}
}

func TestFormatIDRoundTrip(t *testing.T) {
	for _, id := range []uint{1, 42, 4294967295} {
		parsed, err := ParseID(FormatID(id))
		if err != nil {
			t.Fatalf("round-trip %d: %v", id, err)
		}
		if parsed != id {
			t.Fatalf("round-trip %d = %d", id, parsed)
		}
	}
}

func TestIDListScan(t *testing.T) {
	var l IDList
	if err := l.Scan([]byte(`["1","2","3"]`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(l) != 3 || !l.Contains("2") {
		t.Fatalf("scanned list = %v", l)
	}
	if l.Contains("4") {
		t.Fatal("Contains reported an absent id")
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Fatalf("nil column must scan to an empty list, got %v", l)
	}
}

func TestIDListValue(t *testing.T) {
	var l IDList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Fatalf("nil list serialized as %s, want []", v)
	}
}
