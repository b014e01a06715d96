package dbjson

import "testing"

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != `["a","b"]` {
		t.Fatalf("unexpected value: %s", v)
	}

	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Fatalf("nil list should store as empty array, got %s", v)
	}
}

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["x","y"]`)); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if len(l) != 2 || l[0] != "x" {
		t.Fatalf("unexpected list: %v", l)
	}

	if err := l.Scan(`["z"]`); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(l) != 1 || l[0] != "z" {
		t.Fatalf("unexpected list: %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if l != nil {
		t.Fatalf("expected nil list, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
