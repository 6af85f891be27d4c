package dfa

import "testing"

func TestTableSetGetRow(t *testing.T) {
	tbl := NewTable[charLabel]()
	if row := tbl.GetRow(0); row != nil {
		t.Fatalf("expected nil row for absent state, got %v", row)
	}

	tbl.Set(0, tr('a'), 1)
	tbl.Set(0, tr('b'), 2)
	row := tbl.GetRow(0)
	if len(row) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(row))
	}

	seen := map[rune]StateLabel{}
	for _, e := range row {
		seen[rune(e.Transition.Value)] = e.To
	}
	if seen['a'] != 1 || seen['b'] != 2 {
		t.Fatalf("unexpected row contents: %v", seen)
	}
}

func TestTableSetOverwrite(t *testing.T) {
	tbl := NewTable[charLabel]()
	tbl.Set(0, tr('a'), 1)
	tbl.Set(0, tr('a'), 2)
	row := tbl.GetRow(0)
	if len(row) != 1 || row[0].To != 2 {
		t.Fatalf("expected overwrite to leave single entry targeting 2, got %v", row)
	}
}
