package table

import (
	"reflect"
	"testing"
)

func sample() *Table {
	t := New("question", "answer", "category")
	t.AppendRow([]string{"q1", "a1", "c1"})
	t.AppendRow([]string{"q2", "a2", "c2"})
	return t
}

func TestAppendRowPadsAndTruncates(t *testing.T) {
	tbl := New("a", "b")
	tbl.AppendRow([]string{"1"})
	tbl.AppendRow([]string{"1", "2", "3"})

	if got := tbl.NumRows(); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}
	b, err := tbl.Column("b")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b, []string{"", "2"}) {
		t.Fatalf("column b = %v", b)
	}
}

func TestSelectAndMergeRoundTrip(t *testing.T) {
	tbl := sample()
	proj, err := tbl.Select("question", "answer")
	if err != nil {
		t.Fatal(err)
	}
	if got := proj.NumColumns(); got != 2 {
		t.Fatalf("projection columns = %d, want 2", got)
	}

	proj, err = proj.Assign("answer", []string{"A1", "A2"})
	if err != nil {
		t.Fatal(err)
	}

	merged, err := tbl.Merge(proj)
	if err != nil {
		t.Fatal(err)
	}
	ans, _ := merged.Column("answer")
	if !reflect.DeepEqual(ans, []string{"A1", "A2"}) {
		t.Fatalf("answer = %v", ans)
	}
	cat, _ := merged.Column("category")
	if !reflect.DeepEqual(cat, []string{"c1", "c2"}) {
		t.Fatalf("category changed: %v", cat)
	}
	// source table untouched
	orig, _ := tbl.Column("answer")
	if !reflect.DeepEqual(orig, []string{"a1", "a2"}) {
		t.Fatalf("source mutated: %v", orig)
	}
}

func TestAssignShapeMismatch(t *testing.T) {
	tbl := sample()
	if _, err := tbl.Assign("answer", []string{"one"}); err == nil {
		t.Fatal("expected shape error")
	}
	if _, err := tbl.Assign("missing", []string{"x", "y"}); err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestCellsRowMajor(t *testing.T) {
	tbl := New("a", "b")
	tbl.AppendRow([]string{"1", "2"})
	tbl.AppendRow([]string{"3", "4"})
	if got := tbl.Cells(); !reflect.DeepEqual(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("cells = %v", got)
	}
}
