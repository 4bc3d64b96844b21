package csvfile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReadRaggedRowsCoercedToEmpty(t *testing.T) {
	tbl, err := Read(write(t, "question,answer,category\nq1,a1,c1\nq2\nq3,a3\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := tbl.NumRows(); got != 3 {
		t.Fatalf("rows = %d, want 3", got)
	}
	ans, _ := tbl.Column("answer")
	if !reflect.DeepEqual(ans, []string{"a1", "", "a3"}) {
		t.Fatalf("answer = %v", ans)
	}
	cat, _ := tbl.Column("category")
	if !reflect.DeepEqual(cat, []string{"c1", "", ""}) {
		t.Fatalf("category = %v", cat)
	}
}

func TestReadQuotedCells(t *testing.T) {
	tbl, err := Read(write(t, "question,answer\n\"има, зарез\",a\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	q, _ := tbl.Column("question")
	if !reflect.DeepEqual(q, []string{"има, зарез"}) {
		t.Fatalf("question = %v", q)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	tbl, err := Read(write(t, "question,answer\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.NumRows() != 0 || tbl.NumColumns() != 2 {
		t.Fatalf("shape = %dx%d", tbl.NumRows(), tbl.NumColumns())
	}
}

func TestReadEmptyFile(t *testing.T) {
	if _, err := Read(write(t, "")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
