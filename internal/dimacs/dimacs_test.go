package dimacs

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// normalizeClauseSet sorts the literals within each clause and then sorts
// the clauses themselves, so two instances that differ only in clause order
// or in the order literals were listed within a clause compare equal.
func normalizeClauseSet(clauses [][]int) [][]int {
	out := make([][]int, len(clauses))
	for i, c := range clauses {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}

func TestParse_Basic(t *testing.T) {
	src := `c a minimal satisfiable instance
p cnf 3 2
1 2 3 0
-1 -2 -3 0
`
	want := &Instance{
		Variables: 3,
		Clauses:   [][]int{{1, 2, 3}, {-1, -2, -3}},
		Comments:  []string{"c a minimal satisfiable instance"},
	}

	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestParse_MultiLineClause(t *testing.T) {
	src := `p cnf 4 1
1 2
3 4 0
`
	want := [][]int{{1, 2, 3, 4}}

	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %s", err)
	}
	if diff := cmp.Diff(want, got.Clauses); diff != "" {
		t.Errorf("Parse(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestParse_PercentStopsParsing(t *testing.T) {
	src := `p cnf 2 1
1 2 0
%
0 this is trailer junk, not DIMACS
`
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %s", err)
	}
	if len(got.Clauses) != 1 {
		t.Errorf("Clauses: want 1, got %d", len(got.Clauses))
	}
}

func TestParse_EmptyClauseIsUnsatMarker(t *testing.T) {
	src := `p cnf 1 1
0
`
	got, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %s", err)
	}
	if len(got.Clauses) != 1 || len(got.Clauses[0]) != 0 {
		t.Errorf("Clauses: want one empty clause, got %v", got.Clauses)
	}
}

func TestParse_MissingHeader(t *testing.T) {
	src := "1 2 0\n"

	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("Parse(): want error, got none")
	}
}

func TestParse_DuplicateHeader(t *testing.T) {
	src := "p cnf 1 1\np cnf 1 1\n1 0\n"

	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("Parse(): want error, got none")
	}
}

func TestParse_LiteralOutOfRange(t *testing.T) {
	src := "p cnf 2 1\n1 5 0\n"

	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("Parse(): want error, got none")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(): want *ParseError, got %T: %v", err, err)
	}
	if pe.Line != 2 {
		t.Errorf("ParseError.Line: want 2, got %d", pe.Line)
	}
}

func TestParse_TruncatedClauseAtEOF(t *testing.T) {
	src := "p cnf 2 1\n1 2\n"

	_, err := Parse(strings.NewReader(src))
	if err == nil {
		t.Fatalf("Parse(): want error, got none")
	}
}

func TestParseFile_NoSuchFile(t *testing.T) {
	_, err := ParseFile("testdata/does-not-exist.cnf")
	if err == nil {
		t.Fatalf("ParseFile(): want error, got none")
	}
}

// TestWrite_RoundTripPreservesClauseSetSemantics checks that parsing,
// writing, and re-parsing a formula preserves the set of clauses: the
// output need not be byte-identical to any particular input rendering
// (literal order within a clause and clause order are not guaranteed), but
// each clause's set of literals and the set of clauses must match.
func TestWrite_RoundTripPreservesClauseSetSemantics(t *testing.T) {
	src := `c a tiny satisfiable instance
p cnf 4 3
1 -2 3 0
-1 2 0
3 4 -1 0
`
	orig, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(): want no error, got %s", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, orig); err != nil {
		t.Fatalf("Write(): want no error, got %s", err)
	}

	again, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() of written output: want no error, got %s\noutput:\n%s", err, buf.String())
	}

	if again.Variables != orig.Variables {
		t.Errorf("Variables: want %d, got %d", orig.Variables, again.Variables)
	}
	if diff := cmp.Diff(normalizeClauseSet(orig.Clauses), normalizeClauseSet(again.Clauses)); diff != "" {
		t.Errorf("Clauses round-trip mismatch (-want, +got):\n%s", diff)
	}
}

// TestWrite_RoundTripEmptyInstance exercises the degenerate zero-clause
// case, which Write must still render with a well-formed header that Parse
// accepts.
func TestWrite_RoundTripEmptyInstance(t *testing.T) {
	orig := &Instance{Variables: 5}

	var buf bytes.Buffer
	if err := Write(&buf, orig); err != nil {
		t.Fatalf("Write(): want no error, got %s", err)
	}

	again, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() of written output: want no error, got %s", err)
	}
	if again.Variables != 5 || len(again.Clauses) != 0 {
		t.Errorf("round trip of empty instance: want Variables=5, Clauses=[], got %+v", again)
	}
}
