package sqli

import "testing"

func foldTypes(t *testing.T, input string, flags int) string {
	t.Helper()
	st := NewState(input, flags)
	n := st.Fold()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = st.tokenvec[i].Type
	}
	return string(out)
}

func TestFoldArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "1"},
		{"1 + 2 - 3", "1"},
		{"1,000.00", "1"},
		{"a.b.c", "n"},
		{"a = b", "n"},
		{"@v := 1", "v"},
	}
	for _, tt := range tests {
		if got := foldTypes(t, tt.input, 0); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFoldStrings(t *testing.T) {
	// adjacent strings concatenate
	if got := foldTypes(t, "'a' 'b' 'c'", 0); got != "s" {
		t.Errorf("string merge = %q, want s", got)
	}
	// strings around operators survive
	if got := foldTypes(t, "'a' || 'b'", 0); got != "s&s" {
		t.Errorf("fold = %q, want s&s", got)
	}
}

func TestFoldLeadingNoise(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// unary operators, comments, parens and types are skipped up front
		{"- 1", "1"},
		{"/* c */ 1", "1"},
		{"((1", "1"},
		{"1 UNION SELECT", "1UE"},
	}
	for _, tt := range tests {
		if got := foldTypes(t, tt.input, 0); got != tt.want {
			t.Errorf("fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFoldPhraseMerge(t *testing.T) {
	// "UNION ALL" merges into a single union token
	st := NewState("1 UNION ALL SELECT", 0)
	n := st.Fold()
	if n != 3 {
		t.Fatalf("fold count = %d, want 3", n)
	}
	if st.tokenvec[1].Type != typeUnion || st.tokenvec[1].Value() != "UNION ALL" {
		t.Errorf("merged token = (%c, %q)", st.tokenvec[1].Type, st.tokenvec[1].Value())
	}
}

func TestFoldSelectUnary(t *testing.T) {
	// SELECT - 1 drops the unary
	if got := foldTypes(t, "SELECT - 1", 0); got != "E1" {
		t.Errorf("fold = %q, want E1", got)
	}
}

func TestFoldInOperator(t *testing.T) {
	// left unclosed: a closing paren would complete the five-slot
	// "n o ( 1 )" shape, which the overflow rule collapses to "n"
	st := NewState("a IN (1", 0)
	st.Fold()
	// IN followed by left paren is an operator
	found := false
	for _, tk := range st.tokenvec {
		if tk.valueEqualFold("IN") {
			found = true
			if tk.Type != typeOperator {
				t.Errorf("IN type = %c, want o", tk.Type)
			}
		}
	}
	if !found {
		t.Fatal("IN token not found")
	}

	st = NewState("a IN b", 0)
	st.Fold()
	for i := range st.tokenvec {
		if st.tokenvec[i].valueEqualFold("IN") && st.tokenvec[i].Type != typeBareword {
			t.Errorf("bare IN type = %c, want n", st.tokenvec[i].Type)
		}
	}
}

func TestFoldCollate(t *testing.T) {
	st := NewState("x COLLATE utf8_bin", 0)
	n := st.Fold()
	var sawType bool
	for i := 0; i < n; i++ {
		if st.tokenvec[i].valueEqualFold("utf8_bin") && st.tokenvec[i].Type == typeSQLType {
			sawType = true
		}
	}
	if !sawType {
		t.Error("collation name not reclassified as sql type")
	}
}

func TestFoldSemicolons(t *testing.T) {
	if got := foldTypes(t, "1 ;; 2", 0); got != "1;1" {
		t.Errorf("fold = %q, want 1;1", got)
	}
}

func TestFoldEvilBrace(t *testing.T) {
	st := NewState("sel {`` x}", 0)
	st.Fold()
	evil := false
	for _, tk := range st.tokenvec {
		if tk.Type == typeEvil {
			evil = true
		}
	}
	if !evil {
		t.Error("empty tick inside brace did not turn evil")
	}
}

func TestFoldTrailingComment(t *testing.T) {
	// a trailing comment is reattached after folding
	if got := foldTypes(t, "1 = 1 -- done", 0); got != "1c" {
		t.Errorf("fold = %q, want 1c", got)
	}
}

func TestFoldWindowBound(t *testing.T) {
	inputs := []string{
		"1 UNION SELECT a, b, c FROM t WHERE x = 1 AND y = 2 -- tail",
		"a b c d e f g h i j k l m n o p",
		"1 2 3 4 5 6 7 8 9 0",
	}
	for _, in := range inputs {
		st := NewState(in, 0)
		n := st.Fold()
		if n > maxTokens {
			t.Errorf("fold(%q) = %d tokens, want <= %d", in, n, maxTokens)
		}
	}
}
