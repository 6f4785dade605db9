package sqli

import (
	"strings"
	"testing"
)

func TestIsSQLiAttacks(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"classic quoted or", "1' OR '1'='1"},
		{"union select", "1 UNION SELECT * FROM users"},
		{"union with comment", "-1' and 1=1 union/* foo */select load_file('/etc/passwd')--"},
		{"stacked drop", "1; DROP TABLE users--"},
		{"quote comment", "admin'--"},
		{"bare or", "1 OR 1=1"},
		{"mysql executable comment", "/*!32302 1/0, */"},
		{"nested c comment", "1 /* outer /* inner */"},
		{"dash dash tail", "1--"},
		{"sp_password audit evasion", "abc'--sp_password"},
		{"c comment after bareword", "foo /* bar */"},
		{"union select from", "1 union select username from users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsSQLi(tt.input) {
				_, fp := FingerprintOf(tt.input)
				t.Errorf("IsSQLi(%q) = false, want true (fingerprint %q)", tt.input, fp)
			}
		})
	}
}

func TestIsSQLiBenign(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n  "},
		{"email", "john.doe@example.com"},
		{"number", "12345"},
		{"words", "hello world"},
		{"price", "1,000.00"},
		{"name with quote", "O'Brien"},
		{"sexy and 17", "sexy and 17"},
		{"one union alone", "1 union"},
		{"word then dashes text", "foo --bar"},
		{"mysql hash comment", "1#x"},
		{"path", "/home/user/docs"},
		{"date", "2026-08-05"},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsSQLi(tt.input) {
				_, fp := FingerprintOf(tt.input)
				t.Errorf("IsSQLi(%q) = true, want false (fingerprint %q)", tt.input, fp)
			}
		})
	}
}

func TestFingerprints(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1' OR '1'='1", "s&sos"},
		{"1 UNION SELECT * FROM users", "1UEok"},
		{"/*!32302 1/0, */", "X"},
		{"john.doe@example.com", ""},
	}

	for _, tt := range tests {
		attack, fp := FingerprintOf(tt.input)
		if fp != tt.want {
			t.Errorf("FingerprintOf(%q) fingerprint = %q, want %q", tt.input, fp, tt.want)
		}
		if attack != (tt.want != "") {
			t.Errorf("FingerprintOf(%q) verdict = %v", tt.input, attack)
		}
	}
}

// fingerprint bytes must come from the token type alphabet and stay short
func TestFingerprintAlphabet(t *testing.T) {
	const alphabet = "kUBEtfn1vso&cA(){}.,:;T?XF\\"
	inputs := []string{
		"1' OR '1'='1",
		"1 UNION SELECT * FROM users",
		"x' AND sleep(5)--",
		"{`` 1}",
		"@@version, @x, $1.00, $$str$$",
		"waitfor delay '0:0:5'",
		"CAST(1 AS CHAR)",
		"a=b&c=d",
	}

	for _, in := range inputs {
		for _, flags := range []int{
			FlagQuoteNone | FlagSQLAnsi,
			FlagQuoteNone | FlagSQLMysql,
			FlagQuoteSingle | FlagSQLAnsi,
			FlagQuoteDouble | FlagSQLMysql,
		} {
			st := NewState(in, flags)
			st.fingerprintPass(flags)
			fp := st.Fingerprint()
			if len(fp) > maxTokens {
				t.Errorf("fingerprint %q of %q longer than %d", fp, in, maxTokens)
			}
			for i := 0; i < len(fp); i++ {
				if strings.IndexByte(alphabet, fp[i]) == -1 {
					t.Errorf("fingerprint %q of %q contains %q outside alphabet", fp, in, fp[i])
				}
			}
		}
	}
}

// the whole pipeline is a pure function of its input
func TestDeterminism(t *testing.T) {
	inputs := []string{
		"1' OR '1'='1",
		"hello world",
		"1 UNION SELECT * FROM users",
	}
	for _, in := range inputs {
		a1, f1 := FingerprintOf(in)
		a2, f2 := FingerprintOf(in)
		if a1 != a2 || f1 != f2 {
			t.Errorf("FingerprintOf(%q) not deterministic: (%v,%q) vs (%v,%q)", in, a1, f1, a2, f2)
		}
	}
}

func TestEvilOverridesFingerprint(t *testing.T) {
	st := NewState("/*! select */ 1  2 3", 0)
	st.fingerprintPass(FlagQuoteNone | FlagSQLAnsi)
	if got := st.Fingerprint(); got != "X" {
		t.Errorf("fingerprint = %q, want X", got)
	}
}

func TestWhitelistRescues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		// 2-token rules
		{"number union folded", "1 union", false},
		{"number dashes eof", "1--", true},
		{"number space dashes", "1234 --", true},
		{"string comment long text", "abc'-- see you later", false},
		{"bareword eol comment", "foo --bar", false},
		// 3-token rules
		{"and without more", "sexy and 17", false},
		{"and with comparison", "sexy and 17<18", true},
		{"middle keyword", "a from b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSQLi(tt.input); got != tt.want {
				_, fp := FingerprintOf(tt.input)
				t.Errorf("IsSQLi(%q) = %v, want %v (fingerprint %q)", tt.input, got, tt.want, fp)
			}
		})
	}
}

// each (quote, dialect) pass of the driver cascade sees its own token
// stream; these inputs pin the fingerprint every context computes
func TestContextFingerprints(t *testing.T) {
	tests := []struct {
		name  string
		input string
		flags int
		want  string
	}{
		{"none ansi", "1 UNION SELECT * FROM users",
			FlagQuoteNone | FlagSQLAnsi, "1UEok"},
		{"single ansi", "1' OR '1'='1",
			FlagQuoteSingle | FlagSQLAnsi, "s&sos"},
		{"double mysql", `1" or "1"="1`,
			FlagQuoteDouble | FlagSQLMysql, "s&sos"},
		// hash is an operator to ANSI and a comment to MySQL
		{"hash ansi", "1 # union select password",
			FlagQuoteNone | FlagSQLAnsi, "1oUEn"},
		{"hash mysql", "1 # union select password",
			FlagQuoteNone | FlagSQLMysql, "1c"},
		{"single ansi hash", "abc' or 1 # union select",
			FlagQuoteSingle | FlagSQLAnsi, "s&1oU"},
		{"single mysql hash", "abc' or 1 # union select",
			FlagQuoteSingle | FlagSQLMysql, "s&1c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(tt.input, tt.flags)
			st.fingerprintPass(tt.flags)
			if got := st.Fingerprint(); got != tt.want {
				t.Errorf("fingerprint(%q, %#x) = %q, want %q", tt.input, tt.flags, got, tt.want)
			}
		})
	}
}

// the MySQL reparse only fires after MySQL-only comment syntax was seen
func TestDialectCascade(t *testing.T) {
	// benign under ANSI, detected only by the NONE+MYSQL reparse: the
	// newline ends the MySQL comment, so the union is still folded
	if !IsSQLi("1 #\nunion select password") {
		t.Error("hash-comment payload not caught by the MySQL reparse")
	}

	// benign under SINGLE+ANSI, detected only by SINGLE+MYSQL
	if !IsSQLi("abc' or 1 # union select") {
		t.Error("quoted hash-comment payload not caught by the MySQL reparse")
	}

	// double-quote context is only ever tried as MySQL
	if !IsSQLi(`1" or "1"="1`) {
		t.Error("double-quote payload not caught by the DOUBLE+MYSQL pass")
	}

	// "--1" without trailing whitespace is a comment to ANSI only; the ddx
	// stat is what arms the reparse
	st := NewState("1 --1x", 0)
	st.fingerprintPass(FlagQuoteNone | FlagSQLAnsi)
	if st.statsCommentDDX == 0 {
		t.Error("ANSI pass did not record the dash-dash-x comment")
	}
	if !st.reparseAsMySQL() {
		t.Error("ddx stat did not arm the MySQL reparse")
	}

	st = NewState("1 2 3", 0)
	st.fingerprintPass(FlagQuoteNone | FlagSQLAnsi)
	if st.reparseAsMySQL() {
		t.Error("MySQL reparse armed without MySQL-only comment syntax")
	}
}

func TestCheckExtraFingerprints(t *testing.T) {
	// "hello world" folds to "nn", which the static table does not list
	if ok, _ := Check("hello world", nil); ok {
		t.Fatal("static verdict for benign input should be false")
	}
	extra := func(fp string) bool { return strings.EqualFold(fp, "nn") }
	ok, fp := Check("hello world", extra)
	if !ok || !strings.EqualFold(fp, "nn") {
		t.Errorf("Check with extra = (%v, %q), want (true, nn)", ok, fp)
	}
}

func TestKeywordLookup(t *testing.T) {
	tests := []struct {
		word string
		want byte
	}{
		{"SELECT", typeExpression},
		{"select", typeExpression},
		{"SeLeCt", typeExpression},
		{"UNION", typeUnion},
		{"UNION ALL", typeUnion},
		{"AND", typeLogicOperator},
		{"||", typeLogicOperator},
		{"NOT LIKE", typeOperator},
		{"COLLATE", typeCollate},
		{"NULL", typeNumber},
		{"INT", typeSQLType},
		{"SLEEP", typeFunction},
		{"FROM", typeKeyword},
		{"0SOS", typeFingerprint},
		{"0sos", typeFingerprint},
		{"notakeyword", charNull},
		{"SELEC", charNull},
		{"SELECTS", charNull},
	}
	for _, tt := range tests {
		if got := lookupWord(tt.word); got != tt.want {
			t.Errorf("lookupWord(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

// binary search needs the table ordered under its own comparator
func TestKeywordTableSorted(t *testing.T) {
	for i := 1; i < len(sqlKeywords); i++ {
		if keywordCompare(sqlKeywords[i-1].word, sqlKeywords[i].word) >= 0 {
			t.Fatalf("table out of order at %d: %q >= %q",
				i, sqlKeywords[i-1].word, sqlKeywords[i].word)
		}
	}
}

func TestStateReuse(t *testing.T) {
	st := NewState("1' OR '1'='1", 0)
	if !st.detect(nil) {
		t.Fatal("detect = false, want true")
	}
	// a second run over fresh state for the same input agrees
	st2 := NewState("1' OR '1'='1", 0)
	if !st2.detect(nil) {
		t.Fatal("fresh state disagrees")
	}
	if st.Fingerprint() != st2.Fingerprint() {
		t.Errorf("fingerprints differ: %q vs %q", st.Fingerprint(), st2.Fingerprint())
	}
}
