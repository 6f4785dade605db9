package sqli

import "testing"

type wantToken struct {
	ttype byte
	value string
}

func lexAll(t *testing.T, input string, flags int) []Token {
	t.Helper()
	st := NewState(input, flags)
	var out []Token
	for st.Tokenize() {
		out = append(out, *st.Current())
		if len(out) > 64 {
			t.Fatalf("runaway tokenizer on %q", input)
		}
	}
	return out
}

func checkTokens(t *testing.T, input string, flags int, want []wantToken) {
	t.Helper()
	got := lexAll(t, input, flags)
	if len(got) != len(want) {
		t.Fatalf("lex(%q): got %d tokens, want %d: %+v", input, len(got), len(want), got)
	}
	for i := range want {
		if got[i].Type != want[i].ttype || got[i].Value() != want[i].value {
			t.Errorf("lex(%q)[%d] = (%c, %q), want (%c, %q)",
				input, i, got[i].Type, got[i].Value(), want[i].ttype, want[i].value)
		}
	}
}

func TestTokenizeBasics(t *testing.T) {
	checkTokens(t, "SELECT * FROM users", 0, []wantToken{
		{typeExpression, "SELECT"},
		{typeOperator, "*"},
		{typeKeyword, "FROM"},
		{typeBareword, "users"},
	})

	checkTokens(t, "1 UNION SELECT", 0, []wantToken{
		{typeNumber, "1"},
		{typeUnion, "UNION"},
		{typeExpression, "SELECT"},
	})
}

func TestTokenizeNumbers(t *testing.T) {
	checkTokens(t, "123 45.6 .5 1e3 0x1F 0b01 123.4e+2", 0, []wantToken{
		{typeNumber, "123"},
		{typeNumber, "45.6"},
		{typeNumber, ".5"},
		{typeNumber, "1e3"},
		{typeNumber, "0x1F"},
		{typeNumber, "0b01"},
		{typeNumber, "123.4e+2"},
	})

	// exponent without digits degrades to a word
	checkTokens(t, "10.10E", 0, []wantToken{
		{typeBareword, "10.10E"},
	})

	// lone dot is punctuation
	checkTokens(t, ".", 0, []wantToken{
		{typeDot, "."},
	})
}

func TestTokenizeStrings(t *testing.T) {
	checkTokens(t, "'abc''def'", 0, []wantToken{
		{typeString, "abc''def"},
	})
	checkTokens(t, `"ghi"`, 0, []wantToken{
		{typeString, "ghi"},
	})
	// backslash-escaped quote stays inside
	checkTokens(t, `'a\'b'`, 0, []wantToken{
		{typeString, `a\'b`},
	})
	// unterminated string runs to EOF
	tks := lexAll(t, "'open", 0)
	if len(tks) != 1 || tks[0].Type != typeString || tks[0].StrClose != charNull {
		t.Errorf("unterminated string lexed as %+v", tks)
	}

	checkTokens(t, "N'nat' E'esc' x'4142' b'0101'", 0, []wantToken{
		{typeString, "nat"},
		{typeString, "esc"},
		{typeNumber, "x'4142'"},
		{typeNumber, "b'0101'"},
	})

	checkTokens(t, "q'(quoted)'", 0, []wantToken{
		{typeString, "quoted"},
	})

	checkTokens(t, "$$dollar$$ $tag$body$tag$ $12.50", 0, []wantToken{
		{typeString, "dollar"},
		{typeString, "body"},
		{typeNumber, "$12.50"},
	})
}

func TestTokenizeTickAndBrackets(t *testing.T) {
	checkTokens(t, "`column`", 0, []wantToken{
		{typeBareword, "column"},
	})
	// known function names keep their type under ticks
	checkTokens(t, "`version`", 0, []wantToken{
		{typeFunction, "version"},
	})
	checkTokens(t, "[dbo]", 0, []wantToken{
		{typeBareword, "[dbo]"},
	})
}

func TestTokenizeVariables(t *testing.T) {
	tks := lexAll(t, "@@version @x", 0)
	if len(tks) != 2 {
		t.Fatalf("got %d tokens: %+v", len(tks), tks)
	}
	if tks[0].Type != typeVariable || tks[0].Value() != "version" || tks[0].Count != 2 {
		t.Errorf("@@version = (%c, %q, count=%d)", tks[0].Type, tks[0].Value(), tks[0].Count)
	}
	if tks[1].Type != typeVariable || tks[1].Value() != "x" || tks[1].Count != 1 {
		t.Errorf("@x = (%c, %q, count=%d)", tks[1].Type, tks[1].Value(), tks[1].Count)
	}
}

func TestTokenizeOperators(t *testing.T) {
	checkTokens(t, "<=> != || :=", 0, []wantToken{
		{typeOperator, "<=>"},
		{typeOperator, "!="},
		{typeLogicOperator, "||"},
		{typeOperator, ":="},
	})
}

func TestTokenizeComments(t *testing.T) {
	checkTokens(t, "1 -- tail", 0, []wantToken{
		{typeNumber, "1"},
		{typeComment, "-- tail"},
	})
	checkTokens(t, "1 /* c */ 2", 0, []wantToken{
		{typeNumber, "1"},
		{typeComment, "/* c */"},
		{typeNumber, "2"},
	})
	// mysql executable comments are evil
	tks := lexAll(t, "/*!40000 select*/", 0)
	if len(tks) == 0 || tks[0].Type != typeEvil {
		t.Errorf("executable comment lexed as %+v", tks)
	}
	// hash is an operator in ANSI, a comment in MySQL
	checkTokens(t, "1#x", FlagQuoteNone|FlagSQLAnsi, []wantToken{
		{typeNumber, "1"},
		{typeOperator, "#"},
		{typeBareword, "x"},
	})
	checkTokens(t, "1#x", FlagQuoteNone|FlagSQLMysql, []wantToken{
		{typeNumber, "1"},
		{typeComment, "#x"},
	})
}

func TestTokenizeBackslash(t *testing.T) {
	checkTokens(t, `\N`, 0, []wantToken{
		{typeNumber, `\N`},
	})
	tks := lexAll(t, `\x`, 0)
	if len(tks) != 2 || tks[0].Type != typeBackslash {
		t.Errorf(`\x lexed as %+v`, tks)
	}
}

func TestTokenizeKeywordBeforeDot(t *testing.T) {
	// "SELECT.1" must lex the keyword alone
	tks := lexAll(t, "SELECT.1", 0)
	if len(tks) == 0 || tks[0].Type != typeExpression || tks[0].Value() != "SELECT" {
		t.Fatalf("SELECT.1 first token = %+v", tks)
	}
}

func TestTokenizeQuoteContext(t *testing.T) {
	// single-quote context: input is the body of an open string
	st := NewState("abc' OR 1", FlagQuoteSingle|FlagSQLAnsi)
	if !st.Tokenize() {
		t.Fatal("no token")
	}
	tk := st.Current()
	if tk.Type != typeString || tk.Value() != "abc" || tk.StrOpen != charNull || tk.StrClose != charSingle {
		t.Errorf("first token = (%c, %q, open=%q, close=%q)", tk.Type, tk.Value(), tk.StrOpen, tk.StrClose)
	}

	// unterminated variant
	st = NewState("no quote here", FlagQuoteSingle|FlagSQLAnsi)
	if !st.Tokenize() {
		t.Fatal("no token")
	}
	tk = st.Current()
	if tk.Type != typeString || tk.StrClose != charNull {
		t.Errorf("unterminated context token = (%c, close=%q)", tk.Type, tk.StrClose)
	}
}

func TestTokenValueTruncation(t *testing.T) {
	long := "a_very_long_identifier_that_overflows_the_value_buffer_easily"
	tks := lexAll(t, long, 0)
	if len(tks) != 1 {
		t.Fatalf("got %d tokens", len(tks))
	}
	if tks[0].Len != tokenSize-1 {
		t.Errorf("token len = %d, want %d", tks[0].Len, tokenSize-1)
	}
	if tks[0].Value() != long[:tokenSize-1] {
		t.Errorf("token value = %q", tks[0].Value())
	}
}

func TestPosMonotonic(t *testing.T) {
	st := NewState("1' OR '1'='1 -- x", 0)
	last := 0
	for st.Tokenize() {
		if st.pos < last {
			t.Fatalf("pos went backwards: %d -> %d", last, st.pos)
		}
		last = st.pos
	}
}
