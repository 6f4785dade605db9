package sqli

// State is the workspace for one detection run. It is cheap to create, owned
// by a single goroutine, and holds no references after the verdict returns.
type State struct {
	s    string
	slen int

	flags   int
	pos     int
	current int

	tokenvec [8]Token

	fingerprint [8]byte
	fplen       int

	// tokenizer statistics, consumed by the whitelist and the context driver
	statsCommentDDW  int
	statsCommentDDX  int
	statsCommentC    int
	statsCommentHash int
	statsFolds       int
	statsTokens      int
}

// NewState prepares a parse pass over input. A zero flags value selects
// QuoteNone|SQLAnsi.
func NewState(input string, flags int) *State {
	st := &State{}
	st.init(input, flags)
	return st
}

func (st *State) init(input string, flags int) {
	if flags == 0 {
		flags = FlagQuoteNone | FlagSQLAnsi
	}
	*st = State{
		s:     input,
		slen:  len(input),
		flags: flags,
	}
}

// reset rewinds the state for another pass over the same input.
func (st *State) reset(flags int) {
	st.init(st.s, flags)
}

// Fingerprint returns the fingerprint computed by the most recent pass.
func (st *State) Fingerprint() string {
	return string(st.fingerprint[:st.fplen])
}

// Current returns the token produced by the last Tokenize call.
func (st *State) Current() *Token {
	return &st.tokenvec[st.current]
}

// Tokens returns the folded token window, valid after a Fold call.
func (st *State) Tokens(n int) []Token {
	if n > len(st.tokenvec) {
		n = len(st.tokenvec)
	}
	return st.tokenvec[:n]
}

func flagToDelim(flags int) byte {
	switch {
	case flags&FlagQuoteSingle != 0:
		return charSingle
	case flags&FlagQuoteDouble != 0:
		return charDouble
	}
	return charNull
}
