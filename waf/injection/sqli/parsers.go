package sqli

// Per-prefix sub-lexers. Each consumes bytes starting at st.pos, fills the
// current token slot, and returns the position where scanning resumes.

// wordSeparators terminate a bareword run.
const wordSeparators = " []{}()<>:\\?=@!#~+-*/&|^%,'\t\n\v\f\r\"\xa0\x00;"

// varSeparators terminate the body of a @variable.
const varSeparators = " <>:\\?=@!#~+-*/&|^%(),';\t\n\v\f\r`\""

func (st *State) cur() *Token {
	return &st.tokenvec[st.current]
}

func (st *State) parseWhite() int {
	return st.pos + 1
}

func (st *State) parseOperator1() int {
	st.cur().assignChar(typeOperator, st.pos, st.s[st.pos])
	return st.pos + 1
}

func (st *State) parseChar() int {
	st.cur().assignChar(st.s[st.pos], st.pos, st.s[st.pos])
	return st.pos + 1
}

func (st *State) parseOther() int {
	st.cur().assignChar(typeUnknown, st.pos, st.s[st.pos])
	return st.pos + 1
}

func (st *State) parseOperator2() int {
	s, slen, pos := st.s, st.slen, st.pos

	if pos+1 >= slen {
		return st.parseOperator1()
	}

	if pos+2 < slen && s[pos] == '<' && s[pos+1] == '=' && s[pos+2] == '>' {
		// the only 3-char operator
		st.cur().assign(typeOperator, pos, 3, s[pos:pos+3])
		return pos + 3
	}

	if ch := lookupWord(s[pos : pos+2]); ch != charNull {
		st.cur().assign(ch, pos, 2, s[pos:pos+2])
		return pos + 2
	}

	if s[pos] == ':' {
		// ':' alone is not an operator
		st.cur().assignChar(typeColon, pos, ':')
		return pos + 1
	}
	return st.parseOperator1()
}

func (st *State) parseHash() int {
	st.statsCommentHash++
	if st.flags&FlagSQLMysql != 0 {
		st.statsCommentHash++
		return st.parseEOLComment()
	}
	st.cur().assignChar(typeOperator, st.pos, '#')
	return st.pos + 1
}

func (st *State) parseDash() int {
	s, slen, pos := st.s, st.slen, st.pos

	// five cases:
	// 1) --[white]   always a comment
	// 2) --[EOF]     a comment
	// 3) --[x] ANSI  a comment
	// 4) --[x] MySQL two unary operators
	// 5) -[not dash] unary operator
	switch {
	case pos+2 < slen && s[pos+1] == '-' && charIsWhite(s[pos+2]):
		st.statsCommentDDW++
		return st.parseEOLComment()
	case pos+2 == slen && s[pos+1] == '-':
		st.statsCommentDDW++
		return st.parseEOLComment()
	case pos+1 < slen && s[pos+1] == '-' && st.flags&FlagSQLAnsi != 0:
		st.statsCommentDDX++
		return st.parseEOLComment()
	}
	st.cur().assignChar(typeOperator, pos, '-')
	return pos + 1
}

func (st *State) parseEOLComment() int {
	s, slen, pos := st.s, st.slen, st.pos

	end := indexByteFrom(s, '\n', pos)
	if end == -1 {
		st.cur().assign(typeComment, pos, slen-pos, s[pos:])
		return slen
	}
	st.cur().assign(typeComment, pos, end-pos, s[pos:end])
	return end + 1
}

func (st *State) parseSlash() int {
	s, slen, pos := st.s, st.slen, st.pos

	if pos+1 == slen || s[pos+1] != '*' {
		return st.parseOperator1()
	}

	ctype := byte(typeComment)
	cend := indexFrom(s, "*/", pos+2)
	closed := cend != -1
	var clen int
	if closed {
		clen = cend + 2 - pos
	} else {
		clen = slen - pos
	}

	// pgsql nests comments, which we cannot parse in one pass; a '/*' inside
	// the body forces the evil token. MySQL's /*! executable comments are an
	// automatic ban.
	if closed && indexFrom(s[:cend], "/*", pos+2) != -1 {
		ctype = typeEvil
	} else if isMySQLComment(s, pos) {
		ctype = typeEvil
	}

	st.cur().assign(ctype, pos, clen, s[pos:pos+clen])
	st.statsCommentC++
	return pos + clen
}

func (st *State) parseBackslash() int {
	s, slen, pos := st.s, st.slen, st.pos

	// "\N" is a MySQL alias for NULL (capital N only)
	if pos+1 < slen && s[pos+1] == 'N' {
		st.cur().assign(typeNumber, pos, 2, s[pos:pos+2])
		return pos + 2
	}
	st.cur().assignChar(typeBackslash, pos, s[pos])
	return pos + 1
}

// parseStringCore scans a quoted run terminated by delim. offset skips the
// opening quote; offset 0 means the quote is simulated by the calling
// context. Doubled delimiters and backslash-escaped delimiters stay inside
// the string.
func (st *State) parseStringCore(delim byte, offset int) int {
	s, slen, pos := st.s, st.slen, st.pos
	tk := st.cur()

	strOpen := byte(charNull)
	if offset > 0 {
		strOpen = delim
	}

	qpos := indexByteFrom(s, delim, pos+offset)
	for {
		switch {
		case qpos == -1:
			// no trailing quote, keep what we have
			tk.assign(typeString, pos+offset, slen-pos-offset, s[pos+offset:])
			tk.StrOpen = strOpen
			tk.StrClose = charNull
			return slen
		case qpos > pos+offset && isBackslashEscaped(s, qpos-1, pos+offset):
			qpos = indexByteFrom(s, delim, qpos+1)
		case isDoubleDelimEscaped(s, qpos, slen):
			qpos = indexByteFrom(s, delim, qpos+2)
		default:
			tk.assign(typeString, pos+offset, qpos-(pos+offset), s[pos+offset:qpos])
			tk.StrOpen = strOpen
			tk.StrClose = delim
			return qpos + 1
		}
	}
}

func (st *State) parseString() int {
	return st.parseStringCore(st.s[st.pos], 1)
}

// parseEString handles pgsql E'...' escaped strings (and the body of N'...').
func (st *State) parseEString() int {
	if st.pos+2 >= st.slen || st.s[st.pos+1] != charSingle {
		return st.parseWord()
	}
	return st.parseStringCore(charSingle, 2)
}

// parseUString handles U&'...' unicode strings.
func (st *State) parseUString() int {
	s, slen, pos := st.s, st.slen, st.pos

	if pos+2 < slen && s[pos+1] == '&' && s[pos+2] == '\'' {
		st.pos += 2
		newpos := st.parseString()
		tk := st.cur()
		tk.StrOpen = 'u'
		if tk.StrClose == '\'' {
			tk.StrClose = 'u'
		}
		return newpos
	}
	return st.parseWord()
}

// parseQString handles Oracle q'(...)' strings with bracket-pair delimiters.
func (st *State) parseQString() int {
	return st.parseQStringCore(0)
}

// parseNQString handles N'...' national strings and Oracle nq'...' strings.
func (st *State) parseNQString() int {
	if st.pos+2 < st.slen && st.s[st.pos+1] == charSingle {
		return st.parseEString()
	}
	return st.parseQStringCore(1)
}

func (st *State) parseQStringCore(offset int) int {
	s, slen := st.s, st.slen
	pos := st.pos + offset

	if pos >= slen || (s[pos] != 'q' && s[pos] != 'Q') ||
		pos+2 >= slen || s[pos+1] != '\'' {
		return st.parseWord()
	}

	ch := s[pos+2]
	if ch < 33 {
		return st.parseWord()
	}
	switch ch {
	case '(':
		ch = ')'
	case '[':
		ch = ']'
	case '{':
		ch = '}'
	case '<':
		ch = '>'
	}

	tk := st.cur()
	end := indexFrom(s, string([]byte{ch, '\''}), pos+3)
	if end == -1 {
		tk.assign(typeString, pos+3, slen-pos-3, s[pos+3:])
		tk.StrOpen = 'q'
		tk.StrClose = charNull
		return slen
	}
	tk.assign(typeString, pos+3, end-pos-3, s[pos+3:end])
	tk.StrOpen = 'q'
	tk.StrClose = 'q'
	return end + 2
}

// parseBString handles binary literals b'01...'.
func (st *State) parseBString() int {
	s, slen, pos := st.s, st.slen, st.pos

	if pos+2 >= slen || s[pos+1] != '\'' {
		return st.parseWord()
	}
	wlen := strlenspn(s[pos+2:], "01")
	if pos+2+wlen >= slen || s[pos+2+wlen] != '\'' {
		return st.parseWord()
	}
	st.cur().assign(typeNumber, pos, wlen+3, s[pos:pos+wlen+3])
	return pos + 2 + wlen + 1
}

// parseXString handles hex literals x'ff...'. MySQL wants an even digit
// count; pgsql does not, so neither do we.
func (st *State) parseXString() int {
	s, slen, pos := st.s, st.slen, st.pos

	if pos+2 >= slen || s[pos+1] != '\'' {
		return st.parseWord()
	}
	wlen := strlenspn(s[pos+2:], "0123456789abcdefABCDEF")
	if pos+2+wlen >= slen || s[pos+2+wlen] != '\'' {
		return st.parseWord()
	}
	st.cur().assign(typeNumber, pos, wlen+3, s[pos:pos+wlen+3])
	return pos + 2 + wlen + 1
}

// parseBWord consumes SQL Server [bracketed identifiers] through the closing
// bracket.
func (st *State) parseBWord() int {
	s, slen, pos := st.s, st.slen, st.pos

	end := indexByteFrom(s, ']', pos)
	if end == -1 {
		st.cur().assign(typeBareword, pos, slen-pos, s[pos:])
		return slen
	}
	st.cur().assign(typeBareword, pos, end-pos+1, s[pos:end+1])
	return end + 1
}

func (st *State) parseWord() int {
	s, pos := st.s, st.pos

	wlen := strlencspn(s[pos:], wordSeparators)
	word := s[pos : pos+wlen]
	tk := st.cur()
	tk.assign(typeBareword, pos, wlen, word)

	// a keyword directly before '.' or '`' ends the token early:
	// "SELECT.1" and "SELECT`col`" must lex the keyword alone
	for i := 0; i < tk.Len; i++ {
		delim := tk.Val[i]
		if delim == '.' || delim == '`' {
			wt := lookupWord(word[:i])
			if wt != charNull && wt != typeBareword {
				tk.assign(wt, pos, i, word[:i])
				return pos + i
			}
		}
	}

	if wlen < tokenSize {
		wt := lookupWord(word)
		if wt == charNull || wt == typeFingerprint {
			wt = typeBareword
		}
		tk.Type = wt
	}
	return pos + wlen
}

// parseTick treats `backticked` runs as strings, then reclassifies known
// functions; everything else is a bareword the way MySQL sees it.
func (st *State) parseTick() int {
	pos := st.parseStringCore(charTick, 1)
	tk := st.cur()

	if lookupWord(tk.Value()) == typeFunction {
		tk.Type = typeFunction
	} else {
		tk.Type = typeBareword
	}
	return pos
}

func (st *State) parseVar() int {
	s, slen := st.s, st.slen
	pos := st.pos + 1
	tk := st.cur()

	// Count records '@' vs '@@'; only used when reconstructing input.
	if pos < slen && s[pos] == '@' {
		pos++
		tk.Count = 2
	} else {
		tk.Count = 1
	}
	count := tk.Count

	// MySQL allows @@`version` and @@'version'
	if pos < slen {
		if s[pos] == '`' {
			st.pos = pos
			pos = st.parseTick()
			tk.Type = typeVariable
			tk.Count = count
			return pos
		}
		if s[pos] == charSingle || s[pos] == charDouble {
			st.pos = pos
			pos = st.parseString()
			tk.Type = typeVariable
			tk.Count = count
			return pos
		}
	}

	xlen := strlencspn(s[pos:], varSeparators)
	tk.assign(typeVariable, pos, xlen, s[pos:pos+xlen])
	tk.Count = count
	return pos + xlen
}

func (st *State) parseMoney() int {
	s, slen, pos := st.s, st.slen, st.pos
	tk := st.cur()

	if pos+1 == slen {
		tk.assignChar(typeBareword, pos, '$')
		return slen
	}

	// $1,000.00 or $1.000,00 are both fine; so is $..,,111, which is not
	// worth rejecting
	xlen := strlenspn(s[pos+1:], "0123456789.,")
	if xlen == 0 {
		if s[pos+1] == '$' {
			// $$...$$ dollar-quoted string with an empty tag
			end := indexFrom(s, "$$", pos+2)
			if end == -1 {
				tk.assign(typeString, pos+2, slen-pos-2, s[pos+2:])
				tk.StrOpen = '$'
				tk.StrClose = charNull
				return slen
			}
			tk.assign(typeString, pos+2, end-pos-2, s[pos+2:end])
			tk.StrOpen = '$'
			tk.StrClose = '$'
			return end + 2
		}

		// maybe a pgsql $tag$...$tag$ quoted string
		xlen = strlenspn(s[pos+1:], "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
		if xlen == 0 {
			tk.assignChar(typeBareword, pos, '$')
			return pos + 1
		}
		if pos+xlen+1 >= slen || s[pos+xlen+1] != '$' {
			tk.assignChar(typeBareword, pos, '$')
			return pos + 1
		}

		delim := s[pos : pos+xlen+2]
		end := indexFrom(s, delim, pos+xlen+2)
		if end == -1 {
			tk.assign(typeString, pos+xlen+2, slen-pos-xlen-2, s[pos+xlen+2:])
			tk.StrOpen = '$'
			tk.StrClose = charNull
			return slen
		}
		tk.assign(typeString, pos+xlen+2, end-(pos+xlen+2), s[pos+xlen+2:end])
		tk.StrOpen = '$'
		tk.StrClose = '$'
		return end + xlen + 2
	}

	if xlen == 1 && s[pos+1] == '.' {
		// "$." reads better as a word
		return st.parseWord()
	}

	tk.assign(typeNumber, pos, 1+xlen, s[pos:pos+1+xlen])
	return pos + 1 + xlen
}

func (st *State) parseNumber() int {
	s, slen, pos := st.s, st.slen, st.pos
	tk := st.cur()

	if s[pos] == '0' && pos+1 < slen {
		digits := ""
		if s[pos+1] == 'X' || s[pos+1] == 'x' {
			digits = "0123456789ABCDEFabcdef"
		} else if s[pos+1] == 'B' || s[pos+1] == 'b' {
			digits = "01"
		}
		if digits != "" {
			xlen := strlenspn(s[pos+2:], digits)
			if xlen == 0 {
				tk.assign(typeBareword, pos, 2, s[pos:pos+2])
				return pos + 2
			}
			tk.assign(typeNumber, pos, 2+xlen, s[pos:pos+2+xlen])
			return pos + 2 + xlen
		}
	}

	start := pos
	for pos < slen && isDigit(s[pos]) {
		pos++
	}

	if pos < slen && s[pos] == '.' {
		pos++
		for pos < slen && isDigit(s[pos]) {
			pos++
		}
		if pos-start == 1 {
			// a lone '.' is punctuation, not a number
			tk.assignChar(typeDot, start, '.')
			return pos
		}
	}

	haveE, haveExp := false, false
	if pos < slen && (s[pos] == 'E' || s[pos] == 'e') {
		haveE = true
		pos++
		if pos < slen && (s[pos] == '+' || s[pos] == '-') {
			pos++
		}
		for pos < slen && isDigit(s[pos]) {
			haveExp = true
			pos++
		}
	}

	// oracle's trailing float/double suffix
	if pos < slen && (s[pos] == 'd' || s[pos] == 'D' || s[pos] == 'f' || s[pos] == 'F') {
		if pos+1 == slen {
			pos++
		} else if charIsWhite(s[pos+1]) || s[pos+1] == ';' {
			pos++
		} else if s[pos+1] == 'u' || s[pos+1] == 'U' {
			// makes "1fUNION" lex as "1f UNION"
			pos++
		}
		// otherwise "123FROM" keeps only "123"
	}

	if haveE && !haveExp {
		// "1234.e", "10.10E" are words, not numbers
		tk.assign(typeBareword, start, pos-start, s[start:pos])
	} else {
		tk.assign(typeNumber, start, pos-start, s[start:pos])
	}
	return pos
}
