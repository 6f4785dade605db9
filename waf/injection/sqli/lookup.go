package sqli

// keywordCompare orders a table entry against a lookup key. Entries are
// uppercase; the key is case-folded byte by byte. Equal prefixes of unequal
// length compare by length, which gives the strict length equality the table
// contract requires.
func keywordCompare(word, key string) int {
	n := len(word)
	if len(key) < n {
		n = len(key)
	}
	for i := 0; i < n; i++ {
		ca := word[i]
		cb := key[i]
		if cb >= 'a' && cb <= 'z' {
			cb -= 0x20
		}
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return len(word) - len(key)
}

// lookupWord binary-searches the merged keyword/fingerprint table, resolving
// ties to the leftmost equal entry. Returns the type code or 0.
func lookupWord(key string) byte {
	left, right := 0, len(sqlKeywords)-1
	for left < right {
		mid := (left + right) >> 1
		if keywordCompare(sqlKeywords[mid].word, key) < 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	if left == right && keywordCompare(sqlKeywords[left].word, key) == 0 {
		return sqlKeywords[left].ttype
	}
	return charNull
}

func charIsWhite(ch byte) bool {
	// space, tab, newline, vertical tab, form feed, carriage return,
	// NUL (Oracle) and Latin-1 NBSP all separate tokens
	switch ch {
	case 0x20, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x00, 0xa0:
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// strlenspn counts the leading run of bytes drawn from accept.
func strlenspn(s, accept string) int {
	for i := 0; i < len(s); i++ {
		if indexByte(accept, s[i]) == -1 {
			return i
		}
	}
	return len(s)
}

// strlencspn counts the leading run of bytes absent from reject.
func strlencspn(s, reject string) int {
	for i := 0; i < len(s); i++ {
		if indexByte(reject, s[i]) != -1 {
			return i
		}
	}
	return len(s)
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// indexByteFrom finds b in s at or after from, returning an absolute index.
func indexByteFrom(s string, b byte, from int) int {
	for i := from; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// indexFrom finds substr in s at or after from, returning an absolute index.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	n := len(substr)
	if n == 0 {
		return from
	}
	for i := from; i+n <= len(s); i++ {
		if s[i:i+n] == substr {
			return i
		}
	}
	return -1
}

// isBackslashEscaped reports whether the byte after end is escaped: an odd
// run of consecutive backslashes ending at end. Walks no further back than
// start.
func isBackslashEscaped(s string, end, start int) bool {
	i := end
	for i >= start && s[i] == '\\' {
		i--
	}
	return (end-i)&1 == 1
}

// isDoubleDelimEscaped reports a doubled quote (SQL escape) at cur.
func isDoubleDelimEscaped(s string, cur, end int) bool {
	return cur+1 < end && s[cur+1] == s[cur]
}

// isMySQLComment detects the /*! executable-comment prefix. The caller has
// already seen "/*" at pos.
func isMySQLComment(s string, pos int) bool {
	return pos+2 < len(s) && s[pos+2] == '!'
}
