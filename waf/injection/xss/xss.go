// Package xss detects cross-site-scripting payloads. Input is run through
// the html5 tokenizer in every context an attacker could break out of, and
// each token is screened against blacklists of tags, attributes and URL
// schemes. Attribute values are matched with HTML numeric entities decoded on
// the fly, so &#106;avascript: does not slip past.
package xss

import "injectwaf/waf/injection/html5"

type attrType int

const (
	attrNone attrType = iota
	attrBlack
	attrURL
	attrStyle
	attrIndirect
)

// IsXSS reports whether input contains an XSS payload in any starting
// context. Empty input is never an attack.
func IsXSS(input string) bool {
	if len(input) == 0 {
		return false
	}
	return CheckFlags(input, html5.DataState) ||
		CheckFlags(input, html5.ValueNoQuote) ||
		CheckFlags(input, html5.ValueSingleQuote) ||
		CheckFlags(input, html5.ValueDoubleQuote) ||
		CheckFlags(input, html5.ValueBackQuote)
}

// CheckFlags scans input in a single starting context.
func CheckFlags(input string, flags html5.Flags) bool {
	var h5 html5.State
	attr := attrNone

	h5.Init(input, flags)
	for h5.Next() {
		if h5.TokenType != html5.AttrValue {
			attr = attrNone
		}

		switch h5.TokenType {
		case html5.Doctype:
			return true

		case html5.TagNameOpen:
			if isBlackTag(h5.Token()) {
				return true
			}

		case html5.AttrName:
			attr = isBlackAttr(h5.Token())

		case html5.AttrValue:
			// stashed attribute class decides how the value is judged
			switch attr {
			case attrBlack, attrStyle:
				return true
			case attrURL:
				if isBlackURL(h5.Token()) {
					return true
				}
			case attrIndirect:
				// e.g. <svg><set attributeName=onload ...>
				if isBlackAttr(h5.Token()) != attrNone {
					return true
				}
			}
			attr = attrNone

		case html5.TagComment:
			tok := h5.Token()
			// IE-style backtick breaks out of comments
			for i := 0; i < len(tok); i++ {
				if tok[i] == '`' {
					return true
				}
			}
			if len(tok) > 3 {
				if tok[0] == '[' &&
					(tok[1] == 'i' || tok[1] == 'I') &&
					(tok[2] == 'f' || tok[2] == 'F') {
					// IE conditional comment
					return true
				}
				if (tok[0] == 'x' || tok[0] == 'X') &&
					(tok[1] == 'm' || tok[1] == 'M') &&
					(tok[2] == 'l' || tok[2] == 'L') {
					return true
				}
			}
			if len(tok) > 5 {
				if caseEqPrefix("IMPORT", tok, 6) || caseEqPrefix("ENTITY", tok, 6) {
					return true
				}
			}
		}
	}
	return false
}

// caseEq compares needle against the first n bytes of hay, case-insensitive,
// skipping NUL bytes in hay; true only when the needle is exactly consumed.
func caseEq(needle, hay string, n int) bool {
	ai := 0
	for bi := 0; n > 0 && bi < len(hay); n-- {
		cb := hay[bi]
		bi++
		if cb == 0 {
			continue
		}
		if ai >= len(needle) {
			return false
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 0x20
		}
		if needle[ai] != cb {
			return false
		}
		ai++
	}
	return ai == len(needle)
}

// caseEqPrefix is caseEq without the requirement that hay be exhausted: it
// only needs hay to start with needle within the first n bytes.
func caseEqPrefix(needle, hay string, n int) bool {
	if n > len(hay) {
		n = len(hay)
	}
	return caseEq(needle, hay[:n], n)
}

func isBlackTag(name string) bool {
	if len(name) < 3 {
		return false
	}
	for _, black := range blackTags {
		if caseEq(black, name, len(name)) {
			return true
		}
	}

	// anything SVG or XSL gets namespaced scripting abilities
	c0, c1, c2 := lower(name[0]), lower(name[1]), lower(name[2])
	if c0 == 's' && c1 == 'v' && c2 == 'g' {
		return true
	}
	if c0 == 'x' && c1 == 's' && c2 == 'l' {
		return true
	}
	return false
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 0x20
	}
	return ch
}

func isBlackAttr(name string) attrType {
	n := len(name)
	if n < 2 {
		return attrNone
	}

	if n >= 5 {
		// on* event handlers
		if (name[0] == 'o' || name[0] == 'O') && (name[1] == 'n' || name[1] == 'N') {
			rest := name[2:]
			for _, ev := range blackEvents {
				max := len(rest)
				if len(ev) < max {
					max = len(ev)
				}
				if caseEq(ev, rest, max) {
					return attrBlack
				}
			}
		}

		// XMLNS and XLINK can smuggle arbitrary tags in
		if caseEq("XMLNS", name, n) || caseEq("XLINK", name, n) {
			return attrBlack
		}
	}

	for _, black := range blackAttrs {
		if caseEq(black.name, name, n) {
			return black.atype
		}
	}
	return attrNone
}

// isBlackURL reports a dangerous scheme at the front of a URL attribute
// value, ignoring leading control bytes and decoding entities while
// matching.
func isBlackURL(s string) bool {
	n := len(s)
	offset := 0
	for n > 0 && offset < len(s) {
		ch := s[offset]
		if ch <= 32 || ch >= 127 {
			offset++
			n--
		} else {
			break
		}
	}

	return htmlencodeStartsWith("DATA", s, offset, n) ||
		htmlencodeStartsWith("VIEW-SOURCE", s, offset, n) ||
		htmlencodeStartsWith("JAVA", s, offset, n) ||
		htmlencodeStartsWith("VBSCRIPT", s, offset, n)
}

// htmlencodeStartsWith reports whether hay, starting at offset and decoding
// numeric character references as it goes, begins with needle. Leading bytes
// <= 32 are skipped, as are NUL and LF anywhere.
func htmlencodeStartsWith(needle, hay string, offset, n int) bool {
	ai := 0
	first := true

	for n > 0 && offset < len(hay) {
		if ai >= len(needle) {
			return true
		}
		cb, consumed := decodeCharAt(hay, n, offset)
		offset += consumed
		n -= consumed

		if first && cb <= 32 {
			continue
		}
		first = false

		if cb == 0 || cb == 10 {
			continue
		}
		if cb >= 'a' && cb <= 'z' {
			cb -= 0x20
		}
		if int(needle[ai]) != cb {
			return false
		}
		ai++
	}
	return ai >= len(needle)
}

// entityCap bounds decoded code point values; anything larger aborts the
// reference and matches the bare '&' instead.
const entityCap = 0x1000FF

// decodeCharAt decodes one byte or one numeric character reference at
// offset, returning the code point and the number of bytes consumed.
func decodeCharAt(src string, n, offset int) (int, int) {
	if n == 0 || offset >= len(src) {
		return -1, 0
	}
	if src[offset] != '&' || n < 2 {
		return int(src[offset]), 1
	}
	if offset+1 >= len(src) || src[offset+1] != '#' {
		return '&', 1
	}

	if offset+2 < len(src) && (src[offset+2] == 'x' || src[offset+2] == 'X') {
		if offset+3 >= len(src) {
			return '&', 1
		}
		ch := hexDecodeMap[src[offset+3]]
		if ch == 256 {
			return '&', 1
		}
		val := ch
		i := 4
		for offset+i < n && offset+i < len(src) {
			c := src[offset+i]
			if c == ';' {
				return val, i + 1
			}
			d := hexDecodeMap[c]
			if d == 256 {
				return val, i
			}
			val = val*16 + d
			if val > entityCap {
				return '&', 1
			}
			i++
		}
		return val, i
	}

	i := 2
	if offset+i >= len(src) {
		return '&', 1
	}
	ch := src[offset+i]
	if ch < '0' || ch > '9' {
		return '&', 1
	}
	val := int(ch - '0')
	i++
	for offset+i < n && offset+i < len(src) {
		c := src[offset+i]
		if c == ';' {
			return val, i + 1
		}
		if c < '0' || c > '9' {
			return val, i
		}
		val = val*10 + int(c-'0')
		if val > entityCap {
			return '&', 1
		}
		i++
	}
	return val, i
}

var hexDecodeMap = func() [256]int {
	var m [256]int
	for i := range m {
		m[i] = 256
	}
	for i := 0; i <= 9; i++ {
		m['0'+i] = i
	}
	for i := 0; i < 6; i++ {
		m['a'+i] = 10 + i
		m['A'+i] = 10 + i
	}
	return m
}()
