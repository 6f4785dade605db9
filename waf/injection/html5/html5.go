// Package html5 is a streaming tokenizer over the subset of HTML5 needed to
// spot dangerous markup. It follows the HTML5 tokenization algorithm closely
// enough to agree with browsers about where tags, attributes and comments
// begin, and no further: no tree construction, no entity decoding, no
// conformance checking.
package html5

// TokenType classifies an emitted token.
type TokenType int

const (
	DataText TokenType = iota
	TagNameOpen
	TagNameClose
	TagNameSelfClose
	TagData
	TagClose
	AttrName
	AttrValue
	TagComment
	Doctype
)

var tokenTypeNames = [...]string{
	DataText:         "DATA_TEXT",
	TagNameOpen:      "TAG_NAME_OPEN",
	TagNameClose:     "TAG_NAME_CLOSE",
	TagNameSelfClose: "TAG_NAME_SELFCLOSE",
	TagData:          "TAG_DATA",
	TagClose:         "TAG_CLOSE",
	AttrName:         "ATTR_NAME",
	AttrValue:        "ATTR_VALUE",
	TagComment:       "TAG_COMMENT",
	Doctype:          "DOCTYPE",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Flags selects the starting context for a parse.
type Flags int

const (
	DataState Flags = iota
	ValueNoQuote
	ValueSingleQuote
	ValueDoubleQuote
	ValueBackQuote
)

// parser states; stored as a tag and dispatched in Next
type stateID int

const (
	stateEOF stateID = iota
	stateData
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateTagNameClose
	stateBeforeAttrName
	stateAttrName
	stateAfterAttrName
	stateBeforeAttrValue
	stateAttrValueSingleQuote
	stateAttrValueDoubleQuote
	stateAttrValueBackQuote
	stateAttrValueNoQuote
	stateAfterAttrValueQuoted
	stateSelfClosingStartTag
	stateBogusComment
	stateBogusComment2
	stateMarkupDeclOpen
	stateComment
	stateCData
	stateDoctype
)

const (
	charNull    = 0x00
	charBang    = '!'
	charDouble  = '"'
	charPercent = '%'
	charSingle  = '\''
	charDash    = '-'
	charSlash   = '/'
	charLT      = '<'
	charEquals  = '='
	charGT      = '>'
	charQues    = '?'
	charRightB  = ']'
	charTick    = '`'
)

// State holds one tokenizer pass. After each successful Next call TokenStart,
// TokenLen and TokenType describe the emitted token as a span of the input.
type State struct {
	s   string
	len int
	pos int

	state   stateID
	isClose bool

	TokenStart int
	TokenLen   int
	TokenType  TokenType
}

// Init rewinds the state over input, starting in the context given by flags.
func (h *State) Init(input string, flags Flags) {
	h.s = input
	h.len = len(input)
	h.pos = 0
	h.isClose = false
	h.TokenStart = 0
	h.TokenLen = 0
	h.TokenType = DataText

	switch flags {
	case ValueNoQuote:
		h.state = stateBeforeAttrName
	case ValueSingleQuote:
		h.state = stateAttrValueSingleQuote
	case ValueDoubleQuote:
		h.state = stateAttrValueDoubleQuote
	case ValueBackQuote:
		h.state = stateAttrValueBackQuote
	default:
		h.state = stateData
	}
}

// Token returns the bytes of the current token.
func (h *State) Token() string {
	return h.s[h.TokenStart : h.TokenStart+h.TokenLen]
}

// Next advances to the next token, returning false at end of input.
func (h *State) Next() bool {
	return h.step(h.state)
}

func (h *State) step(s stateID) bool {
	switch s {
	case stateData:
		return h.data()
	case stateTagOpen:
		return h.tagOpen()
	case stateEndTagOpen:
		return h.endTagOpen()
	case stateTagName:
		return h.tagName()
	case stateTagNameClose:
		return h.tagNameClose()
	case stateBeforeAttrName:
		return h.beforeAttrName()
	case stateAttrName:
		return h.attrName()
	case stateAfterAttrName:
		return h.afterAttrName()
	case stateBeforeAttrValue:
		return h.beforeAttrValue()
	case stateAttrValueSingleQuote:
		return h.attrValueQuote(charSingle)
	case stateAttrValueDoubleQuote:
		return h.attrValueQuote(charDouble)
	case stateAttrValueBackQuote:
		return h.attrValueQuote(charTick)
	case stateAttrValueNoQuote:
		return h.attrValueNoQuote()
	case stateAfterAttrValueQuoted:
		return h.afterAttrValueQuoted()
	case stateSelfClosingStartTag:
		return h.selfClosingStartTag()
	case stateBogusComment:
		return h.bogusComment()
	case stateBogusComment2:
		return h.bogusComment2()
	case stateMarkupDeclOpen:
		return h.markupDeclOpen()
	case stateComment:
		return h.comment()
	case stateCData:
		return h.cdata()
	case stateDoctype:
		return h.doctype()
	}
	return false
}

func isWhite(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', 0x0b, '\f', '\r':
		return true
	}
	return false
}

// skipWhite also skips NUL, which browsers drop in these positions.
func (h *State) skipWhite() int {
	for h.pos < h.len {
		switch h.s[h.pos] {
		case 0x00, 0x20, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
			h.pos++
		default:
			return int(h.s[h.pos])
		}
	}
	return -1
}

func (h *State) emit(start, length int, t TokenType, next stateID) bool {
	h.TokenStart = start
	h.TokenLen = length
	h.TokenType = t
	h.state = next
	return true
}

func (h *State) data() bool {
	idx := -1
	for i := h.pos; i < h.len; i++ {
		if h.s[i] == charLT {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.emit(h.pos, h.len-h.pos, DataText, stateEOF)
		return h.TokenLen != 0
	}
	h.emit(h.pos, idx-h.pos, DataText, stateTagOpen)
	h.pos = idx + 1
	if h.TokenLen == 0 {
		return h.tagOpen()
	}
	return true
}

func (h *State) tagOpen() bool {
	if h.pos >= h.len {
		return false
	}
	ch := h.s[h.pos]
	switch {
	case ch == charBang:
		h.pos++
		return h.markupDeclOpen()
	case ch == charSlash:
		h.pos++
		h.isClose = true
		return h.endTagOpen()
	case ch == charQues:
		h.pos++
		return h.bogusComment()
	case ch == charPercent:
		h.pos++
		return h.bogusComment2()
	case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == charNull:
		return h.tagName()
	default:
		if h.pos == 0 {
			return h.data()
		}
		// the '<' was plain text after all
		return h.emit(h.pos-1, 1, DataText, stateData)
	}
}

func (h *State) endTagOpen() bool {
	if h.pos >= h.len {
		return false
	}
	ch := h.s[h.pos]
	if ch == charGT {
		return h.data()
	}
	if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
		return h.tagName()
	}
	h.isClose = false
	return h.bogusComment()
}

func (h *State) tagName() bool {
	pos := h.pos
	for pos < h.len {
		ch := h.s[pos]
		switch {
		case ch == charNull:
			// embedded NULs stay part of the name
			pos++
		case isWhite(ch):
			h.emit(h.pos, pos-h.pos, TagNameOpen, stateBeforeAttrName)
			h.pos = pos + 1
			return true
		case ch == charSlash:
			h.emit(h.pos, pos-h.pos, TagNameOpen, stateSelfClosingStartTag)
			h.pos = pos + 1
			return true
		case ch == charGT:
			if h.isClose {
				h.emit(h.pos, pos-h.pos, TagClose, stateData)
				h.isClose = false
				h.pos = pos + 1
			} else {
				h.emit(h.pos, pos-h.pos, TagNameOpen, stateTagNameClose)
				h.pos = pos
			}
			return true
		default:
			pos++
		}
	}
	h.emit(h.pos, h.len-h.pos, TagNameOpen, stateEOF)
	return true
}

func (h *State) tagNameClose() bool {
	h.isClose = false
	h.emit(h.pos, 1, TagNameClose, stateData)
	h.pos++
	if h.pos >= h.len {
		h.state = stateEOF
	}
	return true
}

func (h *State) beforeAttrName() bool {
	ch := h.skipWhite()
	switch ch {
	case -1:
		return false
	case charSlash:
		h.pos++
		return h.selfClosingStartTag()
	case charGT:
		h.emit(h.pos, 1, TagNameClose, stateData)
		h.pos++
		return true
	default:
		return h.attrName()
	}
}

func (h *State) attrName() bool {
	pos := h.pos + 1
	for pos < h.len {
		ch := h.s[pos]
		switch {
		case isWhite(ch):
			h.emit(h.pos, pos-h.pos, AttrName, stateAfterAttrName)
			h.pos = pos + 1
			return true
		case ch == charSlash:
			h.emit(h.pos, pos-h.pos, AttrName, stateSelfClosingStartTag)
			h.pos = pos + 1
			return true
		case ch == charEquals:
			h.emit(h.pos, pos-h.pos, AttrName, stateBeforeAttrValue)
			h.pos = pos + 1
			return true
		case ch == charGT:
			h.emit(h.pos, pos-h.pos, AttrName, stateTagNameClose)
			h.pos = pos
			return true
		default:
			pos++
		}
	}
	h.emit(h.pos, h.len-h.pos, AttrName, stateEOF)
	h.pos = h.len
	return true
}

func (h *State) afterAttrName() bool {
	ch := h.skipWhite()
	switch ch {
	case -1:
		return false
	case charSlash:
		h.pos++
		return h.selfClosingStartTag()
	case charEquals:
		h.pos++
		return h.beforeAttrValue()
	case charGT:
		return h.tagNameClose()
	default:
		return h.attrName()
	}
}

func (h *State) beforeAttrValue() bool {
	ch := h.skipWhite()
	switch ch {
	case -1:
		h.state = stateEOF
		return false
	case charDouble:
		return h.attrValueQuote(charDouble)
	case charSingle:
		return h.attrValueQuote(charSingle)
	case charTick:
		return h.attrValueQuote(charTick)
	default:
		return h.attrValueNoQuote()
	}
}

func (h *State) attrValueQuote(qchar byte) bool {
	if h.pos >= h.len {
		return false
	}
	// when not at the very start the quote char itself needs skipping; at
	// position 0 the caller started us inside the value
	if h.pos > 0 {
		h.pos++
	}
	idx := -1
	for i := h.pos; i < h.len; i++ {
		if h.s[i] == qchar {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.emit(h.pos, h.len-h.pos, AttrValue, stateEOF)
	} else {
		h.emit(h.pos, idx-h.pos, AttrValue, stateAfterAttrValueQuoted)
		h.pos = idx + 1
	}
	return true
}

func (h *State) attrValueNoQuote() bool {
	pos := h.pos
	for pos < h.len {
		ch := h.s[pos]
		if isWhite(ch) {
			h.emit(h.pos, pos-h.pos, AttrValue, stateBeforeAttrName)
			h.pos = pos + 1
			return true
		}
		if ch == charGT {
			h.emit(h.pos, pos-h.pos, AttrValue, stateTagNameClose)
			h.pos = pos
			return true
		}
		pos++
	}
	h.emit(h.pos, h.len-h.pos, AttrValue, stateEOF)
	return true
}

func (h *State) afterAttrValueQuoted() bool {
	if h.pos >= h.len {
		return false
	}
	ch := h.s[h.pos]
	switch {
	case isWhite(ch):
		h.pos++
		return h.beforeAttrName()
	case ch == charSlash:
		h.pos++
		return h.selfClosingStartTag()
	case ch == charGT:
		h.emit(h.pos, 1, TagNameClose, stateData)
		h.pos++
		return true
	default:
		return h.beforeAttrName()
	}
}

func (h *State) selfClosingStartTag() bool {
	if h.pos >= h.len {
		return false
	}
	if h.s[h.pos] == charGT {
		// token spans the "/>"
		h.emit(h.pos-1, 2, TagNameSelfClose, stateData)
		h.pos++
		return true
	}
	return h.beforeAttrName()
}

func (h *State) bogusComment() bool {
	idx := -1
	for i := h.pos; i < h.len; i++ {
		if h.s[i] == charGT {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.emit(h.pos, h.len-h.pos, TagComment, stateEOF)
		h.pos = h.len
	} else {
		h.emit(h.pos, idx-h.pos, TagComment, stateData)
		h.pos = idx + 1
	}
	return true
}

// bogusComment2 terminates at "%>", the ASP-style close.
func (h *State) bogusComment2() bool {
	pos := h.pos
	for {
		idx := -1
		for i := pos; i < h.len; i++ {
			if h.s[i] == charPercent {
				idx = i
				break
			}
		}
		if idx == -1 || idx+1 >= h.len {
			h.emit(h.pos, h.len-h.pos, TagComment, stateEOF)
			h.pos = h.len
			return true
		}
		if h.s[idx+1] != charGT {
			pos = idx + 1
			continue
		}
		h.emit(h.pos, idx-h.pos, TagComment, stateData)
		h.pos = idx + 2
		return true
	}
}

func (h *State) markupDeclOpen() bool {
	remaining := h.len - h.pos
	if remaining >= 7 && equalFoldAt(h.s, h.pos, "DOCTYPE") {
		return h.doctype()
	}
	if remaining >= 7 && h.s[h.pos:h.pos+7] == "[CDATA[" {
		h.pos += 7
		return h.cdata()
	}
	if remaining >= 2 && h.s[h.pos] == charDash && h.s[h.pos+1] == charDash {
		h.pos += 2
		return h.comment()
	}
	return h.bogusComment()
}

func equalFoldAt(s string, pos int, upper string) bool {
	for i := 0; i < len(upper); i++ {
		ch := s[pos+i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 0x20
		}
		if ch != upper[i] {
			return false
		}
	}
	return true
}

// comment scans for the closing "-->" (or "--!>"), tolerating a run of NULs
// between the first dash and the tail only.
func (h *State) comment() bool {
	pos := h.pos
	for {
		idx := -1
		for i := pos; i < h.len; i++ {
			if h.s[i] == charDash {
				idx = i
				break
			}
		}
		if idx == -1 || idx > h.len-3 {
			h.emit(h.pos, h.len-h.pos, TagComment, stateEOF)
			return true
		}

		offset := 1
		for idx+offset < h.len && h.s[idx+offset] == charNull {
			offset++
		}
		if idx+offset == h.len {
			h.emit(h.pos, h.len-h.pos, TagComment, stateEOF)
			return true
		}

		ch := h.s[idx+offset]
		if ch != charDash && ch != charBang {
			pos = idx + 1
			continue
		}
		offset++
		if idx+offset == h.len {
			h.emit(h.pos, h.len-h.pos, TagComment, stateEOF)
			return true
		}

		if h.s[idx+offset] != charGT {
			pos = idx + 1
			continue
		}
		offset++

		h.emit(h.pos, idx-h.pos, TagComment, stateData)
		h.pos = idx + offset
		return true
	}
}

func (h *State) cdata() bool {
	pos := h.pos
	for {
		idx := -1
		for i := pos; i < h.len; i++ {
			if h.s[i] == charRightB {
				idx = i
				break
			}
		}
		if idx == -1 || idx > h.len-3 {
			h.emit(h.pos, h.len-h.pos, DataText, stateEOF)
			return true
		}
		if h.s[idx+1] == charRightB && h.s[idx+2] == charGT {
			h.emit(h.pos, idx-h.pos, DataText, stateData)
			h.pos = idx + 3
			return true
		}
		pos = idx + 1
	}
}

func (h *State) doctype() bool {
	start := h.pos
	idx := -1
	for i := h.pos; i < h.len; i++ {
		if h.s[i] == charGT {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.emit(start, h.len-start, Doctype, stateEOF)
	} else {
		h.emit(start, idx-start, Doctype, stateData)
		h.pos = idx + 1
	}
	return true
}
