package xss

import (
	"testing"

	"injectwaf/waf/injection/html5"
)

func TestIsXSSAttacks(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"script tag", "<script>alert(1);</script>"},
		{"uppercase scheme", `<a href="JAVASCRIPT:alert(1);" >`},
		{"event handler no tag", "onerror=alert(1)>"},
		{"iframe", "<iframe src=//evil.example>"},
		{"svg", "<svg onload=alert(1)>"},
		{"svg namespaced", "<svgfoo>"},
		{"style attribute", `<div style="x:expression(alert(1))">`},
		{"entity encoded scheme", `<a href="&#106;avascript:alert(1)">`},
		{"hex entity scheme", `<a href="&#x6A;avascript:alert(1)">`},
		{"data url", `<a href="data:text/html;base64,xxx">`},
		{"vbscript url", `<img src='vbscript:msgbox(1)'>`},
		{"doctype", "<!DOCTYPE html><script>x</script>"},
		{"ie conditional comment", "<!--[if IE]><script>x</script><![endif]-->"},
		{"backtick comment", "<!-- ` -->"},
		{"attribute breakout", `" onmouseover=alert(1) "`},
		{"xmlns attr", `<x xmlns="urn:evil">`},
		{"indirect attribute", `<set attributeName=onload to=alert(1)>`},
		{"formaction", `<button formaction=javascript:alert(1)>`},
		{"background url", `<body background="javascript:alert(1)">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsXSS(tt.input) {
				t.Errorf("IsXSS(%q) = false, want true", tt.input)
			}
		})
	}
}

func TestIsXSSBenign(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \t\n "},
		{"plain paragraph", "<p>Hello World</p>"},
		{"base64 on prefix", "onY29va2llcw=="},
		{"bare entity", "href=&#"},
		{"anchor relative", `<a href="/about">team</a>`},
		{"image https", `<img src="https://example.com/a.png" alt="a">`},
		{"text with angle", "a < b and c > d"},
		{"email", "john.doe@example.com"},
		{"markdownish", "**bold** _italic_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsXSS(tt.input) {
				t.Errorf("IsXSS(%q) = true, want false", tt.input)
			}
		})
	}
}

func TestBlackTag(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"script", true},
		{"SCRIPT", true},
		{"ScRiPt", true},
		{"iframe", true},
		{"svg", true},
		{"svganything", true},
		{"xslt", true},
		{"div", false},
		{"a", false},
		{"em", false},
		{"scr", false},
	}
	for _, tt := range tests {
		if got := isBlackTag(tt.name); got != tt.want {
			t.Errorf("isBlackTag(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlackAttr(t *testing.T) {
	tests := []struct {
		name string
		want attrType
	}{
		{"onclick", attrBlack},
		{"ONERROR", attrBlack},
		{"onmouseover", attrBlack},
		{"onclickX", attrBlack}, // prefix match past the event name
		{"onfoo", attrNone},
		{"on", attrNone},
		{"href", attrURL},
		{"SRC", attrURL},
		{"formaction", attrURL},
		{"xlink:href", attrURL},
		{"style", attrStyle},
		{"filter", attrStyle},
		{"attributename", attrIndirect},
		{"datasrc", attrBlack},
		{"xmlns", attrBlack},
		{"xlink", attrBlack},
		{"class", attrNone},
		{"id", attrNone},
	}
	for _, tt := range tests {
		if got := isBlackAttr(tt.name); got != tt.want {
			t.Errorf("isBlackAttr(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlackURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"javascript:alert(1)", true},
		{"JAVASCRIPT:alert(1)", true},
		{"  javascript:alert(1)", true},
		{"java\nscript:alert(1)", true},
		{"&#106;avascript:x", true},
		{"&#x6A;avascript:x", true},
		{"data:text/html,xxx", true},
		{"view-source:http://x", true},
		{"vbscript:msgbox", true},
		{"https://example.com", false},
		{"/relative/path", false},
		{"mailto:a@b.c", false},
		{"&#", false},
	}
	for _, tt := range tests {
		if got := isBlackURL(tt.url); got != tt.want {
			t.Errorf("isBlackURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestEntityDecoding(t *testing.T) {
	// oversized code points abort the reference as a non-match
	if htmlencodeStartsWith("JAVA", "&#2000000;avascript", 0, len("&#2000000;avascript")) {
		t.Error("overflowed entity still matched")
	}
	// NUL and LF inside the haystack are skipped
	if !htmlencodeStartsWith("JAVA", "j\x00a\nva", 0, 6) {
		t.Error("NUL/LF skipping failed")
	}
	// unterminated references decode to their value so far
	if !htmlencodeStartsWith("JAVA", "&#106ava", 0, 8) {
		t.Error("unterminated decimal reference failed")
	}
}

func TestCheckFlagsContexts(t *testing.T) {
	// payload only visible when starting inside a quoted attribute value
	payload := `x" onerror=alert(1) y="`
	if CheckFlags(payload, html5.DataState) {
		t.Error("payload should be inert in data state")
	}
	if !CheckFlags(payload, html5.ValueDoubleQuote) {
		t.Error("payload should fire in double-quote context")
	}
	if !IsXSS(payload) {
		t.Error("driver should try all contexts")
	}
}
