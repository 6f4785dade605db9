package sqli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Fixture files carry --TEST--, --INPUT-- and --EXPECTED-- sections. The
// file name selects the check: -tokens- dumps the raw token stream,
// -folding- dumps the folded window, -sqli- prints the fingerprint of the
// detecting pass (empty when benign).

type fixture struct {
	name     string
	input    string
	expected string
}

func loadFixture(t *testing.T, path string) fixture {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var fx fixture
	section := ""
	var buf []string
	flush := func() {
		body := strings.TrimRight(strings.Join(buf, "\n"), "\n")
		switch section {
		case "TEST":
			fx.name = strings.TrimSpace(body)
		case "INPUT":
			fx.input = body
		case "EXPECTED":
			fx.expected = body
		}
		buf = buf[:0]
	}
	for _, line := range strings.Split(string(data), "\n") {
		switch line {
		case "--TEST--", "--INPUT--", "--EXPECTED--":
			flush()
			section = strings.Trim(line, "-")
		default:
			buf = append(buf, line)
		}
	}
	flush()
	return fx
}

func dumpTokens(tokens []Token) string {
	var b strings.Builder
	for i := range tokens {
		fmt.Fprintf(&b, "%c %s\n", tokens[i].Type, tokens[i].Value())
	}
	return strings.TrimRight(b.String(), "\n")
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "test-*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			fx := loadFixture(t, path)
			var got string

			switch {
			case strings.Contains(path, "-tokens-"):
				st := NewState(fx.input, 0)
				var tokens []Token
				for st.Tokenize() {
					tokens = append(tokens, *st.Current())
				}
				got = dumpTokens(tokens)

			case strings.Contains(path, "-folding-"):
				st := NewState(fx.input, 0)
				n := st.Fold()
				got = dumpTokens(st.tokenvec[:n])

			case strings.Contains(path, "-sqli-"):
				_, got = FingerprintOf(fx.input)

			default:
				t.Fatalf("fixture %s has no recognized marker", path)
			}

			if got != fx.expected {
				t.Errorf("%s:\ninput:    %q\ngot:\n%s\nexpected:\n%s",
					fx.name, fx.input, got, fx.expected)
			}
		})
	}
}
