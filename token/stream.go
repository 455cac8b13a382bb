// Package token lexes a content-expression source string into a
// random-access token stream with single-token lookahead.
package token

import (
	"regexp"

	"github.com/coregx/contentexpr/cerr"
)

// splitter matches zero or more spaces followed by a word boundary,
// non-word rune, or end of string. Go's regexp has no lookahead, so it
// cannot express the token split by itself and tokenize does not use it;
// splitWords walks the runes instead.
var splitter = regexp.MustCompile(`\s*(?:\b|\W|$)`)

var identPart = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Stream is a cursor over the tokens of a content-expression source.
type Stream struct {
	source string
	tokens []string
	pos    int
}

// New tokenizes source and returns a Stream positioned at the first
// token.
func New(source string) *Stream {
	return &Stream{source: source, tokens: tokenize(source)}
}

// tokenize splits source into punctuation and identifier tokens,
// dropping empty tokens produced at either end.
func tokenize(source string) []string {
	parts := splitWords(source)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitWords performs the `\s*(?=\b|\W|$)` split described in the spec:
// walk the source rune by rune, closing the current token whenever we
// cross a word/non-word boundary or hit whitespace.
func splitWords(source string) []string {
	var out []string
	var cur []rune
	isWord := func(r rune) bool {
		return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	}
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		case isWord(r):
			if len(cur) > 0 && !isWord(cur[len(cur)-1]) {
				flush()
			}
			cur = append(cur, r)
		default:
			flush()
			out = append(out, string(r))
		}
	}
	flush()
	return out
}

// IsIdent reports whether tok is a valid identifier token, as opposed to
// punctuation.
func IsIdent(tok string) bool {
	return identPart.MatchString(tok)
}

// Peek returns the current token, or ("", false) at end of stream.
func (s *Stream) Peek() (string, bool) {
	if s.pos >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.pos], true
}

// Eat advances past the current token iff it equals tok, returning
// whether it did.
func (s *Stream) Eat(tok string) bool {
	if cur, ok := s.Peek(); ok && cur == tok {
		s.pos++
		return true
	}
	return false
}

// Next unconditionally consumes and returns the current token. Callers
// must have checked Peek first; Next panics at end of stream, since that
// indicates a parser bug rather than a malformed pattern.
func (s *Stream) Next() string {
	tok, ok := s.Peek()
	if !ok {
		panic("token: Next called at end of stream")
	}
	s.pos++
	return tok
}

// AtEnd reports whether the stream has no more tokens.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.tokens)
}

// Source returns the original, untokenized source string, for embedding
// in syntax error messages.
func (s *Stream) Source() string {
	return s.source
}

// Errorf builds a *cerr.SyntaxError annotated with the original source,
// matching the "<reason> (in content expression '<source>')" format.
func (s *Stream) Errorf(format string, args ...any) error {
	return cerr.NewSyntaxError(s.source, format, args...)
}
