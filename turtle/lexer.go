package turtle

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIRIRef
	tokPrefixedName // includes standalone "a" disambiguated by the parser
	tokBlankLabel
	tokString
	tokInteger
	tokDecimal
	tokDouble
	tokLangTag
	tokPrefixDirective // @prefix or PREFIX
	tokBaseDirective   // @base or BASE
	tokDot
	tokSemicolon
	tokComma
	tokOpenBracket
	tokCloseBracket
	tokOpenParen
	tokCloseParen
	tokCaretCaret
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIRIRef:
		return "IRI"
	case tokPrefixedName:
		return "prefixed name"
	case tokBlankLabel:
		return "blank node label"
	case tokString:
		return "string literal"
	case tokInteger, tokDecimal, tokDouble:
		return "numeric literal"
	case tokLangTag:
		return "language tag"
	case tokPrefixDirective:
		return "@prefix"
	case tokBaseDirective:
		return "@base"
	case tokDot:
		return "'.'"
	case tokSemicolon:
		return "';'"
	case tokComma:
		return "','"
	case tokOpenBracket:
		return "'['"
	case tokCloseBracket:
		return "']'"
	case tokOpenParen:
		return "'('"
	case tokCloseParen:
		return "')'"
	case tokCaretCaret:
		return "'^^'"
	default:
		return "token"
	}
}

type token struct {
	kind tokenKind
	text string // decoded payload (IRI body, literal value, pname, label)

	line, col, offset int
}

// lexer scans Turtle input one token at a time, tracking byte/line/column
// positions for error reporting.
type lexer struct {
	doc   string
	input string
	pos   int
	line  int
	col   int
}

func newLexer(doc, input string) *lexer {
	return &lexer{doc: doc, input: input, line: 1, col: 1}
}

func (lx *lexer) errf(expected, got string) *SyntaxError {
	return &SyntaxError{Document: lx.doc, Line: lx.line, Col: lx.col, Offset: lx.pos, Expected: expected, Got: got}
}

func (lx *lexer) peekByte() (byte, bool) {
	if lx.pos >= len(lx.input) {
		return 0, false
	}
	return lx.input[lx.pos], true
}

func (lx *lexer) advance(n int) {
	for i := 0; i < n && lx.pos < len(lx.input); i++ {
		if lx.input[lx.pos] == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		lx.pos++
	}
}

// skipSpace consumes whitespace and comments. Comments run to end of line.
func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.input) {
		c := lx.input[lx.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.advance(1)
		case c == '#':
			for lx.pos < len(lx.input) && lx.input[lx.pos] != '\n' {
				lx.advance(1)
			}
		default:
			return
		}
	}
}

func (lx *lexer) next() (token, *SyntaxError) {
	lx.skipSpace()
	tok := token{line: lx.line, col: lx.col, offset: lx.pos}

	c, ok := lx.peekByte()
	if !ok {
		tok.kind = tokEOF
		return tok, nil
	}

	switch {
	case c == '<':
		return lx.lexIRIRef(tok)
	case c == '"' || c == '\'':
		return lx.lexString(tok, c)
	case c == '_':
		return lx.lexBlankLabel(tok)
	case c == '@':
		return lx.lexAtKeyword(tok)
	case c == '.':
		// Distinguish statement terminator from a leading-dot decimal such
		// as ".5"; Turtle requires a digit before the dot, so dot always
		// terminates here.
		tok.kind = tokDot
		lx.advance(1)
		return tok, nil
	case c == ';':
		tok.kind = tokSemicolon
		lx.advance(1)
		return tok, nil
	case c == ',':
		tok.kind = tokComma
		lx.advance(1)
		return tok, nil
	case c == '[':
		tok.kind = tokOpenBracket
		lx.advance(1)
		return tok, nil
	case c == ']':
		tok.kind = tokCloseBracket
		lx.advance(1)
		return tok, nil
	case c == '(':
		tok.kind = tokOpenParen
		lx.advance(1)
		return tok, nil
	case c == ')':
		tok.kind = tokCloseParen
		lx.advance(1)
		return tok, nil
	case c == '^':
		if strings.HasPrefix(lx.input[lx.pos:], "^^") {
			tok.kind = tokCaretCaret
			lx.advance(2)
			return tok, nil
		}
		return tok, lx.errf("'^^'", "'^'")
	case c == '+' || c == '-' || (c >= '0' && c <= '9'):
		return lx.lexNumber(tok)
	default:
		return lx.lexPrefixedName(tok)
	}
}

func (lx *lexer) lexIRIRef(tok token) (token, *SyntaxError) {
	lx.advance(1) // consume '<'
	var sb strings.Builder
	for {
		if lx.pos >= len(lx.input) {
			return tok, lx.errf("'>' closing IRI", "end of input")
		}
		c := lx.input[lx.pos]
		switch c {
		case '>':
			lx.advance(1)
			tok.kind = tokIRIRef
			tok.text = sb.String()
			return tok, nil
		case '\n', '\r', '<', '"', '{', '}', '|', '^', '`':
			return tok, lx.errf("'>' closing IRI", fmt.Sprintf("%q", c))
		case '\\':
			decoded, n, err := lx.decodeUChar(lx.input[lx.pos:])
			if err != nil {
				return tok, err
			}
			sb.WriteRune(decoded)
			lx.advance(n)
		default:
			sb.WriteByte(c)
			lx.advance(1)
		}
	}
}

// decodeUChar decodes \uXXXX and \UXXXXXXXX escapes.
func (lx *lexer) decodeUChar(s string) (rune, int, *SyntaxError) {
	if len(s) < 2 {
		return 0, 0, lx.errf("unicode escape", "end of input")
	}
	var width int
	switch s[1] {
	case 'u':
		width = 4
	case 'U':
		width = 8
	default:
		return 0, 0, lx.errf("'\\u' or '\\U' escape", fmt.Sprintf("%q", s[:2]))
	}
	if len(s) < 2+width {
		return 0, 0, lx.errf("unicode escape digits", "end of input")
	}
	var r rune
	for _, h := range s[2 : 2+width] {
		v := hexVal(byte(h))
		if v < 0 {
			return 0, 0, lx.errf("hex digit", fmt.Sprintf("%q", h))
		}
		r = r<<4 | rune(v)
	}
	return r, 2 + width, nil
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func (lx *lexer) lexString(tok token, quote byte) (token, *SyntaxError) {
	long := strings.HasPrefix(lx.input[lx.pos:], strings.Repeat(string(quote), 3))
	if long {
		lx.advance(3)
	} else {
		lx.advance(1)
	}

	var sb strings.Builder
	for {
		if lx.pos >= len(lx.input) {
			return tok, lx.errf("closing quote", "end of input")
		}
		c := lx.input[lx.pos]
		if c == quote {
			if long {
				if strings.HasPrefix(lx.input[lx.pos:], strings.Repeat(string(quote), 3)) {
					lx.advance(3)
					break
				}
				sb.WriteByte(c)
				lx.advance(1)
				continue
			}
			lx.advance(1)
			break
		}
		if !long && (c == '\n' || c == '\r') {
			return tok, lx.errf("closing quote", "newline")
		}
		if c == '\\' {
			if lx.pos+1 >= len(lx.input) {
				return tok, lx.errf("escape sequence", "end of input")
			}
			e := lx.input[lx.pos+1]
			switch e {
			case 't':
				sb.WriteByte('\t')
				lx.advance(2)
			case 'b':
				sb.WriteByte('\b')
				lx.advance(2)
			case 'n':
				sb.WriteByte('\n')
				lx.advance(2)
			case 'r':
				sb.WriteByte('\r')
				lx.advance(2)
			case 'f':
				sb.WriteByte('\f')
				lx.advance(2)
			case '"', '\'', '\\':
				sb.WriteByte(e)
				lx.advance(2)
			case 'u', 'U':
				r, n, err := lx.decodeUChar(lx.input[lx.pos:])
				if err != nil {
					return tok, err
				}
				sb.WriteRune(r)
				lx.advance(n)
			default:
				return tok, lx.errf("escape sequence", fmt.Sprintf("'\\%c'", e))
			}
			continue
		}
		sb.WriteByte(c)
		lx.advance(1)
	}
	tok.kind = tokString
	tok.text = sb.String()
	return tok, nil
}

func (lx *lexer) lexBlankLabel(tok token) (token, *SyntaxError) {
	if !strings.HasPrefix(lx.input[lx.pos:], "_:") {
		return tok, lx.errf("blank node label", "'_'")
	}
	lx.advance(2)
	start := lx.pos
	for lx.pos < len(lx.input) {
		c := rune(lx.input[lx.pos])
		if isPNChar(c) {
			lx.advance(1)
			continue
		}
		// Interior dots are part of the label; a trailing dot terminates
		// the statement instead.
		if c == '.' && lx.pos+1 < len(lx.input) && isPNChar(rune(lx.input[lx.pos+1])) {
			lx.advance(1)
			continue
		}
		break
	}
	if lx.pos == start {
		return tok, lx.errf("blank node label", "empty label")
	}
	tok.kind = tokBlankLabel
	tok.text = lx.input[start:lx.pos]
	return tok, nil
}

// atDirective reports whether input begins with the directive keyword
// followed by a delimiter, so that "@prefixfoo" is not mistaken for
// "@prefix" with leftover input.
func atDirective(input, keyword string) bool {
	if !strings.HasPrefix(input, keyword) {
		return false
	}
	if len(input) == len(keyword) {
		return true
	}
	return !isPNChar(rune(input[len(keyword)]))
}

func (lx *lexer) lexAtKeyword(tok token) (token, *SyntaxError) {
	rest := lx.input[lx.pos:]
	switch {
	case atDirective(rest, "@prefix"):
		lx.advance(len("@prefix"))
		tok.kind = tokPrefixDirective
		return tok, nil
	case atDirective(rest, "@base"):
		lx.advance(len("@base"))
		tok.kind = tokBaseDirective
		return tok, nil
	}
	// Language tag: @ followed by letters, optionally -subtags.
	lx.advance(1)
	start := lx.pos
	for lx.pos < len(lx.input) {
		c := lx.input[lx.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || (lx.pos > start && c >= '0' && c <= '9') {
			lx.advance(1)
			continue
		}
		break
	}
	if lx.pos == start {
		return tok, lx.errf("language tag or directive", "'@'")
	}
	tok.kind = tokLangTag
	tok.text = strings.ToLower(lx.input[start:lx.pos])
	return tok, nil
}

func (lx *lexer) lexNumber(tok token) (token, *SyntaxError) {
	start := lx.pos
	if c := lx.input[lx.pos]; c == '+' || c == '-' {
		lx.advance(1)
	}
	digits := 0
	for lx.pos < len(lx.input) && lx.input[lx.pos] >= '0' && lx.input[lx.pos] <= '9' {
		lx.advance(1)
		digits++
	}
	kind := tokInteger
	if lx.pos < len(lx.input) && lx.input[lx.pos] == '.' {
		// Only a decimal when digits follow; a bare dot ends the statement.
		if lx.pos+1 < len(lx.input) && lx.input[lx.pos+1] >= '0' && lx.input[lx.pos+1] <= '9' {
			kind = tokDecimal
			lx.advance(1)
			for lx.pos < len(lx.input) && lx.input[lx.pos] >= '0' && lx.input[lx.pos] <= '9' {
				lx.advance(1)
				digits++
			}
		}
	}
	if lx.pos < len(lx.input) && (lx.input[lx.pos] == 'e' || lx.input[lx.pos] == 'E') {
		mark := lx.pos
		lx.advance(1)
		if lx.pos < len(lx.input) && (lx.input[lx.pos] == '+' || lx.input[lx.pos] == '-') {
			lx.advance(1)
		}
		expDigits := 0
		for lx.pos < len(lx.input) && lx.input[lx.pos] >= '0' && lx.input[lx.pos] <= '9' {
			lx.advance(1)
			expDigits++
		}
		if expDigits == 0 {
			// Not an exponent after all; rewind is unsafe with line tracking,
			// but 'e' cannot begin a valid continuation here.
			_ = mark
			return tok, lx.errf("exponent digits", "letter 'e'")
		}
		kind = tokDouble
	}
	if digits == 0 {
		return tok, lx.errf("numeric literal", lx.input[start:lx.pos])
	}
	tok.kind = kind
	tok.text = lx.input[start:lx.pos]
	return tok, nil
}

// lexPrefixedName scans a prefixed name (pfx:local), a bare keyword such as
// "a", "true", "false", or the SPARQL-style PREFIX/BASE directives.
func (lx *lexer) lexPrefixedName(tok token) (token, *SyntaxError) {
	start := lx.pos
	sawColon := false
	for lx.pos < len(lx.input) {
		r, size := utf8.DecodeRuneInString(lx.input[lx.pos:])
		if r == ':' {
			sawColon = true
			lx.advance(size)
			continue
		}
		if isPNChar(r) || r == '.' && sawColon && lx.pos+1 < len(lx.input) && isPNChar(rune(lx.input[lx.pos+1])) {
			lx.advance(size)
			continue
		}
		break
	}
	if lx.pos == start {
		r, _ := utf8.DecodeRuneInString(lx.input[lx.pos:])
		return tok, lx.errf("term", fmt.Sprintf("%q", r))
	}
	text := lx.input[start:lx.pos]
	switch {
	case strings.EqualFold(text, "prefix") && !sawColon:
		tok.kind = tokPrefixDirective
		return tok, nil
	case strings.EqualFold(text, "base") && !sawColon:
		tok.kind = tokBaseDirective
		return tok, nil
	}
	tok.kind = tokPrefixedName
	tok.text = text
	return tok, nil
}

func isPNChar(r rune) bool {
	return r == '_' || r == '-' || r == '%' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}
