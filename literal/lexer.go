package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokName
	tokInt
	tokFloat
	tokString
	tokPunct
)

type token struct {
	kind   tokenKind
	text   string
	value  any
	offset int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokString:
		return "string"
	case tokInt, tokFloat:
		return "number " + t.text
	default:
		return strconv.Quote(t.text)
	}
}

func (t token) is(punct string) bool {
	return t.kind == tokPunct && t.text == punct
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	l.skipSpace()

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case strings.IndexByte("[](){},:", c) >= 0:
		l.pos++

		return token{kind: tokPunct, text: string(c), offset: start}, nil
	case c == '\'' || c == '"':
		return l.lexString(start, false)
	case isDigit(c) || c == '.' && l.digitAt(l.pos+1):
		return l.lexNumber(start)
	case (c == '-' || c == '+') && l.numberAt(l.pos+1):
		return l.lexNumber(start)
	case isNameStart(c):
		return l.lexName(start)
	}

	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])

	return token{}, l.errorf(start, "unexpected character %q", r)
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) digitAt(i int) bool {
	return i < len(l.src) && isDigit(l.src[i])
}

func (l *lexer) numberAt(i int) bool {
	return l.digitAt(i) || i < len(l.src) && l.src[i] == '.' && l.digitAt(i+1)
}

func (l *lexer) lexName(start int) (token, error) {
	for l.pos < len(l.src) && isNameChar(l.src[l.pos]) {
		l.pos++
	}

	name := l.src[start:l.pos]

	if l.pos < len(l.src) && (l.src[l.pos] == '\'' || l.src[l.pos] == '"') {
		switch name {
		case "r", "R":
			return l.lexString(start, true)
		case "u", "U":
			return l.lexString(start, false)
		default:
			return token{}, l.errorf(start, "unsupported string prefix %q", name)
		}
	}

	return token{kind: tokName, text: name, offset: start}, nil
}

func (l *lexer) lexNumber(start int) (token, error) {
	sign := ""

	if c := l.src[l.pos]; c == '-' || c == '+' {
		if c == '-' {
			sign = "-"
		}

		l.pos++
	}

	if l.pos+1 < len(l.src) && l.src[l.pos] == '0' {
		if base := basePrefix(l.src[l.pos+1]); base != 0 {
			return l.lexPrefixedInt(start, sign, base)
		}
	}

	intPart := l.scanDigits()
	isFloat := false
	clean := strings.ReplaceAll(intPart, "_", "")

	if intPart != "" && !validGroup(intPart) {
		return token{}, l.errorf(start, "misplaced underscore in number")
	}

	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isFloat = true
		l.pos++

		frac := l.scanDigits()
		if frac != "" && !validGroup(frac) {
			return token{}, l.errorf(start, "misplaced underscore in number")
		}

		clean += "." + strings.ReplaceAll(frac, "_", "")
	}

	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++

		expSign := ""
		if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
			expSign = l.src[l.pos : l.pos+1]
			l.pos++
		}

		exp := l.scanDigits()
		if !validGroup(exp) {
			return token{}, l.errorf(start, "malformed exponent")
		}

		isFloat = true
		clean += "e" + expSign + strings.ReplaceAll(exp, "_", "")
	}

	if err := l.checkBoundary(start); err != nil {
		return token{}, err
	}

	text := l.src[start:l.pos]

	if isFloat {
		value, err := strconv.ParseFloat(sign+clean, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return token{}, l.errorf(start, "malformed float %q", text)
		}

		return token{kind: tokFloat, text: text, value: value, offset: start}, nil
	}

	if len(clean) > 1 && clean[0] == '0' && strings.Trim(clean, "0") != "" {
		return token{}, l.errorf(start, "leading zeros in decimal integer %q", text)
	}

	return l.intToken(start, text, sign+clean, 10)
}

func (l *lexer) lexPrefixedInt(start int, sign string, base int) (token, error) {
	l.pos += 2
	digitsStart := l.pos

	for l.pos < len(l.src) && (isBaseDigit(l.src[l.pos], base) || l.src[l.pos] == '_') {
		l.pos++
	}

	digits := l.src[digitsStart:l.pos]
	if !validGroup(strings.TrimPrefix(digits, "_")) {
		return token{}, l.errorf(start, "malformed base-%d integer", base)
	}

	if err := l.checkBoundary(start); err != nil {
		return token{}, err
	}

	return l.intToken(start, l.src[start:l.pos], sign+strings.ReplaceAll(digits, "_", ""), base)
}

func (l *lexer) intToken(start int, text, digits string, base int) (token, error) {
	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token{}, l.errorf(start, "integer %s out of int64 range", text)
		}

		return token{}, l.errorf(start, "malformed integer %q", text)
	}

	return token{kind: tokInt, text: text, value: value, offset: start}, nil
}

func (l *lexer) scanDigits() string {
	start := l.pos

	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}

	return l.src[start:l.pos]
}

// checkBoundary rejects numbers glued to names, as in 12abc or 1.2.3.
func (l *lexer) checkBoundary(start int) error {
	if l.pos < len(l.src) && (isNameChar(l.src[l.pos]) || l.src[l.pos] == '.') {
		return l.errorf(start, "malformed number %q", l.src[start:l.pos+1])
	}

	return nil
}

func (l *lexer) lexString(start int, raw bool) (token, error) {
	quote := l.src[l.pos]
	delim := string(quote)

	if triple := strings.Repeat(delim, 3); strings.HasPrefix(l.src[l.pos:], triple) {
		delim = triple
	}

	l.pos += len(delim)

	var out strings.Builder

	for {
		if l.pos >= len(l.src) {
			return token{}, l.errorf(start, "unterminated string")
		}

		if strings.HasPrefix(l.src[l.pos:], delim) {
			l.pos += len(delim)

			return token{kind: tokString, text: l.src[start:l.pos], value: out.String(), offset: start}, nil
		}

		c := l.src[l.pos]

		switch {
		case c == '\n' && len(delim) == 1:
			return token{}, l.errorf(start, "newline in single-quoted string")
		case c == '\\' && raw:
			if l.pos+1 >= len(l.src) {
				return token{}, l.errorf(start, "unterminated string")
			}

			out.WriteString(l.src[l.pos : l.pos+2])
			l.pos += 2
		case c == '\\':
			if err := l.escape(&out); err != nil {
				return token{}, err
			}
		default:
			out.WriteByte(c)
			l.pos++
		}
	}
}

var simpleEscapes = map[byte]string{
	'\n': "",
	'\\': "\\",
	'\'': "'",
	'"':  "\"",
	'a':  "\a",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'v':  "\v",
}

func (l *lexer) escape(out *strings.Builder) error {
	start := l.pos

	if l.pos+1 >= len(l.src) {
		return l.errorf(start, "unterminated string")
	}

	c := l.src[l.pos+1]
	l.pos += 2

	if s, ok := simpleEscapes[c]; ok {
		out.WriteString(s)

		return nil
	}

	switch c {
	case 'x':
		return l.hexEscape(out, start, 2)
	case 'u':
		return l.hexEscape(out, start, 4)
	case 'U':
		return l.hexEscape(out, start, 8)
	}

	if isOctal(c) {
		value := int(c - '0')

		for n := 1; n < 3 && l.pos < len(l.src) && isOctal(l.src[l.pos]); n++ {
			value = value*8 + int(l.src[l.pos]-'0')
			l.pos++
		}

		out.WriteRune(rune(value))

		return nil
	}

	// Unknown escapes keep their backslash.
	out.WriteByte('\\')
	l.pos--

	return nil
}

func (l *lexer) hexEscape(out *strings.Builder, start, width int) error {
	if l.pos+width > len(l.src) {
		return l.errorf(start, "truncated \\%c escape", l.src[start+1])
	}

	value, err := strconv.ParseUint(l.src[l.pos:l.pos+width], 16, 32)
	if err != nil || value > utf8.MaxRune {
		return l.errorf(start, "invalid \\%c escape", l.src[start+1])
	}

	l.pos += width
	out.WriteRune(rune(value))

	return nil
}

func (l *lexer) errorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{Input: l.src, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func basePrefix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}

func validGroup(digits string) bool {
	return digits != "" && digits[0] != '_' && digits[len(digits)-1] != '_' && !strings.Contains(digits, "__")
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

func isBaseDigit(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return isOctal(c)
	default:
		return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
	}
}

func isNameStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c)
}
