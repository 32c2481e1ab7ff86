package literal

import (
	"strings"
)

// Parse converts text into a bool, int64, float64 or string (and, in
// Permissive mode, nil, []any, Tuple, Set or map[any]any). Surrounding
// whitespace is ignored.
//
// In Strict mode text outside the grammar yields a *ParseError. In Permissive
// mode such text is returned as the trimmed string and the error is nil.
func Parse(text string, mode Mode) (any, error) {
	value, err := parse(text, mode)
	if err != nil && mode == Permissive {
		return strings.TrimSpace(text), nil
	}

	return value, err
}

// MustParse is like Parse but panics on error. It is meant for literals
// embedded in source code.
func MustParse(text string, mode Mode) any {
	value, err := Parse(text, mode)
	if err != nil {
		panic(err)
	}

	return value
}

// MaxDepth bounds how deeply containers may nest.
const MaxDepth = 200

type parser struct {
	lex   *lexer
	tok   token
	mode  Mode
	depth int
}

func parse(text string, mode Mode) (any, error) {
	p := &parser{lex: &lexer{src: text, pos: 0}, mode: mode}

	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.kind == tokEOF {
		return nil, p.lex.errorf(p.tok.offset, "empty input")
	}

	var (
		value any
		err   error
	)

	if mode == Permissive {
		value, err = p.parseTopLevel()
	} else {
		value, err = p.parseScalar()
	}

	if err != nil {
		return nil, err
	}

	if p.tok.kind != tokEOF {
		return nil, p.lex.errorf(p.tok.offset, "unexpected %s after literal", p.tok)
	}

	return value, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func (p *parser) parseScalar() (any, error) {
	tok := p.tok

	switch tok.kind {
	case tokName:
		var value bool

		switch tok.text {
		case "True":
			value = true
		case "False":
			value = false
		default:
			return nil, p.lex.errorf(tok.offset, "bare name %q is not a literal", tok.text)
		}

		return value, p.advance()
	case tokInt, tokFloat:
		return tok.value, p.advance()
	case tokString:
		return p.parseStrings()
	case tokPunct:
		return nil, p.lex.errorf(tok.offset, "unexpected %s; composite literals need permissive mode", tok)
	default:
		return nil, p.lex.errorf(tok.offset, "unexpected %s", tok)
	}
}

// parseStrings joins adjacent string literals: 'a' "b" is "ab".
func (p *parser) parseStrings() (any, error) {
	var out strings.Builder

	for p.tok.kind == tokString {
		s, _ := p.tok.value.(string)
		out.WriteString(s)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return out.String(), nil
}

// parseTopLevel accepts a bare tuple such as 1, 2 at the outermost level.
func (p *parser) parseTopLevel() (any, error) {
	first, err := p.parseValue()
	if err != nil || !p.tok.is(",") {
		return first, err
	}

	items := Tuple{first}

	for p.tok.is(",") {
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.kind == tokEOF {
			break
		}

		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func (p *parser) parseValue() (any, error) {
	if p.tok.is("[") || p.tok.is("(") || p.tok.is("{") {
		if p.depth >= MaxDepth {
			return nil, p.lex.errorf(p.tok.offset, "nesting too deep (max %d)", MaxDepth)
		}

		p.depth++
		defer func() { p.depth-- }()
	}

	switch {
	case p.tok.is("["):
		items, _, err := p.parseSequence("]")
		if err != nil {
			return nil, err
		}

		return items, nil
	case p.tok.is("("):
		items, sawComma, err := p.parseSequence(")")
		if err != nil {
			return nil, err
		}

		if len(items) == 1 && !sawComma {
			return items[0], nil
		}

		return Tuple(items), nil
	case p.tok.is("{"):
		return p.parseBraces()
	case p.tok.kind == tokName && p.tok.text == "None":
		return nil, p.advance()
	default:
		return p.parseScalar()
	}
}

// parseSequence parses items up to closer. The opening bracket is the
// current token.
func (p *parser) parseSequence(closer string) ([]any, bool, error) {
	if err := p.advance(); err != nil {
		return nil, false, err
	}

	items := []any{}
	sawComma := false

	for !p.tok.is(closer) {
		item, err := p.parseValue()
		if err != nil {
			return nil, false, err
		}

		items = append(items, item)

		if !p.tok.is(",") {
			if !p.tok.is(closer) {
				return nil, false, p.lex.errorf(p.tok.offset, "expected %q, got %s", closer, p.tok)
			}

			break
		}

		sawComma = true

		if err := p.advance(); err != nil {
			return nil, false, err
		}
	}

	return items, sawComma, p.advance()
}

// parseBraces parses a dict or a set. {} is an empty dict.
func (p *parser) parseBraces() (any, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok.is("}") {
		return map[any]any{}, p.advance()
	}

	first, err := p.parseHashable()
	if err != nil {
		return nil, err
	}

	if p.tok.is(":") {
		return p.parseDict(first)
	}

	set := Set{first: {}}

	for p.tok.is(",") {
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.is("}") {
			break
		}

		elem, err := p.parseHashable()
		if err != nil {
			return nil, err
		}

		set[canonicalKey(set, elem)] = struct{}{}
	}

	return set, p.expect("}")
}

func (p *parser) parseDict(firstKey any) (any, error) {
	dict := map[any]any{}
	key := firstKey

	for {
		if err := p.expect(":"); err != nil {
			return nil, err
		}

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		dict[canonicalKey(dict, key)] = value

		if !p.tok.is(",") {
			break
		}

		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.tok.is("}") {
			break
		}

		key, err = p.parseHashable()
		if err != nil {
			return nil, err
		}
	}

	return dict, p.expect("}")
}

func (p *parser) parseHashable() (any, error) {
	offset := p.tok.offset

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if !hashable(value) {
		return nil, p.lex.errorf(offset, "unhashable %T used as set element or dict key", value)
	}

	return value, nil
}

func (p *parser) expect(punct string) error {
	if !p.tok.is(punct) {
		return p.lex.errorf(p.tok.offset, "expected %q, got %s", punct, p.tok)
	}

	return p.advance()
}
