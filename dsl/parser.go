package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var documentParser = participle.MustBuild[Document](
	participle.Lexer(vuiLexer),
	participle.Elide("Whitespace", "Comment", "HashComment"),
)

// Parse parses a .vui document. filename is only used in error positions.
func Parse(filename string, r io.Reader) (*Document, error) {
	return documentParser.Parse(filename, r)
}

// ParseString parses a .vui document held in memory.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}

// Parse reads one argument token. Arguments end with the line, at `;`, or
// at a brace.
func (l *Lexeme) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if tok.EOF() || tok.Type == kinds.newline || tok.Type == kinds.lbrace ||
		tok.Type == kinds.rbrace || kinds.isPunct(tok, ";") {
		return participle.NextMatch
	}
	lexeme, err := toLexeme(lex.Next())
	if err != nil {
		return err
	}
	*l = lexeme
	return nil
}

// Parse collects tokens up to the end of the value. Outside brackets the
// value ends at a line break, a brace, `;`, `,`, a closing `]`, or where the
// next `key:` pair on the same line starts.
func (e *Expression) Parse(lex *lexer.PeekingLexer) error {
	depth := 0
	for {
		tok := lex.Peek()
		if tok.EOF() {
			break
		}
		if depth == 0 && (endsValue(tok) || len(e.Parts) > 0 && atAssignment(lex)) {
			break
		}
		switch {
		case kinds.isPunct(tok, "(", "["):
			depth++
		case kinds.isPunct(tok, ")", "]"):
			depth--
		}
		lexeme, err := toLexeme(lex.Next())
		if err != nil {
			return err
		}
		e.Parts = append(e.Parts, &lexeme)
	}
	if len(e.Parts) == 0 {
		return participle.NextMatch
	}
	return nil
}

func endsValue(tok *lexer.Token) bool {
	switch tok.Type {
	case kinds.newline, kinds.lbrace, kinds.rbrace:
		return true
	}
	return kinds.isPunct(tok, ";", ",", "]", ")")
}

// atAssignment reports whether the next two tokens are `Ident :`.
func atAssignment(lex *lexer.PeekingLexer) bool {
	if lex.Peek().Type != kinds.ident {
		return false
	}
	checkpoint := lex.MakeCheckpoint()
	defer lex.LoadCheckpoint(checkpoint)
	lex.Next()
	return kinds.isPunct(lex.Peek(), ":")
}

func toLexeme(tok *lexer.Token) (Lexeme, error) {
	name, ok := kinds.names[tok.Type]
	if !ok {
		name = fmt.Sprintf("#%d", tok.Type)
	}
	value := tok.Value
	if tok.Type == kinds.str {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return Lexeme{}, fmt.Errorf("%s: 字符串无效: %w", tok.Pos, err)
		}
		value = unquoted
	}
	return Lexeme{Type: name, Value: value, Raw: tok.Value, Pos: tok.Pos}, nil
}

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("字符串缺少内容")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}
