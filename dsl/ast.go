package dsl

import "github.com/alecthomas/participle/v2/lexer"

// Document is the root AST node for a .vui file:
//
//	ui Name v1 { meta {...} resources {...} screen W H [rtl] {...} }
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'ui' @Ident"`
	Version  string         `parser:"@Ident"`
	Sections []*Section     `parser:"'{' ( Newline | @@ )* '}' Newline*"`
}

// Section is one of the top-level sections.
type Section struct {
	Meta      *MetaSection      `parser:"  'meta' @@"`
	Resources *ResourcesSection `parser:"| 'resources' @@"`
	Screen    *ScreenSection    `parser:"| 'screen' @@"`
}

// Kind names the section.
func (s *Section) Kind() string {
	switch {
	case s == nil:
	case s.Meta != nil:
		return "meta"
	case s.Resources != nil:
		return "resources"
	case s.Screen != nil:
		return "screen"
	}
	return "unknown"
}

// MetaSection holds title/author/subject/keywords assignments.
type MetaSection struct {
	Block *Block `parser:"@@"`
}

// ResourcesSection holds `font` and `color` declarations.
type ResourcesSection struct {
	Block *Block `parser:"@@"`
}

// ScreenSection is the root control. Params carry the size and the
// optional direction keyword.
type ScreenSection struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Params []*Lexeme      `parser:"@@*"`
	Block  *Block         `parser:"Newline* @@"`
}

// Block is a braced list of statements separated by newlines or `;`.
type Block struct {
	Statements []*Statement `parser:"'{' ( Newline | ';' | @@ )* '}'"`
}

// Statement is exactly one of its fields.
type Statement struct {
	Assignment *Assignment  `parser:"  @@"`
	Command    *Command     `parser:"| @@"`
	Text       *TextLiteral `parser:"| @@"`
}

// Assignment is `key: value`.
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident ':'"`
	Value *Value         `parser:"Newline* @@"`
}

// Command is a named statement with optional arguments and body,
// e.g. `control name { ... }` or `color Accent = #fff`.
type Command struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"@Ident"`
	Args  []*Lexeme      `parser:"@@*"`
	Block *Block         `parser:"( Newline* @@ )?"`
}

// TextLiteral is a bare string statement, the body of a text control.
type TextLiteral struct {
	Value StringLiteral `parser:"@String"`
}

// Value is the right-hand side of an assignment.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
	Array  *ArrayValue    `parser:"| @@"`
	Expr   *Expression    `parser:"| @@"`
}

// ArrayValue is `[a, b, c]`; newlines and `;` also separate items.
type ArrayValue struct {
	Values []*Value `parser:"'[' ( Newline | ',' | ';' )* ( @@ ( Newline | ',' | ';' )* )* ']'"`
}

// Expression is a run of loose tokens such as `fixed 40 min 0`.
type Expression struct {
	Parts []*Lexeme
}

// Lexeme is a single token kept for later interpretation.
type Lexeme struct {
	Type  string         `json:"type"`
	Value string         `json:"value"` // strings unquoted
	Raw   string         `json:"raw"`
	Pos   lexer.Position `json:"-"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string
