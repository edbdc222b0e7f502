package dsl

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// vuiLexer tokenises .vui documents. Rules are tried in order: colors come
// before hash comments so `#fff` is a value and `# note` a comment.
var vuiLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
	{Name: "Newline", Pattern: `\n+`},
	{Name: "Comment", Pattern: `//[^\n]*|/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
	{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
	{Name: "HashComment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?(?:px|pt|mm|cm|in|%)?`},
	{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `[][(),.=+\-*/%<>!?;:]`},
	{Name: "LBrace", Pattern: `{`},
	{Name: "RBrace", Pattern: `}`},
})

// Token type names as reported in Lexeme.Type.
const (
	TokenNumber = "Number"
	TokenString = "String"
	TokenColor  = "Color"
	TokenIdent  = "Ident"
	TokenPunct  = "Punct"
)

// kinds caches the token types the custom parsers look at.
var kinds = loadKinds(vuiLexer.Symbols())

type tokenKinds struct {
	newline, lbrace, rbrace, punct, str, ident lexer.TokenType
	names                                      map[lexer.TokenType]string
}

func loadKinds(symbols map[string]lexer.TokenType) tokenKinds {
	get := func(name string) lexer.TokenType {
		tt, ok := symbols[name]
		if !ok {
			panic(fmt.Sprintf("dsl: token %s not defined", name))
		}
		return tt
	}
	k := tokenKinds{
		newline: get("Newline"),
		lbrace:  get("LBrace"),
		rbrace:  get("RBrace"),
		punct:   get(TokenPunct),
		str:     get(TokenString),
		ident:   get(TokenIdent),
		names:   make(map[lexer.TokenType]string, len(symbols)),
	}
	for name, tt := range symbols {
		k.names[tt] = name
	}
	return k
}

func (k tokenKinds) isPunct(tok *lexer.Token, values ...string) bool {
	if tok.Type != k.punct {
		return false
	}
	for _, v := range values {
		if tok.Value == v {
			return true
		}
	}
	return false
}
