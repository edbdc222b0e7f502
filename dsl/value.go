package dsl

import (
	"fmt"
	"strings"
)

// Words returns the value as a list of plain words. Strings are unquoted and
// a minus sign is joined with the number that follows it.
func (v *Value) Words() []string {
	switch {
	case v == nil:
		return nil
	case v.String != nil:
		return []string{string(*v.String)}
	case v.Number != nil:
		return []string{*v.Number}
	case v.Color != nil:
		return []string{*v.Color}
	case v.Expr != nil:
		return joinSigns(v.Expr.Parts)
	default:
		return nil
	}
}

func joinSigns(parts []*Lexeme) []string {
	words := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		if p.Type == TokenPunct && (p.Value == "-" || p.Value == "+") && i+1 < len(parts) && parts[i+1].Type == TokenNumber {
			words = append(words, p.Value+parts[i+1].Value)
			i++
			continue
		}
		words = append(words, p.Value)
	}
	return words
}

// Text joins the words of the value with single spaces.
func (v *Value) Text() string {
	return strings.Join(v.Words(), " ")
}

// Float parses a single length value and returns it in pixels.
func (v *Value) Float() (float64, error) {
	words := v.Words()
	if len(words) != 1 {
		return 0, fmt.Errorf("需要单个数值，得到 %q", v.Text())
	}
	l, err := ParseLength(words[0])
	if err != nil {
		return 0, err
	}
	return l.Px(), nil
}

// Bool parses true/false (also yes/no, on/off).
func (v *Value) Bool() (bool, error) {
	return ParseBool(v.Text())
}

// Floats parses an array of lengths, each in pixels.
func (v *Value) Floats() ([]float64, error) {
	if v == nil || v.Array == nil {
		return nil, fmt.Errorf("需要数组，得到 %q", v.Text())
	}
	out := make([]float64, 0, len(v.Array.Values))
	for i, item := range v.Array.Values {
		f, err := item.Float()
		if err != nil {
			return nil, fmt.Errorf("数组第 %d 项: %w", i, err)
		}
		out = append(out, f)
	}
	return out, nil
}

// ParseBool accepts the boolean spellings used in the DSL.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("无法解析布尔值 %q", s)
	}
}

// Assignments returns the key: value statements of the block in order.
func (b *Block) Assignments() []*Assignment {
	if b == nil {
		return nil
	}
	var out []*Assignment
	for _, st := range b.Statements {
		if st.Assignment != nil {
			out = append(out, st.Assignment)
		}
	}
	return out
}

// Commands returns the command statements of the block in order.
func (b *Block) Commands() []*Command {
	if b == nil {
		return nil
	}
	var out []*Command
	for _, st := range b.Statements {
		if st.Command != nil {
			out = append(out, st.Command)
		}
	}
	return out
}

// Texts returns the bare string literals of the block.
func (b *Block) Texts() []string {
	if b == nil {
		return nil
	}
	var out []string
	for _, st := range b.Statements {
		if st.Text != nil {
			out = append(out, string(st.Text.Value))
		}
	}
	return out
}

// ArgValues returns the argument values of the command.
func (c *Command) ArgValues() []string {
	out := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		out = append(out, a.Value)
	}
	return out
}
