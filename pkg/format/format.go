// Package format implements the prompt template mini-language: literal text
// interleaved with $name and ${name} variables, with backslash escaping. The
// composer supplies a callback that maps each variable to its segments.
package format

import (
	"fmt"
	"strings"

	"github.com/mjeffryes/starship/pkg/segment"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenVariable
)

type token struct {
	kind  tokenKind
	value string
}

// Formatter is a parsed prompt template.
type Formatter struct {
	tokens []token
}

// Parse tokenizes a template string. `\$` produces a literal dollar sign and
// `\\` a literal backslash. An unterminated `${` is a parse error; the
// caller is expected to degrade to a fallback prompt.
func Parse(format string) (*Formatter, error) {
	var tokens []token
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{kind: tokenText, value: text.String()})
			text.Reset()
		}
	}

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			if i+1 < len(runes) {
				i++
				text.WriteRune(runes[i])
			} else {
				text.WriteRune('\\')
			}
		case '$':
			name, consumed, err := scanVariable(runes[i+1:])
			if err != nil {
				return nil, err
			}
			if name == "" {
				// A dollar sign not followed by a name is literal text.
				text.WriteRune('$')
				continue
			}
			flushText()
			tokens = append(tokens, token{kind: tokenVariable, value: name})
			i += consumed
		default:
			text.WriteRune(r)
		}
	}
	flushText()

	return &Formatter{tokens: tokens}, nil
}

// scanVariable reads a variable name after a '$'. Returns the name and how
// many runes were consumed.
func scanVariable(rest []rune) (string, int, error) {
	if len(rest) == 0 {
		return "", 0, nil
	}
	if rest[0] == '{' {
		for i := 1; i < len(rest); i++ {
			if rest[i] == '}' {
				return string(rest[1:i]), i + 1, nil
			}
		}
		return "", 0, fmt.Errorf("unterminated ${ in format string")
	}
	i := 0
	for i < len(rest) && isNameRune(rest[i]) {
		i++
	}
	return string(rest[:i]), i, nil
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '.'
}

// Variables returns the set of distinct variable names the template
// references, for membership tests.
func (f *Formatter) Variables() map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range f.tokens {
		if t.kind == tokenVariable {
			set[t.value] = struct{}{}
		}
	}
	return set
}

// VariableNames returns the variable names in template order, first
// occurrence wins.
func (f *Formatter) VariableNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, t := range f.tokens {
		if t.kind != tokenVariable {
			continue
		}
		if _, ok := seen[t.value]; ok {
			continue
		}
		seen[t.value] = struct{}{}
		names = append(names, t.value)
	}
	return names
}

// Format substitutes every variable through resolve and interleaves the
// results with the template's literal text, in template order.
func (f *Formatter) Format(resolve func(name string) []segment.Segment) []segment.Segment {
	var out []segment.Segment
	for _, t := range f.tokens {
		switch t.kind {
		case tokenText:
			out = append(out, segment.Plain(t.value))
		case tokenVariable:
			out = append(out, resolve(t.value)...)
		}
	}
	return out
}
