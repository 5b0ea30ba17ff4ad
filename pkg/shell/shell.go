// Package shell identifies the shell dialect the prompt is rendered for and
// carries the per-dialect quirks: ANSI escape wrapping for line editors and
// the init hooks users source from their shell configuration.
package shell

import "strings"

// Shell is a shell dialect identifier.
type Shell string

const (
	Bash       Shell = "bash"
	Zsh        Shell = "zsh"
	Fish       Shell = "fish"
	Tcsh       Shell = "tcsh"
	Ion        Shell = "ion"
	PowerShell Shell = "powershell"
	Unknown    Shell = ""
)

// Parse maps a shell name (typically $STARSHIP_SHELL) to a dialect. Names are
// matched on their final path component so "/bin/bash" works too.
func Parse(name string) Shell {
	name = strings.ToLower(name)
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	switch name {
	case "bash":
		return Bash
	case "zsh":
		return Zsh
	case "fish":
		return Fish
	case "tcsh", "csh":
		return Tcsh
	case "ion":
		return Ion
	case "powershell", "pwsh":
		return PowerShell
	default:
		return Unknown
	}
}

// WrapEscapes surrounds every ANSI escape sequence in s with the dialect's
// zero-width markers: %{...%} for zsh and \[...\] for bash. Without them the
// line editor counts the escape bytes as printable characters and cursor
// positioning drifts. Other dialects pass through unchanged.
func WrapEscapes(s string, sh Shell) string {
	var pre, post string
	switch sh {
	case Zsh:
		pre, post = "%{", "%}"
	case Bash:
		pre, post = `\[`, `\]`
	default:
		return s
	}

	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if !inEscape && r == '\x1b' {
			inEscape = true
			b.WriteString(pre)
		}
		b.WriteRune(r)
		// Standard terminal escape sequences terminate on an ASCII letter.
		if inEscape && r != '\x1b' && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			inEscape = false
			b.WriteString(post)
		}
	}
	if inEscape {
		b.WriteString(post)
	}
	return b.String()
}
