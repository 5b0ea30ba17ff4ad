package shell

import (
	"fmt"
	"strings"
)

// InitSnippet returns the shell hook a user evals from their shell
// configuration so every prompt redraw shells out to the given starship
// binary. The hook exports STARSHIP_SHELL and forwards the last exit status
// and command duration where the dialect can measure them.
func InitSnippet(sh Shell, binary string) (string, error) {
	if binary == "" {
		binary = "starship"
	}
	switch sh {
	case Bash:
		return strings.ReplaceAll(bashHook, "::STARSHIP::", binary), nil
	case Zsh:
		return strings.ReplaceAll(zshHook, "::STARSHIP::", binary), nil
	case Fish:
		return strings.ReplaceAll(fishHook, "::STARSHIP::", binary), nil
	case Tcsh:
		return strings.ReplaceAll(tcshHook, "::STARSHIP::", binary), nil
	default:
		return "", fmt.Errorf("no init snippet for shell %q", string(sh))
	}
}

const bashHook = `# starship prompt hook for bash
starship_precmd() {
    STARSHIP_STATUS=$?
    PS1="$(::STARSHIP:: prompt --status=$STARSHIP_STATUS)"
}
export STARSHIP_SHELL="bash"
PROMPT_COMMAND="starship_precmd${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
`

const zshHook = `# starship prompt hook for zsh
starship_precmd() {
    STARSHIP_STATUS=$?
    PROMPT="$(::STARSHIP:: prompt --status=$STARSHIP_STATUS)"
}
export STARSHIP_SHELL="zsh"
autoload -Uz add-zsh-hook
add-zsh-hook precmd starship_precmd
`

const fishHook = `# starship prompt hook for fish
function fish_prompt
    set -l exit_status $status
    ::STARSHIP:: prompt --status=$exit_status --cmd-duration=$CMD_DURATION
end
set -gx STARSHIP_SHELL fish
`

const tcshHook = `# starship prompt hook for tcsh
setenv STARSHIP_SHELL tcsh
alias precmd 'set prompt = "`+"`::STARSHIP:: prompt --status=$?`"+`"'
`
