package tui

import "strings"

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// CommandKind is what a command asks the shell to do.
type CommandKind int

const (
	CmdNavigate CommandKind = iota
	CmdQuit
	CmdHelp
	CmdLogout
)

// Kind classifies the command. Anything that is not a built-in is a
// navigation target, known or not.
func (c Command) Kind() CommandKind {
	switch c.Name {
	case "q", "quit":
		return CmdQuit
	case "h", "help":
		return CmdHelp
	case "logout":
		return CmdLogout
	default:
		return CmdNavigate
	}
}
