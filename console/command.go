package console

import (
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrMissingArgument    = fmt.Errorf("missing argument")
	ErrUnexpectedArgument = fmt.Errorf("command takes no argument")
)

// Op identifies a console command.
type Op int

const (
	// OpNone is the result of parsing a blank line or a comment.
	OpNone Op = iota
	OpAddFile
	OpAddFolder
	OpNavigate
	OpShow
	OpEnd
	OpList
	OpPwd
	OpExport
	OpHelp
)

type commandInfo struct {
	op      Op
	name    string
	aliases []string
	// arg names the argument, commands without one leave it empty.
	arg   string
	ask   string
	usage string
}

// commands are listed in the order help prints them.
// The numeric aliases keep the classic menu numbers working.
var commands = []commandInfo{
	{OpAddFile, "add-file", []string{"touch", "1"}, "NAME", "Enter the name of the file (less than 100 characters)", "add a file to the current folder"},
	{OpAddFolder, "add-folder", []string{"mkdir", "2"}, "NAME", "Enter the name of the folder (less than 100 characters)", "add a sub folder to the current folder"},
	{OpNavigate, "navigate", []string{"cd", "3"}, "NAME|..|up|.", "Enter the folder name or '..' to move up", "change the current folder"},
	{OpShow, "show", []string{"tree", "4"}, "", "", "print the whole structure from the root"},
	{OpEnd, "end", []string{"exit", "quit", "5"}, "", "", "free the structure and leave"},
	{OpList, "ls", []string{"list"}, "", "", "list the children of the current folder"},
	{OpPwd, "pwd", nil, "", "", "print the path of the current folder"},
	{OpExport, "export", nil, "FILE.md|FILE.html|md|html", "Enter the name of the export file or md or html", "write the structure to a Markdown or HTML file"},
	{OpHelp, "help", []string{"?"}, "", "", "show this list"},
}

var commandsByName = func() map[string]*commandInfo {
	m := make(map[string]*commandInfo)
	for i := range commands {
		info := &commands[i]
		m[info.name] = info
		for _, alias := range info.aliases {
			m[alias] = info
		}
	}
	return m
}()

func (op Op) info() *commandInfo {
	for i := range commands {
		if commands[i].op == op {
			return &commands[i]
		}
	}
	return nil
}

func (op Op) String() string {
	if info := op.info(); info != nil {
		return info.name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Command is a parsed console line.
type Command struct {
	Op  Op
	Arg string
}

// NeedsArg reports whether the command requires an argument that is still missing.
func (c Command) NeedsArg() bool {
	info := c.Op.info()
	return info != nil && info.arg != "" && c.Arg == ""
}

// argPrompt is printed when the argument has to be read from the next line.
func (c Command) argPrompt() string {
	if info := c.Op.info(); info != nil {
		return info.ask
	}
	return ""
}

// Parse parses a single input line.
// Blank lines and lines starting with '#' yield OpNone.
// Everything after the command word is the argument, so names may contain spaces.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, nil
	}

	word, arg := line, ""
	if idx := strings.IndexFunc(line, unicode.IsSpace); idx >= 0 {
		word, arg = line[:idx], strings.TrimSpace(line[idx:])
	}

	info, ok := commandsByName[strings.ToLower(word)]
	if !ok {
		return Command{}, fmt.Errorf("%w %q, type help for a list of commands", ErrUnknownCommand, word)
	}
	if info.arg == "" && arg != "" {
		return Command{}, fmt.Errorf("%s: %w", info.name, ErrUnexpectedArgument)
	}

	return Command{Op: info.op, Arg: arg}, nil
}
