package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeRename Type = "rename"
	TypeDelete Type = "delete"
	TypeClear  Type = "clear"
	TypeFilter Type = "filter"
	TypeTheme  Type = "theme"
)

// aliases map alternate command words onto their canonical type.
var aliases = map[string]Type{
	"new":    TypeAdd,
	"done":   TypeToggle,
	"edit":   TypeRename,
	"rm":     TypeDelete,
	"remove": TypeDelete,
	"show":   TypeFilter,
}

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Target names a task by id. Zero means the selected row.
type Target struct {
	ID int
}

func (t Target) Selected() bool { return t.ID == 0 }

type AddArgs struct {
	Name string
}

type RenameArgs struct {
	Target Target
	Name   string
}

type FilterArgs struct {
	Filter model.Filter
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *Target
	Rename *RenameArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	typ := Type(head)
	if alias, ok := aliases[head]; ok {
		typ = alias
	}

	switch typ {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeToggle, TypeDelete:
		return parseTarget(input, typ, args)
	case TypeRename:
		return parseRename(input, args)
	case TypeClear, TypeTheme:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", typ)}
		}
		return Command{Type: typ, Raw: input}, nil
	case TypeFilter:
		return parseFilter(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) > 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes at most one task id", typ)}
	}
	target := Target{}
	if len(args) == 1 {
		var err error
		if target, err = parseTargetID(args[0]); err != nil {
			return Command{}, err
		}
	}
	return Command{Type: typ, Raw: raw, Target: &target}, nil
}

func parseRename(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a task id and a new name"}
	}
	target, err := parseTargetID(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Target: target, Name: strings.Join(args[1:], " ")}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, active or done"}
	}
	f, err := model.ParseFilter(strings.Join(args, " "))
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: f}}, nil
}

func parseTargetID(arg string) (Target, error) {
	switch strings.ToLower(arg) {
	case "selected", ".":
		return Target{}, nil
	}
	id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || id <= 0 {
		return Target{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid task id: %s", arg)}
	}
	return Target{ID: id}, nil
}
