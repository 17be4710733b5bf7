package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeDone    Type = "done"
	TypeRename  Type = "rename"
	TypeDelete  Type = "delete"
	TypeMood    Type = "mood"
	TypeUndo    Type = "undo"
	TypeFocus   Type = "focus"
	TypeRemind  Type = "remind"
	TypeSuggest Type = "suggest"
	TypeExport  Type = "export"
	TypeImport  Type = "import"
)

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

type AddArgs struct {
	Title string
}

// TargetArgs addresses a quest by id prefix.
type TargetArgs struct {
	Target string
}

type RenameArgs struct {
	Target string
	Title  string
}

type MoodArgs struct {
	Emoji string
	Mood  string
	Note  string
	Tags  []string
}

type RemindArgs struct {
	Enabled bool
	Minutes int
}

type SuggestArgs struct {
	Mood string
}

type PathArgs struct {
	Path string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Target  *TargetArgs
	Rename  *RenameArgs
	Mood    *MoodArgs
	Remind  *RemindArgs
	Suggest *SuggestArgs
	Path    *PathArgs
}

// Names lists every verb in palette order.
func Names() []Type {
	return []Type{TypeAdd, TypeDone, TypeRename, TypeDelete, TypeMood, TypeUndo, TypeFocus, TypeRemind, TypeSuggest, TypeExport, TypeImport}
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone, TypeDelete:
		return parseTarget(input, Type(head), args)
	case TypeRename:
		return parseRename(input, args)
	case TypeMood:
		return parseMood(input, args)
	case TypeUndo, TypeFocus:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeRemind:
		return parseRemind(input, args)
	case TypeSuggest:
		return parseSuggest(input, args)
	case TypeExport, TypeImport:
		return parsePath(input, Type(head), args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseTarget(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a quest id", t)}
	}
	return Command{Type: t, Raw: raw, Target: &TargetArgs{Target: strings.ToLower(args[0])}}, nil
}

func parseRename(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a quest id and a title"}
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Target: strings.ToLower(args[0]), Title: strings.Join(args[1:], " ")}}, nil
}

// parseMood reads "<emoji> <label> [note words...] [#tag...]". Hash-prefixed
// words become tags wherever they appear.
func parseMood(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mood requires an emoji and a label"}
	}
	out := &MoodArgs{Emoji: args[0], Mood: args[1], Tags: []string{}}
	note := make([]string, 0, len(args))
	for _, word := range args[2:] {
		if strings.HasPrefix(word, "#") && len(word) > 1 {
			out.Tags = append(out.Tags, strings.TrimPrefix(word, "#"))
			continue
		}
		note = append(note, word)
	}
	out.Note = strings.Join(note, " ")
	return Command{Type: TypeMood, Raw: raw, Mood: out}, nil
}

func parseRemind(raw string, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "remind requires on|off and optional minutes"}
	}
	out := &RemindArgs{}
	switch strings.ToLower(args[0]) {
	case "on":
		out.Enabled = true
	case "off":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("remind expects on or off, got %q", args[0])}
	}
	if len(args) == 2 {
		minutes, err := strconv.Atoi(args[1])
		if err != nil || minutes <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid minutes: %q", args[1])}
		}
		out.Minutes = minutes
	}
	return Command{Type: TypeRemind, Raw: raw, Remind: out}, nil
}

func parseSuggest(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "suggest requires a mood"}
	}
	return Command{Type: TypeSuggest, Raw: raw, Suggest: &SuggestArgs{Mood: args[0]}}, nil
}

func parsePath(raw string, t Type, args []string) (Command, error) {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a file path", t)}
	}
	return Command{Type: t, Raw: raw, Path: &PathArgs{Path: path}}, nil
}
