package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

var (
	// ErrEmptyLine is returned for blank lines and comment-only lines.
	ErrEmptyLine = errors.New("empty line")
	// ErrUnknownVerb is returned when the first word is not a known command.
	ErrUnknownVerb = errors.New("unknown command")
	// ErrArity is returned when a command has too few or too many arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrUnterminatedQuote is returned when a quoted value is not closed.
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

// Command is one parsed line of the command language
type Command struct {
	Verb string
	Args []string
	Line int    // 1-based line in a script, 0 for interactive input
	Raw  string // The line as typed
}

// String returns the command as it was typed
func (c Command) String() string {
	return c.Raw
}

// verbSpec describes the arguments a verb accepts. max < 0 means unbounded.
type verbSpec struct {
	min, max int
	usage    string
}

var verbs = map[string]verbSpec{
	"new":        {1, -1, "new NAME [VALUE...]"},
	"fill":       {3, 3, "fill NAME COUNT VALUE"},
	"copy":       {2, 2, "copy DST SRC"},
	"assign":     {2, 2, "assign DST SRC"},
	"drop":       {1, 1, "drop NAME"},
	"load":       {2, 2, "load NAME FILE"},
	"push_front": {2, -1, "push_front NAME VALUE..."},
	"push_back":  {2, -1, "push_back NAME VALUE..."},
	"pop_front":  {1, 1, "pop_front NAME"},
	"pop_back":   {1, 1, "pop_back NAME"},
	"front":      {1, 1, "front NAME"},
	"back":       {1, 1, "back NAME"},
	"insert":     {3, -1, "insert NAME INDEX VALUE..."},
	"insert_n":   {4, 4, "insert_n NAME INDEX COUNT VALUE"},
	"erase":      {2, 3, "erase NAME INDEX [END]"},
	"clear":      {1, 1, "clear NAME"},
	"resize":     {2, 3, "resize NAME SIZE [VALUE]"},
	"splice":     {3, 5, "splice DST INDEX SRC [FROM [TO]]"},
	"remove":     {2, 2, "remove NAME VALUE"},
	"remove_if":  {3, 3, "remove_if NAME OP VALUE"},
	"unique":     {1, 1, "unique NAME"},
	"merge":      {2, 2, "merge DST SRC"},
	"reverse":    {1, 1, "reverse NAME"},
	"sort":       {1, 2, "sort NAME [desc]"},
	"swap":       {2, 2, "swap A B"},
	"size":       {1, 1, "size NAME"},
	"empty":      {1, 1, "empty NAME"},
	"max_size":   {1, 1, "max_size NAME"},
	"cmp":        {2, 2, "cmp A B"},
	"cursor":     {3, 3, "cursor CURSOR NAME INDEX"},
	"step":       {2, 2, "step CURSOR N"},
	"put":        {2, 2, "put CURSOR VALUE"},
	"get":        {1, 1, "get CURSOR"},
	"show":       {0, 1, "show [NAME]"},
}

// Verbs returns every known verb in alphabetical order
func Verbs() []string {
	names := make([]string, 0, len(verbs))
	for name := range verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the usage line of a verb, or "" when the verb is unknown
func Usage(verb string) string {
	return verbs[strings.ToLower(verb)].usage
}

// ParseLine parses a single line of input
func ParseLine(line string) (Command, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(tokens) == 0 {
		return Command{}, ErrEmptyLine
	}

	verb := strings.ToLower(tokens[0])
	spec, ok := verbs[verb]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownVerb, tokens[0])
	}

	args := tokens[1:]
	if len(args) < spec.min || (spec.max >= 0 && len(args) > spec.max) {
		return Command{}, fmt.Errorf("%w: usage: %s", ErrArity, spec.usage)
	}

	return Command{
		Verb: verb,
		Args: args,
		Raw:  strings.TrimSpace(line),
	}, nil
}

// ParseScript parses every line read from r. Blank and comment lines are
// skipped; the first malformed line aborts parsing.
func ParseScript(r io.Reader) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		cmd, err := ParseLine(scanner.Text())
		if errors.Is(err, ErrEmptyLine) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cmd.Line = lineNo
		commands = append(commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return commands, nil
}

// tokenize splits a line on whitespace. Double quotes group words into one
// token, a backslash escapes the next character inside quotes, and an
// unquoted # starts a comment.
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inToken bool
		quoted  bool
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
			inToken = true
		case quoted:
			current.WriteRune(r)
		case r == '#' && !inToken:
			return tokens, nil
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quoted {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
