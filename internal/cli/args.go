package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sukalov/lyrical/internal/logger"
)

const flagPrefix = "--"

// DefaultMaxResults is used for --list when no count is given
const DefaultMaxResults uint = 20

// Args holds the validated command line options
type Args struct {
	Title      string
	Artist     string
	URL        *string
	List       bool
	MaxResults *uint
	Help       bool
}

// ListLimit returns MaxResults, or DefaultMaxResults when --list had no count
func (a *Args) ListLimit() uint {
	if a.MaxResults == nil {
		return DefaultMaxResults
	}
	return *a.MaxResults
}

// Parse validates raw process arguments. The first element is the program
// name and is skipped. When no arguments remain the usage text is written
// to usage before MissingArgument is returned.
func Parse(rawArgs []string, usage io.Writer) (*Args, error) {
	sanitized := sanitize(rawArgs)
	if len(sanitized) == 0 {
		Usage(usage)
		return nil, ParseError{Kind: MissingArgument}
	}

	groups := groupArgs(sanitized)
	logger.Debug(fmt.Sprintf("cli: %d argument groups from %d arguments", len(groups), len(sanitized)))

	args := &Args{}
	for _, group := range groups {
		if err := args.applyGroup(group); err != nil {
			return nil, err
		}
	}

	if args.Title == "" && (args.URL == nil || *args.URL == "") && !args.Help {
		return nil, ParseError{Kind: MissingArgument}
	}

	return args, nil
}

func sanitize(rawArgs []string) []string {
	if len(rawArgs) < 2 {
		return nil
	}

	sanitized := make([]string, 0, len(rawArgs)-1)
	for _, arg := range rawArgs[1:] {
		arg = strings.TrimSpace(arg)
		if arg != "" {
			sanitized = append(sanitized, arg)
		}
	}
	return sanitized
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, flagPrefix)
}

// groupArgs splits args so that a flag and the single value right after it
// share a group. Every other adjacent pair starts a new group.
func groupArgs(args []string) [][]string {
	var groups [][]string

	start := 0
	for end := 1; end <= len(args); end++ {
		if end < len(args) && isFlag(args[end-1]) && !isFlag(args[end]) {
			continue
		}
		groups = append(groups, args[start:end])
		start = end
	}

	return groups
}

func (a *Args) applyGroup(group []string) error {
	switch len(group) {
	case 1:
		return a.applyFlag(group[0])
	case 2:
		return a.applyPair(group[0], group[1])
	default:
		return ParseError{Kind: MissingArgument}
	}
}

func (a *Args) applyFlag(flag string) error {
	name := strings.TrimPrefix(flag, flagPrefix)

	switch name {
	case "list":
		a.List = true
	case "help":
		a.Help = true
	case "title", "artist", "url":
		return ParseError{Kind: MissingValue, Flag: flag}
	default:
		return ParseError{Kind: Unknown, Flag: flag}
	}

	return nil
}

func (a *Args) applyPair(flag, value string) error {
	name := strings.TrimPrefix(flag, flagPrefix)

	if value == "" {
		return ParseError{Kind: MissingValue, Flag: flag}
	}

	switch name {
	case "title":
		a.Title = value
	case "artist":
		a.Artist = value
	case "url":
		a.URL = &value
	case "list":
		a.List = true
		maxResults, err := strconv.ParseUint(value, 10, strconv.IntSize)
		if err != nil {
			return ParseError{Kind: InvalidValue, Flag: flag, Value: value}
		}
		limit := uint(maxResults)
		a.MaxResults = &limit
	default:
		return ParseError{Kind: Unknown, Flag: flag}
	}

	return nil
}
