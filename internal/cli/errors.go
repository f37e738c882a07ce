package cli

import "fmt"

// ErrorKind identifies why argument parsing failed
type ErrorKind int

const (
	MissingArgument ErrorKind = iota
	Unknown
	MissingValue
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case MissingArgument:
		return "missing argument"
	case Unknown:
		return "unknown argument"
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	default:
		return "unknown error"
	}
}

// ParseError is returned by Parse. Flag holds the offending argument as it
// was given on the command line; Value is only set for InvalidValue.
type ParseError struct {
	Kind  ErrorKind
	Flag  string
	Value string
}

func (e ParseError) Error() string {
	switch e.Kind {
	case MissingArgument:
		return "At least one of `--title` or `--url` arguments is required"
	case Unknown:
		return fmt.Sprintf("Argument `%s` unknown", e.Flag)
	case MissingValue:
		return fmt.Sprintf("Argument `%s` requires a value", e.Flag)
	case InvalidValue:
		return fmt.Sprintf("Argument `%s` has invalid value %s", e.Flag, e.Value)
	default:
		return e.Kind.String()
	}
}
