package config

import (
	"errors"
	"fmt"
)

const (
	// IgnoreCaseFlag turns on case-insensitive search when it appears before the query.
	IgnoreCaseFlag = "--ignore-case"
	// IgnoreCaseEnv turns on case-insensitive search when set to any value.
	IgnoreCaseEnv = "IGNORE_CASE"
)

var (
	ErrMissingFilePath = errors.New("didn't get a file path")
	ErrMissingQuery    = errors.New("didn't get a query string")
)

// ArgErrorKind identifies which argument was missing.
type ArgErrorKind int

const (
	MissingFilePath ArgErrorKind = iota + 1
	MissingQuery
)

func (k ArgErrorKind) String() string {
	switch k {
	case MissingFilePath:
		return "MissingFilePath"
	case MissingQuery:
		return "MissingQuery"
	default:
		return fmt.Sprintf("ArgErrorKind(%d)", int(k))
	}
}

// ArgError is returned by Build when the arguments cannot form a Config.
type ArgError struct {
	Kind ArgErrorKind
	Err  error
}

func (e *ArgError) Error() string { return e.Err.Error() }

func (e *ArgError) Unwrap() error { return e.Err }

// Config holds the settings for one search
type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// Build resolves a Config from command line arguments.
//
// args[0] is the program name and is skipped. Arguments are taken from the
// end: the last one is the file path and the one before it is the query.
// Anything earlier is only checked for IgnoreCaseFlag; other tokens are
// ignored. envIgnoreCase and the flag are OR'd together.
func Build(args []string, envIgnoreCase bool) (*Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	n := len(args)
	if n < 1 {
		return nil, &ArgError{Kind: MissingFilePath, Err: ErrMissingFilePath}
	}
	filePath := args[n-1]

	if n < 2 {
		return nil, &ArgError{Kind: MissingQuery, Err: ErrMissingQuery}
	}
	query := args[n-2]

	ignoreCase := envIgnoreCase
	for _, arg := range args[:n-2] {
		if arg == IgnoreCaseFlag {
			ignoreCase = true
		}
	}

	return &Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}

// IgnoreCaseFromEnv reports whether IGNORE_CASE is set. The value itself,
// even an empty one, does not matter.
func IgnoreCaseFromEnv(lookup func(string) (string, bool)) bool {
	_, ok := lookup(IgnoreCaseEnv)
	return ok
}
