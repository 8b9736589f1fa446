package main

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// StdinInput is the input name that reads from standard input.
const StdinInput = "-"

// ExpandInputs resolves glob patterns to files. Plain paths are kept as given
// so a missing file is reported when it is opened. Duplicates are dropped.
func ExpandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{StdinInput}, nil
	}

	var inputs []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			inputs = append(inputs, path)
		}
	}

	for _, arg := range args {
		if arg == StdinInput || !strings.ContainsAny(arg, "*?[{") {
			add(arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return inputs, nil
}
