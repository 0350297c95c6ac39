// Package flagx lets several independent flag sets share os.Args: each
// loader keeps only the flags it owns and parses them with ContinueOnError.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the named flags,
// keeping their values. Names are given without dashes; both "-name" and
// "--name" spellings are recognised.
//
// Supported forms:
//
//	-a http://api:3001     (value as the next argument)
//	--a=http://api:3001    (value joined with '=')
//
// The result is never nil.
func FilterArgs(args []string, names ...string) []string {
	owned := make(map[string]struct{}, len(names))
	for _, n := range names {
		owned[n] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, joined, ok := flagName(arg)
		if !ok {
			continue
		}
		if _, mine := owned[name]; !mine {
			continue
		}

		filtered = append(filtered, arg)
		if joined {
			continue
		}
		// A following token that does not start with '-' is the value.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// flagName strips leading dashes and an optional "=value" suffix.
func flagName(arg string) (name string, joined bool, ok bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false, false
	}
	name = strings.TrimLeft(arg, "-")
	if name == "" {
		return "", false, false
	}
	if before, _, found := strings.Cut(name, "="); found {
		return before, true, true
	}
	return name, false, true
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// Every other argument is ignored. Empty when neither flag is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
