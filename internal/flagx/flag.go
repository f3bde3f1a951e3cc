// Package flagx layers command-line flags over other configuration sources.
// Config loaders share one argument slice; each picks out the flags it owns.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// flagName returns the flag name of arg with leading dashes stripped and any
// "=value" part removed. ok is false for arguments that are not flags.
func flagName(arg string) (name string, inline bool, ok bool) {
	if len(arg) < 2 || arg[0] != '-' || isNumber(arg) {
		return "", false, false
	}
	name = strings.TrimLeft(arg, "-")
	if name == "" {
		return "", false, false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true, true
	}
	return name, false, true
}

func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// FilterArgs keeps the flags listed in allowed, with their values, in their
// original order. "-name", "--name", "-name=v" and "--name=v" are the same
// flag, as with the flag package. A separate value is taken from the next
// argument unless that argument is itself a flag; negative numbers count as
// values.
func FilterArgs(args []string, allowed []string) []string {
	names := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		names[strings.TrimLeft(f, "-")] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, inline, ok := flagName(args[i])
		if !ok {
			continue
		}
		if _, keep := names[name]; !keep {
			continue
		}
		out = append(out, args[i])
		if inline || i+1 >= len(args) {
			continue
		}
		if _, _, next := flagName(args[i+1]); !next {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// JsonConfigFlags returns the config file named by -c or -config, or "" when
// neither is given.
func JsonConfigFlags(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
