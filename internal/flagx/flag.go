// Package flagx lets each configuration layer pull its own flags out of the
// process arguments so several flag sets can coexist on one command line.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// Pick returns the arguments of args that belong to the named flags, in
// their original order. A name matches both its -name and --name spellings.
// Values are kept whether they are attached with '=' or passed as the next
// argument; a following token that starts with '-' is never taken as a value.
// Everything after a bare "--" is ignored.
//
//	Pick([]string{"-a", ":8080", "-c", "x.yaml"}, "c") // ["-c", "x.yaml"]
func Pick(args []string, names ...string) []string {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, hasValue := flagName(arg)
		if name == "" || !want[name] {
			continue
		}

		out = append(out, arg)
		if hasValue {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// flagName strips the dashes of a flag argument and reports whether the
// value is attached. Non-flag arguments yield an empty name.
func flagName(arg string) (string, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true
	}
	return name, false
}

// ConfigFile returns the path given with -c or -config (either dash form),
// or "" when absent. The last occurrence wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to a JSON or YAML config file")
	fs.StringVar(&path, "c", "", "shorthand for -config")
	_ = fs.Parse(Pick(args, "c", "config"))

	return path
}

// ConfigFileFlag is ConfigFile over the process arguments.
func ConfigFileFlag() string {
	return ConfigFile(os.Args[1:])
}
