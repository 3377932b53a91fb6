package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	connect "github.com/cloudblue/connect-migration"
	"github.com/cloudblue/connect-migration/errors"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is an independent runable that is taking input and output
// being stdin and stdout. Given args are the command line arguments, without
// the program name and the command name, that should be parsed using the flag
// package. Log messages are written to os.Stderr.
//
// Commands can be combined using a unix pipe:
//
//   $ connect-migrate migrate -rules rules.yaml < request.json \
//       | connect-migrate is-migration
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"is-migration": cmdIsMigration,
	"migrate":      cmdMigrate,
	"version":      cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s migrates requests using the data embedded in them.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode returns the process status for given command failure. A skipped
// request is not a program failure and it is reported with a distinct status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.ErrSkip.Is(err):
		return 3
	default:
		return 1
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, connect.Version())
	return nil
}
