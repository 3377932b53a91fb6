/*
Package errors implements the error taxonomy used by the migration middleware.

Reuse the root errors declared in this package whenever possible. Each error
created at runtime should wrap one of them, so that callers can categorize a
failure using the Is method of the root error:

	if errors.ErrSkip.Is(err) {
		// abandon the request
	}

If you must declare a custom root error, use Register(code, description) to
ensure the code is unique.

There is also support for stacktraces. Create errors using ErrXyz.New("...")
or errors.Wrap(err, "...") at the point of failure to attach a stacktrace. If
you wrap multiple times, only the first wrap records the stacktrace.

Once you have an error, you can use fmt.Printf/Sprintf to get more context
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
