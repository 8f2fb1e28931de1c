// Command fortress transforms and validates JSON input against a request
// schema, and exports the schema's client-side validation rules.
//
//	fortress transform --schema user.yaml --data request.json
//	fortress validate --schema user.yaml --data request.json --transform --locale fr
//	fortress rules --schema user.yaml
//
// Environment defaults are read from FORTRESS_LOCALE, FORTRESS_LOCALE_DIR,
// FORTRESS_ON_UNEXPECTED, LOG_LEVEL and LOG_FORMAT, optionally through a
// .env file. validate exits with status 1 when the input is invalid and 2
// on any other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalidInput):
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
}
