package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	CheckIn(ctx context.Context, args []string) error
	Sync(ctx context.Context) error
	Pending(ctx context.Context) error
	Failed(ctx context.Context) error
	Dismiss(ctx context.Context, args []string) error
	Progress(ctx context.Context, args []string) error
	Passport(ctx context.Context) error
	Photo(ctx context.Context, args []string) error
	Purge(ctx context.Context) error
	Status(ctx context.Context) error
}

const helpText = "Available commands: checkin, sync, pending, failed, dismiss, progress, passport, photo, purge, status, exit"

// runREPL starts a simple read–eval–print loop for the passport CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, when ctx is done or when
// the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("passport %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "checkin", "c":
			_ = a.CheckIn(ctx, args)

		case "sync":
			_ = a.Sync(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "failed":
			_ = a.Failed(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx, args)

		case "progress":
			_ = a.Progress(ctx, args)

		case "passport":
			_ = a.Passport(ctx)

		case "photo":
			_ = a.Photo(ctx, args)

		case "purge":
			_ = a.Purge(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
