package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	s := a.userID
	mode := "offline"
	if a.isOnline() {
		mode = "online"
	}
	if s != "" {
		s += " "
	}
	return fmt.Sprintf("(%s%s)", s, mode)
}

// Root runs the REPL over the app's input until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the passport CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}
