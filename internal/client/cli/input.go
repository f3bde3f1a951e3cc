package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSecret reads a value without echo when stdin is a terminal, and as a
// plain line otherwise (piped input, tests).
func GetSecret(prompt string, in io.Reader, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if in != os.Stdin || !isTerminal(fd) {
		if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
			return "", err
		}
		return readLine(in)
	}

	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	b, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// readLine reads up to a newline one byte at a time, leaving the rest of in
// for whoever reads next.
func readLine(in io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				return strings.TrimSpace(sb.String()), nil
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return strings.TrimSpace(sb.String()), nil
			}
			return "", err
		}
	}
}
