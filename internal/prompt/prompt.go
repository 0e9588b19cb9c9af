// Package prompt expresses user consent as a passed-in decision function, so
// the engine never blocks on a terminal it cannot see in tests or CI.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ConsentFunc answers a yes/no question. Implementations must not mutate the
// filesystem; declining is a valid answer, not an error.
type ConsentFunc func(question string) (bool, error)

// Always returns a ConsentFunc with a fixed answer. Used for --yes and for
// tests.
func Always(answer bool) ConsentFunc {
	return func(string) (bool, error) {
		return answer, nil
	}
}

// Terminal returns a ConsentFunc that asks on out and reads y/n from in.
// When in is not a terminal (piped stdin, CI), it declines without asking so
// a non-interactive run can never hang.
func Terminal(in *os.File, out io.Writer) ConsentFunc {
	return func(question string) (bool, error) {
		if !term.IsTerminal(int(in.Fd())) {
			fmt.Fprintln(out, "Non-interactive session: skipping integration (pass --yes to integrate).")
			return false, nil
		}

		reader := bufio.NewReader(in)
		for {
			fmt.Fprintf(out, "%s [y/N]: ", question)
			answer, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return false, nil
				}
				return false, fmt.Errorf("failed to read answer: %w", err)
			}

			switch strings.ToLower(strings.TrimSpace(answer)) {
			case "y", "yes":
				return true, nil
			case "", "n", "no":
				return false, nil
			}
			fmt.Fprintln(out, "Please answer y or n.")
		}
	}
}
