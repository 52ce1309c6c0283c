// Command normalize reads OCLC numbers from its arguments, or one batch per
// line from stdin, and prints them normalized.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"worldcat/internal/oclc"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	if len(args) > 0 {
		return printBatch(out, strings.Join(args, ","))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		if err := printBatch(out, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printBatch(out io.Writer, line string) error {
	numbers, err := oclc.VerifyNumbers(line)
	if err != nil {
		return fmt.Errorf("%q: %w", line, err)
	}
	_, err = fmt.Fprintln(out, oclc.Join(numbers))
	return err
}
