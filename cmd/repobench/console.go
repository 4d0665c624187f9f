package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// console is the line-oriented prompt used when the record count isn't configured.
type console struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out}
}

func (u *console) readLine() (string, error) {
	line, err := u.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (u *console) waitStart() error {
	fmt.Fprintln(u.out, "Starting... press Enter to continue")
	if _, err := u.readLine(); err != nil {
		return fmt.Errorf("wait for start: %w", err)
	}
	fmt.Fprintln(u.out, "Executing .. ")
	return nil
}

func (u *console) readRecords() (int64, error) {
	fmt.Fprintln(u.out, "Number Of records per operations:")
	line, err := u.readLine()
	if err != nil {
		return 0, fmt.Errorf("read number of records: %w", err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse number of records: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("number of records must be non-negative, got %d", n)
	}
	return n, nil
}

// clearScreen only emits the escape sequence on a terminal.
func (u *console) clearScreen() {
	if f, ok := u.out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprint(f, "\033[H\033[2J")
	}
}

// waitLine blocks until a line or the end of input.
func (u *console) waitLine() error {
	if _, err := u.in.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
