package session

import (
	"bufio"
	"fmt"
	"io"
)

// Console is the line-based terminal the session talks through. ReadLine
// returns an error when input ends.
type Console interface {
	ReadLine() (string, error)
	Print(s string)
}

type StdConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewStdConsole(in io.Reader, out io.Writer) *StdConsole {
	return &StdConsole{in: bufio.NewScanner(in), out: out}
}

func (c *StdConsole) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *StdConsole) Print(s string) {
	_, _ = fmt.Fprint(c.out, s)
}
