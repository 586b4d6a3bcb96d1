// Package console implements the styled terminal IO used by the CLI
// commands: headings, text blocks, result banners and validated questions.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"newsroom/models"
)

// ErrAborted is returned by Ask when input ends before a valid answer.
var ErrAborted = errors.New("aborted: no more input")

type IO struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

func New(in io.Reader, out, errOut io.Writer, verbose bool) *IO {
	return &IO{
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		verbose: verbose,
	}
}

func (c *IO) IsVerbose() bool {
	return c.verbose
}

func (c *IO) Title(title string) {
	fmt.Fprintf(c.out, "\n%s\n%s\n\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
}

func (c *IO) Text(lines ...string) {
	for _, line := range lines {
		fmt.Fprintf(c.out, " %s\n", line)
	}
}

func (c *IO) Success(message string) {
	fmt.Fprintf(c.out, "\n [OK] %s\n\n", message)
}

func (c *IO) Comment(message string) {
	fmt.Fprintf(c.out, " // %s\n", message)
}

func (c *IO) Error(message string) {
	fmt.Fprintf(c.errOut, "\n [ERROR] %s\n\n", message)
}

// Ask prints question and reads one line at a time until validate accepts
// it. Validation errors are shown and the question is repeated; any other
// error from validate is returned as is.
func (c *IO) Ask(question string, validate func(string) (string, error)) (string, error) {
	for {
		fmt.Fprintf(c.out, " %s:\n > ", question)

		line, readErr := c.in.ReadString('\n')
		if readErr != nil && (!errors.Is(readErr, io.EOF) || line == "") {
			fmt.Fprintln(c.out)
			if errors.Is(readErr, io.EOF) {
				return "", ErrAborted
			}
			return "", fmt.Errorf("read answer: %w", readErr)
		}

		answer := strings.TrimSpace(line)
		if validate == nil {
			return answer, nil
		}

		value, err := validate(answer)
		if err == nil {
			return value, nil
		}
		if !models.IsValidationError(err) {
			return "", err
		}
		c.Error(err.Error())
	}
}
