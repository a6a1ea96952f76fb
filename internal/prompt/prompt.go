// Package prompt asks a fixed sequence of questions on a line-oriented
// terminal. Whether a question is asked, its message and its default are
// plain functions of the answers collected so far, so a question list can be
// exercised in tests with a strings.Reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled reports that the user aborted the prompt sequence, either by
// closing input or by declining a question whose After hook refuses to go on.
var ErrCancelled = errors.New("operation cancelled")

// Kind selects how a question is rendered and parsed.
type Kind int

const (
	// Text asks for a free-form line.
	Text Kind = iota
	// Toggle asks a yes/no question.
	Toggle
)

// Question is one step of a prompt sequence. Every function field receives
// the answers collected before this question.
type Question struct {
	Name    string
	Kind    Kind
	Message func(Answers) string
	// Initial is the default answer: a string for Text, "yes"/"no" for Toggle.
	Initial func(Answers) string
	// Skip leaves the question out when it returns true.
	Skip func(Answers) bool
	// Validate rejects a text answer; the question is asked again.
	Validate func(string) error
	// After runs once the answer is recorded and may abort the sequence.
	After func(Answers) error
}

// Answers holds the values given so far, keyed by question name.
type Answers struct {
	values map[string]any
}

// NewAnswers returns answers pre-filled with values.
func NewAnswers(values map[string]any) Answers {
	a := Answers{values: make(map[string]any, len(values))}
	for k, v := range values {
		a.values[k] = v
	}
	return a
}

// Has reports whether name was answered.
func (a Answers) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// String returns a text answer, or "" when absent.
func (a Answers) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Bool returns a toggle answer, or false when absent.
func (a Answers) Bool(name string) bool {
	b, _ := a.values[name].(bool)
	return b
}

func (a *Answers) set(name string, v any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	a.values[name] = v
}

// Prompter reads answers from r and writes questions to w.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New returns a Prompter over r and w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Ask runs questions in order and returns the collected answers.
func (p *Prompter) Ask(questions []Question) (Answers, error) {
	answers := NewAnswers(nil)

	for _, q := range questions {
		if q.Skip != nil && q.Skip(answers) {
			continue
		}

		var (
			value any
			err   error
		)
		switch q.Kind {
		case Toggle:
			value, err = p.askToggle(q, answers)
		default:
			value, err = p.askText(q, answers)
		}
		if err != nil {
			return answers, err
		}
		answers.set(q.Name, value)

		if q.After != nil {
			if err := q.After(answers); err != nil {
				return answers, err
			}
		}
	}
	return answers, nil
}

func (p *Prompter) askText(q Question, a Answers) (string, error) {
	initial := callInitial(q, a)
	for {
		if initial != "" {
			fmt.Fprintf(p.w, "? %s (%s) ", callMessage(q, a), initial)
		} else {
			fmt.Fprintf(p.w, "? %s ", callMessage(q, a))
		}

		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			line = initial
		}

		if q.Validate != nil {
			if verr := q.Validate(line); verr != nil {
				fmt.Fprintf(p.w, "  %v\n", verr)
				continue
			}
		}
		return line, nil
	}
}

func (p *Prompter) askToggle(q Question, a Answers) (bool, error) {
	initial := parseYesNo(callInitial(q, a))
	hint := "y/N"
	if initial != nil && *initial {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(p.w, "? %s (%s) ", callMessage(q, a), hint)

		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		if line == "" {
			return initial != nil && *initial, nil
		}
		if v := parseYesNo(line); v != nil {
			return *v, nil
		}
		fmt.Fprintf(p.w, "  Please answer yes or no.\n")
	}
}

// readLine returns the next trimmed input line. Closed input cancels the
// sequence, except for a final line without a newline.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func callMessage(q Question, a Answers) string {
	if q.Message == nil {
		return q.Name
	}
	return q.Message(a)
}

func callInitial(q Question, a Answers) string {
	if q.Initial == nil {
		return ""
	}
	return q.Initial(a)
}

func parseYesNo(s string) *bool {
	var v bool
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		v = true
	case "n", "no", "false":
		v = false
	default:
		return nil
	}
	return &v
}
