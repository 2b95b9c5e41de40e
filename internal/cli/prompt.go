package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/people-registry/internal/types"
)

// Input rules, registered as validator tags.
var inputPatterns = map[string]*regexp.Regexp{
	"personname": regexp.MustCompile(`^[A-Z][a-z]+$`),
	"passport":   regexp.MustCompile(`^\d{9}$`),
	"studentid":  regexp.MustCompile(`^[A-Z]{2}-\d{5}$`),
	"course":     regexp.MustCompile(`^[1-5]$`),
	"militaryid": regexp.MustCompile(`^\d{6}$`),
	"word":       regexp.MustCompile(`^[A-Za-z0-9-]+$`),
}

const msgIncorrect = "\nValue is incorrect, please try again"

// Prompter reads answers line by line and re-asks until an answer passes
// its validation tag. It returns io.EOF when the input runs out.
type Prompter struct {
	scanner  *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

// NewPrompter returns a Prompter reading from in and printing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	v := validator.New()
	for tag, re := range inputPatterns {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(err)
		}
	}

	return &Prompter{scanner: bufio.NewScanner(in), out: out, validate: v}
}

// Line prints prompt (if any) and returns the next trimmed line.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
	return p.next()
}

func (p *Prompter) next() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Ask prints prompt and reads lines until one satisfies tag.
func (p *Prompter) Ask(prompt, tag string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	for {
		answer, err := p.next()
		if err != nil {
			return "", err
		}
		if p.validate.Var(answer, tag) == nil {
			return answer, nil
		}
		fmt.Fprintln(p.out, msgIncorrect)
	}
}

// Name asks for a capitalised name, e.g. "first name".
func (p *Prompter) Name(what string) (string, error) {
	return p.Ask("Enter the "+what, "personname")
}

// Passport asks for a nine-digit passport number.
func (p *Prompter) Passport() (string, error) {
	return p.Ask("Enter the passport number (9 digits)", "passport")
}

// StudentID asks for an ID shaped like AB-12345.
func (p *Prompter) StudentID() (string, error) {
	return p.Ask("Enter the student ID (AB-12345)", "studentid")
}

// Course asks for a course between 1 and 5.
func (p *Prompter) Course() (int, error) {
	answer, err := p.Ask("Enter the student course (1-5)", "course")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}

// MilitaryID asks whether the student served and, if so, for the six-digit
// ID. A "no" answer yields types.MilitaryNotServed.
func (p *Prompter) MilitaryID() (string, error) {
	for {
		answer, err := p.Line("Does student have a military ID? (y/n)")
		if err != nil {
			return "", err
		}

		switch strings.ToLower(answer) {
		case "y":
			return p.Ask("Enter the military ID (6 digits)", "militaryid")
		case "n":
			return types.MilitaryNotServed, nil
		default:
			fmt.Fprintln(p.out, "Input is incorrect, please try again")
		}
	}
}

// Word asks for a single token of letters, digits and dashes.
func (p *Prompter) Word(prompt string) (string, error) {
	return p.Ask(prompt, "word")
}

// Key asks for the three fields identifying a person.
func (p *Prompter) Key() (types.Key, error) {
	var (
		k   types.Key
		err error
	)
	if k.FirstName, err = p.Name("first name"); err != nil {
		return k, err
	}
	if k.LastName, err = p.Name("last name"); err != nil {
		return k, err
	}
	if k.Passport, err = p.Passport(); err != nil {
		return k, err
	}
	return k, nil
}
