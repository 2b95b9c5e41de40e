// Package cli is the interactive text front end. It reads menu choices
// and validated answers from an io.Reader, calls the services of the
// current Session and prints results to an io.Writer.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aanand-mishra/people-registry/internal/service"
	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

// personService is the part of an EntityService the menu needs for the
// actions shared by every record type.
type personService[D any] interface {
	GetAll() ([]D, error)
	Find(firstName, lastName, passport string) (D, error)
	Remove(firstName, lastName, passport string) error
}

// Menu drives one interactive session.
type Menu struct {
	session *Session
	prompt  *Prompter
	out     io.Writer
}

// NewMenu returns a menu over session.
func NewMenu(session *Session, in io.Reader, out io.Writer) *Menu {
	return &Menu{session: session, prompt: NewPrompter(in, out), out: out}
}

// Run shows the main menu until the user exits or the input ends.
// Service failures are printed and the loop continues; only input errors
// are returned.
func (m *Menu) Run() error {
	for {
		fmt.Fprintf(m.out, "\n%s\n\n", infoStyle.Render(fmt.Sprintf("Current file: %s | Format: %s", m.session.Path, m.session.Format)))
		fmt.Fprintln(m.out, strings.Join([]string{
			"Select option:",
			"1. Student",
			"2. Football player",
			"3. Lawyer",
			"4. Change settings",
			"5. Exit",
		}, "\n"))

		choice, err := m.prompt.Line("")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = m.studentMenu()
		case "2":
			err = m.footballPlayerMenu()
		case "3":
			err = m.lawyerMenu()
		case "4":
			err = m.ChangeSettings()
		case "5":
			return nil
		default:
			fmt.Fprintln(m.out, msgIncorrect)
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// ChangeSettings asks for a format and a file path and rebinds the
// session. An unknown choice falls back to JSON.
func (m *Menu) ChangeSettings() error {
	fmt.Fprintln(m.out, titleStyle.Render("--- Select Serialization Type ---"))
	for i, f := range storage.Formats {
		fmt.Fprintf(m.out, "%d. %s (%s)\n", i+1, formatLabel(f), f.Extension())
	}

	choice, err := m.prompt.Line("")
	if err != nil {
		return err
	}

	format := storage.FormatJSON
	if n := menuIndex(choice, len(storage.Formats)); n >= 0 {
		format = storage.Formats[n]
	} else {
		fmt.Fprintln(m.out, "Invalid choice. Defaulting to JSON.")
	}

	path, err := m.prompt.Line(fmt.Sprintf("Enter file path (default: %s):", format.DefaultPath()))
	if err != nil {
		return err
	}

	if err := m.session.Configure(format, path); err != nil {
		return err
	}
	writeSuccess(m.out, "Settings applied.")
	return nil
}

func (m *Menu) studentMenu() error {
	svc := m.session.Students
	return m.subMenu("Student Menu", []menuItem{
		{"Add student", m.addStudent},
		{"Show list of students", func() error { return showList[types.StudentDTO](m, "List of Students", svc) }},
		{"Find student", func() error { return findPerson[types.StudentDTO](m, svc, describeStudent(svc)) }},
		{"Remove student", func() error { return removePerson[types.StudentDTO](m, svc) }},
		{"Find fifth-year students who served", m.fifthYearWhoServed},
	})
}

func (m *Menu) footballPlayerMenu() error {
	svc := m.session.FootballPlayers
	return m.subMenu("Football Player Menu", []menuItem{
		{"Add football player", m.addFootballPlayer},
		{"Show list of football players", func() error { return showList[types.FootballPlayerDTO](m, "List of FootballPlayers", svc) }},
		{"Find football player", func() error { return findPerson[types.FootballPlayerDTO](m, svc, svc.Practice) }},
		{"Remove football player", func() error { return removePerson[types.FootballPlayerDTO](m, svc) }},
	})
}

func (m *Menu) lawyerMenu() error {
	svc := m.session.Lawyers
	return m.subMenu("Lawyer Menu", []menuItem{
		{"Add lawyer", m.addLawyer},
		{"Show list of lawyers", func() error { return showList[types.LawyerDTO](m, "List of Lawyers", svc) }},
		{"Find lawyer", func() error { return findPerson[types.LawyerDTO](m, svc, svc.Practice) }},
		{"Remove lawyer", func() error { return removePerson[types.LawyerDTO](m, svc) }},
	})
}

type menuItem struct {
	label  string
	action func() error
}

// subMenu lists items plus a final "Back" entry and runs the chosen
// action until the user goes back.
func (m *Menu) subMenu(title string, items []menuItem) error {
	for {
		fmt.Fprintf(m.out, "\n%s\n", titleStyle.Render("--- "+title+" ---"))
		for i, item := range items {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, item.label)
		}
		fmt.Fprintf(m.out, "%d. Back to Main Menu\n", len(items)+1)

		choice, err := m.prompt.Line("")
		if err != nil {
			return err
		}

		if choice == fmt.Sprint(len(items)+1) {
			return nil
		}

		n := menuIndex(choice, len(items))
		if n < 0 {
			fmt.Fprintln(m.out, msgIncorrect)
			continue
		}

		if err := m.do(items[n].action); err != nil {
			return err
		}
	}
}

// do runs action and prints service failures. Anything else, such as the
// end of input, is returned.
func (m *Menu) do(action func() error) error {
	err := action()
	if err == nil {
		return nil
	}

	var serr *service.Error
	if errors.As(err, &serr) {
		writeError(m.out, err)
		return nil
	}
	return err
}

func (m *Menu) addStudent() error {
	var (
		dto types.StudentDTO
		err error
	)
	if dto.FirstName, err = m.prompt.Name("first name"); err != nil {
		return err
	}
	if dto.LastName, err = m.prompt.Name("last name"); err != nil {
		return err
	}
	if dto.Passport, err = m.prompt.Passport(); err != nil {
		return err
	}
	if dto.StudentID, err = m.prompt.StudentID(); err != nil {
		return err
	}
	if dto.Course, err = m.prompt.Course(); err != nil {
		return err
	}
	if dto.MilitaryID, err = m.prompt.MilitaryID(); err != nil {
		return err
	}

	if err := m.session.Students.Add(dto); err != nil {
		return err
	}
	writeSuccess(m.out, "Student added successfully.")
	return nil
}

func (m *Menu) addFootballPlayer() error {
	var (
		dto types.FootballPlayerDTO
		err error
	)
	if dto.FirstName, err = m.prompt.Name("first name"); err != nil {
		return err
	}
	if dto.LastName, err = m.prompt.Name("last name"); err != nil {
		return err
	}
	if dto.Passport, err = m.prompt.Passport(); err != nil {
		return err
	}
	if dto.Team, err = m.prompt.Word("Enter the team name"); err != nil {
		return err
	}

	if err := m.session.FootballPlayers.Add(dto); err != nil {
		return err
	}
	writeSuccess(m.out, "Football player added successfully.")
	return nil
}

func (m *Menu) addLawyer() error {
	var (
		dto types.LawyerDTO
		err error
	)
	if dto.FirstName, err = m.prompt.Name("first name"); err != nil {
		return err
	}
	if dto.LastName, err = m.prompt.Name("last name"); err != nil {
		return err
	}
	if dto.Passport, err = m.prompt.Passport(); err != nil {
		return err
	}
	if dto.Company, err = m.prompt.Word("Enter the company name"); err != nil {
		return err
	}

	if err := m.session.Lawyers.Add(dto); err != nil {
		return err
	}
	writeSuccess(m.out, "Lawyer added successfully.")
	return nil
}

func (m *Menu) fifthYearWhoServed() error {
	students, err := m.session.Students.FindFifthYearRecordsWhoServed()
	if err != nil {
		return err
	}
	writeList(m.out, fmt.Sprintf("Fifth-Year Students Who Served (Total: %d)", len(students)), students)
	return nil
}

func showList[D any](m *Menu, title string, svc personService[D]) error {
	return listAll(m.out, title, svc)
}

func listAll[D any](w io.Writer, title string, svc personService[D]) error {
	list, err := svc.GetAll()
	if err != nil {
		return err
	}
	writeList(w, title, list)
	return nil
}

func findPerson[D any](m *Menu, svc personService[D], describe func(D) string) error {
	key, err := m.prompt.Key()
	if err != nil {
		return err
	}

	person, err := svc.Find(key.FirstName, key.LastName, key.Passport)
	if err != nil {
		return err
	}
	writeList(m.out, "Found", []D{person})
	fmt.Fprintln(m.out, describe(person))
	return nil
}

func removePerson[D any](m *Menu, svc personService[D]) error {
	key, err := m.prompt.Key()
	if err != nil {
		return err
	}

	if err := svc.Remove(key.FirstName, key.LastName, key.Passport); err != nil {
		return err
	}
	writeSuccess(m.out, "Person removed successfully.")
	return nil
}

// describeStudent shows what a found student is up to.
func describeStudent(svc *service.StudentService) func(types.StudentDTO) string {
	return func(dto types.StudentDTO) string {
		return svc.Study(dto) + "\n" + svc.RecitePoems(dto)
	}
}

// menuIndex converts a 1-based choice to an index below n, or -1.
func menuIndex(choice string, n int) int {
	for i := range n {
		if choice == fmt.Sprint(i+1) {
			return i
		}
	}
	return -1
}

func formatLabel(f storage.Format) string {
	switch f {
	case storage.FormatXML, storage.FormatJSON:
		return strings.ToUpper(string(f))
	case storage.FormatText:
		return "Custom"
	case storage.FormatSQLite:
		return "SQLite"
	default:
		return "Binary"
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
