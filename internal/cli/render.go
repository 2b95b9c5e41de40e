package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aanand-mishra/people-registry/internal/service"
	"github.com/aanand-mishra/people-registry/internal/types"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// formatDTO renders one record as a small block of lines.
func formatDTO(dto any) string {
	var sb strings.Builder

	switch d := dto.(type) {
	case types.StudentDTO:
		fmt.Fprintf(&sb, "Student: %s %s\n", d.FirstName, d.LastName)
		fmt.Fprintf(&sb, "  Passport: %s\n", d.Passport)
		fmt.Fprintf(&sb, "  Student ID: %s\n", d.StudentID)
		fmt.Fprintf(&sb, "  Course: %d\n", d.Course)
		fmt.Fprintf(&sb, "  Military ID: %s\n", d.MilitaryID)
	case types.FootballPlayerDTO:
		fmt.Fprintf(&sb, "FootballPlayer: %s %s\n", d.FirstName, d.LastName)
		fmt.Fprintf(&sb, "  Passport: %s\n", d.Passport)
		fmt.Fprintf(&sb, "  Team: %s\n", d.Team)
	case types.LawyerDTO:
		fmt.Fprintf(&sb, "Lawyer: %s %s\n", d.FirstName, d.LastName)
		fmt.Fprintf(&sb, "  Passport: %s\n", d.Passport)
		fmt.Fprintf(&sb, "  Company: %s\n", d.Company)
	}

	return sb.String()
}

// writeList prints a titled list of DTOs, or a notice when it is empty.
func writeList[D any](w io.Writer, title string, list []D) {
	fmt.Fprintf(w, "\n%s\n\n", titleStyle.Render("--- "+title+" ---"))
	if len(list) == 0 {
		fmt.Fprintln(w, infoStyle.Render("List is empty."))
		return
	}
	for _, item := range list {
		fmt.Fprintln(w, formatDTO(item))
	}
}

// writeError prints err the way the menu reports failures. Service errors
// show their message and, when present, the underlying cause.
func writeError(w io.Writer, err error) {
	var serr *service.Error
	if errors.As(err, &serr) {
		fmt.Fprintf(w, "\n%s %s\n", errorStyle.Render("BUSINESS LOGIC ERROR:"), serr.Message)
		if serr.Err != nil {
			fmt.Fprintf(w, "\nDETAILS: %s\n", serr.Err.Error())
		}
		return
	}
	fmt.Fprintf(w, "\n%s %s\n", errorStyle.Render("AN UNEXPECTED ERROR OCCURRED:"), err.Error())
}

func writeSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s\n", successStyle.Render(msg))
}
