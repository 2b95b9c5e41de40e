package service

import (
	"fmt"

	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

// finalCourse is the last year of study.
const finalCourse = 5

type studentMapper struct{}

func (studentMapper) ToEntity(dto types.StudentDTO) types.Student {
	return types.NewStudent(dto.FirstName, dto.LastName, dto.Passport, dto.StudentID, dto.Course, dto.MilitaryID)
}

func (studentMapper) ToDTO(s types.Student) types.StudentDTO {
	return types.StudentDTO{
		PersonDTO:  types.PersonDTO{FirstName: s.FirstName, LastName: s.LastName, Passport: s.Passport},
		StudentID:  s.StudentID,
		Course:     s.Course,
		MilitaryID: s.MilitaryID,
	}
}

// StudentService is the EntityService for students.
type StudentService struct {
	*EntityService[types.Student, types.StudentDTO]
}

// NewStudentService returns a StudentService over context.
func NewStudentService(context storage.Context[types.Student]) *StudentService {
	return &StudentService{NewEntityService[types.Student, types.StudentDTO](context, studentMapper{})}
}

// FindFifthYearRecordsWhoServed returns the fifth-year students that hold
// a military ID, in stored order.
func (s *StudentService) FindFifthYearRecordsWhoServed() ([]types.StudentDTO, error) {
	all, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	served := make([]types.StudentDTO, 0)
	for _, st := range all {
		if st.Course == finalCourse && hasServed(st.MilitaryID) {
			served = append(served, st)
		}
	}
	return served, nil
}

func hasServed(militaryID string) bool {
	return militaryID != "" && militaryID != types.MilitaryNotServed
}

// RecitePoems describes the student reciting a poem.
func (s *StudentService) RecitePoems(dto types.StudentDTO) string {
	return fmt.Sprintf("Student %s %s of course %d is %s: 'Education is light, ignorance is darkness. Onward to knowledge!'",
		dto.FirstName, dto.LastName, dto.Course, RecitePoems.Do())
}

// Study describes the student studying.
func (s *StudentService) Study(dto types.StudentDTO) string {
	return fmt.Sprintf("Student %s %s (%s) is %s for course %d.",
		dto.FirstName, dto.LastName, dto.StudentID, Study.Do(), dto.Course)
}
