package service

import (
	"fmt"

	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

type lawyerMapper struct{}

func (lawyerMapper) ToEntity(dto types.LawyerDTO) types.Lawyer {
	return types.NewLawyer(dto.FirstName, dto.LastName, dto.Passport, dto.Company)
}

func (lawyerMapper) ToDTO(l types.Lawyer) types.LawyerDTO {
	return types.LawyerDTO{
		PersonDTO: types.PersonDTO{FirstName: l.FirstName, LastName: l.LastName, Passport: l.Passport},
		Company:   l.Company,
	}
}

// LawyerService is the EntityService for lawyers.
type LawyerService struct {
	*EntityService[types.Lawyer, types.LawyerDTO]
}

// NewLawyerService returns a LawyerService over context.
func NewLawyerService(context storage.Context[types.Lawyer]) *LawyerService {
	return &LawyerService{NewEntityService[types.Lawyer, types.LawyerDTO](context, lawyerMapper{})}
}

// Practice describes the lawyer's working day.
func (s *LawyerService) Practice(dto types.LawyerDTO) string {
	return fmt.Sprintf("%s %s of '%s' is %s: drafting court documents, analysing precedents and negotiating.",
		dto.FirstName, dto.LastName, dto.Company, PracticeLaw.Do())
}
