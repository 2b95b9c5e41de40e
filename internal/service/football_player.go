package service

import (
	"fmt"

	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

type footballPlayerMapper struct{}

func (footballPlayerMapper) ToEntity(dto types.FootballPlayerDTO) types.FootballPlayer {
	return types.NewFootballPlayer(dto.FirstName, dto.LastName, dto.Passport, dto.Team)
}

func (footballPlayerMapper) ToDTO(p types.FootballPlayer) types.FootballPlayerDTO {
	return types.FootballPlayerDTO{
		PersonDTO: types.PersonDTO{FirstName: p.FirstName, LastName: p.LastName, Passport: p.Passport},
		Team:      p.Team,
	}
}

// FootballPlayerService is the EntityService for football players.
type FootballPlayerService struct {
	*EntityService[types.FootballPlayer, types.FootballPlayerDTO]
}

// NewFootballPlayerService returns a FootballPlayerService over context.
func NewFootballPlayerService(context storage.Context[types.FootballPlayer]) *FootballPlayerService {
	return &FootballPlayerService{NewEntityService[types.FootballPlayer, types.FootballPlayerDTO](context, footballPlayerMapper{})}
}

// Practice describes the player's training session.
func (s *FootballPlayerService) Practice(dto types.FootballPlayerDTO) string {
	return fmt.Sprintf("%s %s (%s) is %s: training speed, passing accuracy and shots on goal.",
		dto.FirstName, dto.LastName, dto.Team, PlayFootball.Do())
}
