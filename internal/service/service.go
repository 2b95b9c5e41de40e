// Package service is the business layer over storage.Context.
//
// EntityService is generic over a record type T and its DTO D. It
// validates incoming DTOs, maps between DTOs and records, finds records by
// their (first name, last name, passport) key and classifies every failure
// into one of the error kinds declared in errors.go.
//
// Nothing is cached: every call reloads the full collection from storage.
package service

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

// Mapper converts between a record and its DTO.
type Mapper[T types.Record, D any] interface {
	ToEntity(dto D) T
	ToDTO(entity T) D
}

// EntityService implements Add, GetAll, Find and Remove for one record
// type.
type EntityService[T types.Record, D any] struct {
	context  storage.Context[T]
	mapper   Mapper[T, D]
	validate *validator.Validate
}

// NewEntityService returns a service reading and writing through context.
func NewEntityService[T types.Record, D any](context storage.Context[T], mapper Mapper[T, D]) *EntityService[T, D] {
	return &EntityService[T, D]{
		context:  context,
		mapper:   mapper,
		validate: validator.New(),
	}
}

// Add validates dto and appends it to storage.
//
// A DTO without a first or last name fails with ErrValidation and storage
// is never touched. Storage failures are returned as ErrStorage.
func (s *EntityService[T, D]) Add(dto D) error {
	if err := s.validate.Struct(dto); err != nil {
		verr := validationError(err)
		slog.Warn("rejected record", slog.String("error", verr.Error()))
		return verr
	}

	entity := s.mapper.ToEntity(dto)
	if err := s.context.Add(entity); err != nil {
		slog.Error("error adding record",
			slog.String("type", entity.RecordType()),
			slog.String("error", err.Error()))
		return newError(ErrStorage, "error adding entity to data layer", err)
	}

	slog.Info("record added", slog.String("type", entity.RecordType()))
	return nil
}

// GetAll returns every stored record as a DTO, in stored order.
func (s *EntityService[T, D]) GetAll() ([]D, error) {
	entities, err := s.context.GetAll()
	if err != nil {
		slog.Error("error listing records", slog.String("error", err.Error()))
		return nil, newError(ErrStorage, "error retrieving entities from data layer", err)
	}

	dtos := make([]D, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, s.mapper.ToDTO(e))
	}
	return dtos, nil
}

// Find returns the first record, in stored order, whose key is exactly
// (firstName, lastName, passport).
func (s *EntityService[T, D]) Find(firstName, lastName, passport string) (D, error) {
	var zero D
	key := types.Key{FirstName: firstName, LastName: lastName, Passport: passport}

	entities, err := s.context.GetAll()
	if err != nil {
		slog.Error("error searching for record", slog.String("error", err.Error()))
		return zero, newError(ErrOperation, "error searching for person", err)
	}

	i := indexOf(entities, key)
	if i < 0 {
		slog.Debug("record not found", slog.String("last_name", lastName))
		return zero, newError(ErrNotFound, "person not found", nil)
	}

	return s.mapper.ToDTO(entities[i]), nil
}

// Remove deletes the first record, in stored order, whose key is exactly
// (firstName, lastName, passport), then saves the remaining collection.
// On a miss storage is not rewritten.
func (s *EntityService[T, D]) Remove(firstName, lastName, passport string) error {
	key := types.Key{FirstName: firstName, LastName: lastName, Passport: passport}

	entities, err := s.context.GetAll()
	if err != nil {
		slog.Error("error removing record", slog.String("error", err.Error()))
		return newError(ErrOperation, "error removing person", err)
	}

	i := indexOf(entities, key)
	if i < 0 {
		slog.Debug("record not found for removal", slog.String("last_name", lastName))
		return newError(ErrNotFound, "person not found for removal", nil)
	}

	remaining := make([]T, 0, len(entities)-1)
	remaining = append(remaining, entities[:i]...)
	remaining = append(remaining, entities[i+1:]...)

	if err := s.context.SaveAll(remaining); err != nil {
		slog.Error("error removing record", slog.String("error", err.Error()))
		return newError(ErrOperation, "error removing person", err)
	}

	slog.Info("record removed",
		slog.String("type", entities[i].RecordType()),
		slog.Int("remaining", len(remaining)))
	return nil
}

func indexOf[T types.Record](entities []T, key types.Key) int {
	for i, e := range entities {
		if key.Matches(e.Identity()) {
			return i
		}
	}
	return -1
}
