package cli

import (
	"log/slog"

	"github.com/aanand-mishra/people-registry/internal/service"
	"github.com/aanand-mishra/people-registry/internal/storage"
	"github.com/aanand-mishra/people-registry/internal/types"
)

// Session holds the storage selection of one CLI run and the services
// built from it. It is passed explicitly to the menu instead of living in
// package state.
type Session struct {
	Format    storage.Format
	Path      string
	LockFiles bool

	Students        *service.StudentService
	FootballPlayers *service.FootballPlayerService
	Lawyers         *service.LawyerService
}

// NewSession returns a session bound to format and path. An empty path
// selects the format's default file.
func NewSession(format storage.Format, path string, lockFiles bool) (*Session, error) {
	s := &Session{LockFiles: lockFiles}
	if err := s.Configure(format, path); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure rebinds all three services to format and path.
func (s *Session) Configure(format storage.Format, path string) error {
	if path == "" {
		path = format.DefaultPath()
	}

	var opts []storage.Option
	if s.LockFiles {
		opts = append(opts, storage.WithFileLock())
	}

	students, err := newContext[types.Student](format, path, opts)
	if err != nil {
		return err
	}
	players, err := newContext[types.FootballPlayer](format, path, opts)
	if err != nil {
		return err
	}
	lawyers, err := newContext[types.Lawyer](format, path, opts)
	if err != nil {
		return err
	}

	s.Format = format
	s.Path = path
	s.Students = service.NewStudentService(students)
	s.FootballPlayers = service.NewFootballPlayerService(players)
	s.Lawyers = service.NewLawyerService(lawyers)

	slog.Info("storage selected",
		slog.String("format", string(format)),
		slog.String("path", path))
	return nil
}

func newContext[T types.Record](format storage.Format, path string, opts []storage.Option) (*storage.EntityContext[T], error) {
	provider, err := storage.NewProvider[T](format)
	if err != nil {
		return nil, err
	}
	return storage.NewEntityContext(provider, path, opts...), nil
}
