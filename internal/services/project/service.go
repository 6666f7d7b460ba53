package project

import (
	"strings"
	"unicode/utf8"

	"github.com/danielagv/tablero/internal/config"
	"github.com/danielagv/tablero/internal/models"
	"github.com/danielagv/tablero/internal/registry"
)

// Service defines all project-related board operations.
//
// It is the validation boundary in front of the registry: the registry
// accepts anything, so every user-facing input must pass through here
// first. Moves are forwarded untouched because a move carries no free-form
// input, only an ID read from the grabbed card.
type Service interface {
	// CreateProject validates the request and, if valid, adds a new
	// Active project to the registry. On a validation error the
	// registry is never called and no notification fires.
	CreateProject(req CreateProjectRequest) (models.Project, error)

	// MoveProject forwards a status change to the registry and reports
	// the registry's explicit outcome.
	MoveProject(id string, status models.Status) registry.MoveResult

	// Projects returns a snapshot of all projects for initial renders.
	Projects() []models.Project

	// Subscribe registers a view callback with the underlying registry.
	Subscribe(fn registry.Subscriber)
}

// CreateProjectRequest encapsulates all data needed to create a project
type CreateProjectRequest struct {
	Title       string
	Description string
	People      int
}

// service implements Service interface
type service struct {
	reg    *registry.Registry
	limits config.Limits
}

// NewService creates a new project service bound to a registry and the
// configured validation limits.
func NewService(reg *registry.Registry, limits config.Limits) Service {
	return &service{
		reg:    reg,
		limits: limits,
	}
}

// CreateProject handles project creation with boundary validation
func (s *service) CreateProject(req CreateProjectRequest) (models.Project, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)

	if err := s.validate(title, description, req.People); err != nil {
		return models.Project{}, err
	}

	return s.reg.AddProject(title, description, req.People), nil
}

// MoveProject forwards to the registry. A MoveNotFound or MoveUnchanged
// outcome is not an error; callers decide whether to surface it.
func (s *service) MoveProject(id string, status models.Status) registry.MoveResult {
	return s.reg.MoveProject(id, status)
}

func (s *service) Projects() []models.Project {
	return s.reg.Projects()
}

func (s *service) Subscribe(fn registry.Subscriber) {
	s.reg.Subscribe(fn)
}

// validate checks a trimmed request against the configured limits.
func (s *service) validate(title, description string, people int) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > s.limits.MaxTitleLength {
		return ErrTitleTooLong
	}
	if description == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) < s.limits.MinDescriptionLength {
		return ErrDescriptionTooShort
	}
	if utf8.RuneCountInString(description) > s.limits.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if people < s.limits.MinPeople {
		return ErrTooFewPeople
	}
	if people > s.limits.MaxPeople {
		return ErrTooManyPeople
	}
	return nil
}
