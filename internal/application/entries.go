package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
	"github.com/atvirokodosprendimai/deskkit/internal/validate"
)

type EntryService struct {
	repo domain.EntryRepository
}

func NewEntryService(repo domain.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

func (s *EntryService) Initialize(ctx context.Context) error {
	if err := s.repo.Init(ctx); err != nil {
		return fmt.Errorf("initialize entries: %w", err)
	}
	return nil
}

// Save validates and stores one entry. Nothing reaches the repository when
// validation fails.
func (s *EntryService) Save(ctx context.Context, service, username, hint string) error {
	service = strings.TrimSpace(service)
	username = strings.TrimSpace(username)
	hint = strings.TrimSpace(hint)

	if service == "" {
		return domain.ValidationError{Field: "service", Value: service, Message: "service is required"}
	}
	if err := validate.Username(username); err != nil {
		return err
	}

	if err := s.repo.InsertEntry(ctx, domain.Entry{Service: service, Username: username, Hint: hint}); err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	log.Info().Str("service", service).Msg("entry saved")
	return nil
}

func (s *EntryService) List(ctx context.Context, search string) ([]domain.Entry, error) {
	entries, err := s.repo.ListEntries(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}
