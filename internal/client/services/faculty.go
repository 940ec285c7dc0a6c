package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/go-playground/validator/v10"
)

// FacultyService is the faculty member's own workspace.
type FacultyService interface {
	Patents(ctx context.Context) ([]models.Patent, error)
	AddPatent(ctx context.Context, form models.PatentForm) (*models.Patent, error)
	UpdateScholar(ctx context.Context, url string) (*models.ScholarProfile, error)
}

type facultyService struct {
	client   client.Client
	validate *validator.Validate
}

func NewFacultyService(client client.Client) FacultyService {
	return &facultyService{client: client, validate: newValidator()}
}

func (s *facultyService) Patents(ctx context.Context) ([]models.Patent, error) {
	patents, err := s.client.ListPatents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patents: %w", err)
	}
	return patents, nil
}

// AddPatent validates the form, builds the request body and creates the
// record. The amount is sent as null unless the patent is commercialized.
func (s *facultyService) AddPatent(ctx context.Context, form models.PatentForm) (*models.Patent, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.DateIssued = strings.TrimSpace(form.DateIssued)

	if err := s.validate.Struct(form); err != nil {
		return nil, validationError(err)
	}

	in, err := form.Input()
	if err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			return nil, common.NewValidationError("commercialization amount must be a non-negative number")
		}
		return nil, err
	}

	p, err := s.client.CreatePatent(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create patent: %w", err)
	}
	return p, nil
}

func (s *facultyService) UpdateScholar(ctx context.Context, url string) (*models.ScholarProfile, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, common.NewValidationError(msgScholarURL)
	}

	profile, err := s.client.UpdateScholar(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("update scholar profile: %w", err)
	}
	return profile, nil
}
