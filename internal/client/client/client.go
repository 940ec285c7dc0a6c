package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
)

// Client is the backend REST contract. Every method issues exactly one
// request and never retries.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	ListPatents(ctx context.Context) ([]models.Patent, error)
	CreatePatent(ctx context.Context, in models.PatentInput) (*models.Patent, error)
	UpdateScholar(ctx context.Context, url string) (*models.ScholarProfile, error)

	ListFaculty(ctx context.Context) ([]models.Identity, error)
	ListFacultyPatents(ctx context.Context, facultyID string) ([]models.Patent, error)
	ExportFaculty(ctx context.Context, facultyID string) (json.RawMessage, error)
}
