package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/export"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/common"
)

// AdminService is the administrator's read-only view over all faculty.
type AdminService interface {
	Faculty(ctx context.Context) ([]models.Identity, error)
	FacultyMember(ctx context.Context, id string) (*models.Identity, error)
	FacultyPatents(ctx context.Context, id string) ([]models.Patent, error)
	Export(ctx context.Context, id string) (location string, err error)
}

type adminService struct {
	client client.Client
	sink   export.Sink
}

func NewAdminService(client client.Client, sink export.Sink) AdminService {
	return &adminService{client: client, sink: sink}
}

func (s *adminService) Faculty(ctx context.Context) ([]models.Identity, error) {
	faculty, err := s.client.ListFaculty(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return faculty, nil
}

// FacultyMember looks the id up in the faculty directory. The backend has
// no single-member endpoint.
func (s *adminService) FacultyMember(ctx context.Context, id string) (*models.Identity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, common.NewValidationError("faculty id is required")
	}

	faculty, err := s.Faculty(ctx)
	if err != nil {
		return nil, err
	}
	for i := range faculty {
		if faculty[i].ID.String() == id {
			return &faculty[i], nil
		}
	}
	return nil, fmt.Errorf("faculty %s: %w", id, common.ErrorNotFound)
}

func (s *adminService) FacultyPatents(ctx context.Context, id string) ([]models.Patent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, common.NewValidationError("faculty id is required")
	}

	patents, err := s.client.ListFacultyPatents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list faculty patents: %w", err)
	}
	return patents, nil
}

// Export downloads the faculty export and hands it, indented, to the sink
// as faculty_<id>_export.json.
func (s *adminService) Export(ctx context.Context, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", common.NewValidationError("faculty id is required")
	}

	payload, err := s.client.ExportFaculty(ctx, id)
	if err != nil {
		return "", fmt.Errorf("export faculty: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return "", fmt.Errorf("export faculty: invalid payload: %w", err)
	}
	buf.WriteByte('\n')

	loc, err := s.sink.Write(ctx, export.FileName(id), buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("store export: %w", err)
	}
	return loc, nil
}
