package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
)

// fakeClient implements client.Client with canned results.
type fakeClient struct {
	patents    []models.Patent
	patentsErr error

	created   *models.Patent
	createErr error
	lastInput *models.PatentInput

	scholar    *models.ScholarProfile
	scholarErr error
	lastURL    string

	faculty    []models.Identity
	facultyErr error

	facultyPatents map[string][]models.Patent
	exportPayload  json.RawMessage
	exportErr      error

	calls int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(context.Context, models.LoginRequest) (*models.AuthResponse, error) {
	return nil, nil
}

func (f *fakeClient) Register(context.Context, models.RegisterRequest) (*models.AuthResponse, error) {
	return nil, nil
}

func (f *fakeClient) ListPatents(context.Context) ([]models.Patent, error) {
	f.calls++
	return f.patents, f.patentsErr
}

func (f *fakeClient) CreatePatent(_ context.Context, in models.PatentInput) (*models.Patent, error) {
	f.calls++
	f.lastInput = &in
	return f.created, f.createErr
}

func (f *fakeClient) UpdateScholar(_ context.Context, url string) (*models.ScholarProfile, error) {
	f.calls++
	f.lastURL = url
	return f.scholar, f.scholarErr
}

func (f *fakeClient) ListFaculty(context.Context) ([]models.Identity, error) {
	f.calls++
	return f.faculty, f.facultyErr
}

func (f *fakeClient) ListFacultyPatents(_ context.Context, id string) ([]models.Patent, error) {
	f.calls++
	return f.facultyPatents[id], nil
}

func (f *fakeClient) ExportFaculty(context.Context, string) (json.RawMessage, error) {
	f.calls++
	return f.exportPayload, f.exportErr
}

type memSink struct {
	files map[string][]byte
	err   error
}

func (m *memSink) Write(_ context.Context, name string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[name] = data
	return "mem://" + name, nil
}
