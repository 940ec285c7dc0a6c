package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/logging"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func storedEntries(t *testing.T, db *sql.DB) map[string]string {
	t.Helper()
	rows, err := db.Query(`SELECT key, value FROM metadata`)
	require.NoError(t, err)
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k string
		var v []byte
		require.NoError(t, rows.Scan(&k, &v))
		out[k] = string(v)
	}
	require.NoError(t, rows.Err())
	return out
}

// fakeClient is a client.Client whose auth endpoints are scripted.
type fakeClient struct {
	loginResp *models.AuthResponse
	loginErr  error
	regResp   *models.AuthResponse
	regErr    error

	loginCalls []models.LoginRequest
	regCalls   []models.RegisterRequest
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.loginCalls = append(f.loginCalls, req)
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.regCalls = append(f.regCalls, req)
	return f.regResp, f.regErr
}

func (f *fakeClient) ListPatents(context.Context) ([]models.Patent, error) { return nil, nil }

func (f *fakeClient) CreatePatent(context.Context, models.PatentInput) (*models.Patent, error) {
	return nil, nil
}

func (f *fakeClient) UpdateScholar(context.Context, string) (*models.ScholarProfile, error) {
	return nil, nil
}

func (f *fakeClient) ListFaculty(context.Context) ([]models.Identity, error) { return nil, nil }

func (f *fakeClient) ListFacultyPatents(context.Context, string) ([]models.Patent, error) {
	return nil, nil
}

func (f *fakeClient) ExportFaculty(context.Context, string) (json.RawMessage, error) {
	return nil, nil
}

func authResp(token string, role models.Role, id models.ID) *models.AuthResponse {
	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        role,
		UserInfo: models.Identity{
			ID:       id,
			Email:    "prof@uni.edu",
			FullName: "Prof Example",
			Role:     role,
		},
	}
}

func newAuthority(t *testing.T, api client.Client) (*Authority, *sql.DB) {
	t.Helper()
	db := openDB(t)
	return NewAuthority(api, NewStore(db), logging.Nop()), db
}
