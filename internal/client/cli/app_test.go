package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/facultyip/internal/client/config"
	"github.com/dmitrijs2005/facultyip/internal/client/export"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/client/session"
	"github.com/dmitrijs2005/facultyip/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a scripted Faculty IP Hub server. Accounts map e-mail to role.
type backend struct {
	t *testing.T

	mu      sync.Mutex
	created []map[string]any
	auth    []string
}

var accounts = map[string]models.Role{
	"prof@uni.edu":  models.RoleFaculty,
	"admin@uni.edu": models.RoleAdmin,
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.auth = append(b.auth, r.URL.Path+" "+r.Header.Get("Authorization"))
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
		var req models.LoginRequest
		require.NoError(b.t, json.NewDecoder(r.Body).Decode(&req))
		role, ok := accounts[req.Email]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			AccessToken: "T-" + string(role),
			TokenType:   "bearer",
			Role:        role,
			UserInfo:    models.Identity{ID: "7", Email: req.Email, FullName: "Ada Lovelace", Role: role},
		})

	case r.Method == http.MethodGet && r.URL.Path == "/api/faculty/patents":
		_, _ = w.Write([]byte(`[{"id":"p1","faculty_id":"7","title":"Widget","date_issued":"2024-01-02","commercialized":false}]`))

	case r.Method == http.MethodPost && r.URL.Path == "/api/faculty/patents":
		var body map[string]any
		require.NoError(b.t, json.NewDecoder(r.Body).Decode(&body))
		b.mu.Lock()
		b.created = append(b.created, body)
		b.mu.Unlock()
		_, _ = w.Write([]byte(`{"id":"p2","faculty_id":"7","title":"Widget","date_issued":"2024-01-02","commercialized":false}`))

	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/faculty":
		_, _ = w.Write([]byte(`[{"id":7,"email":"prof@uni.edu","full_name":"Ada Lovelace","user_type":"faculty"}]`))

	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/faculty/7/patents":
		_, _ = w.Write([]byte(`[]`))

	case r.Method == http.MethodGet && r.URL.Path == "/api/admin/faculty/7/export":
		_, _ = w.Write([]byte(`{"faculty":{"id":7},"patents":[]}`))

	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
	}
}

type testEnv struct {
	cfg     *config.Config
	backend *backend
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	b := &backend{t: t}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	return &testEnv{
		backend: b,
		cfg: &config.Config{
			ServerURL:      srv.URL,
			DatabasePath:   filepath.Join(dir, "facultyip.db"),
			RequestTimeout: 5 * time.Second,
			LogLevel:       "info",
			ExportDir:      filepath.Join(dir, "exports"),
		},
	}
}

// run starts an App on script and returns it together with everything it
// printed. The App is closed when the test ends.
func (e *testEnv) run(t *testing.T, script ...string) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")

	a, err := NewApp(context.Background(), e.cfg, in, &out, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	a.Run(context.Background())
	return a, out.String()
}

func TestApp_FacultyLoginAndNavigation(t *testing.T) {
	env := newTestEnv(t)

	a, out := env.run(t,
		"login faculty", "prof@uni.edu", "pw123",
		"open /admin",
		"patents",
		"exit",
	)

	assert.Contains(t, out, "✔ Login successful!")
	assert.Contains(t, out, "→ /admin is not available, showing /faculty")
	assert.Contains(t, out, "Now at /faculty")
	assert.Contains(t, out, "Widget")
	assert.Equal(t, session.ViewFaculty, a.View())

	id := a.session.Current()
	require.NotNil(t, id)
	assert.Equal(t, models.RoleFaculty, id.Role)
	assert.Contains(t, env.backend.auth, "/api/faculty/patents Bearer T-faculty")
}

func TestApp_RoleMismatchKeepsUserLoggedOut(t *testing.T) {
	env := newTestEnv(t)

	a, out := env.run(t,
		"login admin", "prof@uni.edu", "pw123",
		"exit",
	)

	assert.Contains(t, out, "✖ Invalid user type")
	assert.NotContains(t, out, "Login successful")
	assert.Nil(t, a.session.Current())
	assert.Equal(t, session.ViewLanding, a.View())

	token, err := a.session.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestApp_BackendRejectionShowsDetail(t *testing.T) {
	env := newTestEnv(t)

	a, out := env.run(t,
		"login faculty", "nobody@uni.edu", "pw123",
		"exit",
	)

	assert.Contains(t, out, "✖ Incorrect email or password")
	assert.Nil(t, a.session.Current())
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)

	first, _ := env.run(t, "login faculty", "prof@uni.edu", "pw123", "exit")
	require.NoError(t, first.Close())

	second, out := env.run(t, "exit")

	require.NotNil(t, second.session.Current())
	assert.Equal(t, "prof@uni.edu", second.session.Current().Email)
	assert.Equal(t, session.ViewFaculty, second.View())
	assert.Contains(t, out, "showing /faculty")
}

func TestApp_LogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)

	a, out := env.run(t,
		"login faculty", "prof@uni.edu", "pw123",
		"logout",
		"patents",
		"exit",
	)

	assert.Contains(t, out, "✔ Logged out")
	assert.Nil(t, a.session.Current())
	assert.Equal(t, session.ViewLanding, a.View())
	assert.NotContains(t, env.backend.auth, "/api/faculty/patents Bearer T-faculty")

	token, err := a.session.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestApp_AddPatentKeepsFormUntilSuccess(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.run(t,
		"login faculty", "prof@uni.edu", "pw123",
		"addpatent", "Widget", "2024-01-02", "", "y", "abc",
		"addpatent", "", "", "", "n",
		"exit",
	)

	assert.Contains(t, out, "✖ commercialization amount must be a non-negative number")
	assert.Contains(t, out, "Title [Widget]")
	assert.Contains(t, out, "✔ Patent added successfully!")

	require.Len(t, env.backend.created, 1)
	body := env.backend.created[0]
	assert.Equal(t, "Widget", body["title"])
	assert.Equal(t, "2024-01-02", body["date_issued"])
	assert.Equal(t, false, body["commercialized"])
	amount, ok := body["commercialization_amount"]
	assert.True(t, ok, "amount is always sent")
	assert.Nil(t, amount)
}

func TestApp_AdminExportWritesFile(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.run(t,
		"login admin", "admin@uni.edu", "pw123",
		"faculty",
		"show 7",
		"export 7",
		"exit",
	)

	assert.Contains(t, out, "Ada Lovelace <prof@uni.edu>")
	assert.Contains(t, out, "No patents yet.")

	path := filepath.Join(env.cfg.ExportDir, "faculty_7_export.json")
	assert.Contains(t, out, "✔ Faculty data exported successfully: "+path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"faculty\": {\n    \"id\": 7\n  },\n  \"patents\": []\n}\n", string(b))
}

func TestApp_ShowUnknownFaculty(t *testing.T) {
	env := newTestEnv(t)

	_, out := env.run(t,
		"login admin", "admin@uni.edu", "pw123",
		"show 99",
		"exit",
	)

	assert.Contains(t, out, "✖ Failed to load faculty data")
}

func TestNewSink(t *testing.T) {
	ctx := context.Background()

	s, err := newSink(ctx, &config.Config{ExportDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &export.FileSink{}, s)

	s, err = newSink(ctx, &config.Config{ExportDir: "x", ExportURL: "https://dav.uni.edu/exports"})
	require.NoError(t, err)
	assert.IsType(t, &export.HTTPSink{}, s)

	_, err = newSink(ctx, &config.Config{ExportURL: "ftp://dav.uni.edu"})
	require.Error(t, err)
}
