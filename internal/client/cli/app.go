package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/config"
	"github.com/dmitrijs2005/facultyip/internal/client/export"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/client/services"
	"github.com/dmitrijs2005/facultyip/internal/client/session"
	"github.com/dmitrijs2005/facultyip/internal/logging"
)

// App is the composition root of the CLI. It owns the single session
// Authority and the services built on it.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Authority
	faculty services.FacultyService
	admin   services.AdminService
	log     logging.Logger

	reader *bufio.Reader
	out    io.Writer
	notify *notifier
	busy   inflight

	view    session.View
	form    models.PatentForm
	scholar *models.ScholarProfile
}

// NewApp opens local storage, wires the API client to the session and
// restores the previous session.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	auth := session.NewAuthority(nil, session.NewStore(db), log)
	api, err := client.New(c.ServerURL, auth,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	auth.SetClient(api)

	sink, err := newSink(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		db:      db,
		session: auth,
		faculty: services.NewFacultyService(api),
		admin:   services.NewAdminService(api, sink),
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
		notify:  &notifier{w: out, log: log},
		view:    session.ViewLanding,
	}
	auth.Subscribe(a.onIdentity)
	auth.Bootstrap(ctx)

	return a, nil
}

// newSink picks object storage when a bucket is configured, then an
// upload URL, then the export directory.
func newSink(ctx context.Context, c *config.Config) (export.Sink, error) {
	switch {
	case c.ExportBucket != "":
		return export.NewS3Sink(ctx, export.S3Config{
			Bucket:       c.ExportBucket,
			Prefix:       c.ExportPrefix,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
		})
	case c.ExportURL != "":
		return export.NewHTTPSink(c.ExportURL, &http.Client{Timeout: c.RequestTimeout})
	default:
		return export.NewFileSink(c.ExportDir), nil
	}
}

// onIdentity resets per-user view state whenever the identity changes.
func (a *App) onIdentity(id *models.Identity) {
	a.form.Reset()
	a.scholar = nil
	if id != nil {
		a.scholar = id.ScholarData
	}
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Faculty IP Hub CLI (type 'help' for commands)")
	a.navigate(a.view)
	runREPL(ctx, a, a.reader, a.out)
}

// View is the view the user is currently on.
func (a *App) View() session.View {
	return a.view
}

func (a *App) Status() string {
	id := a.session.Current()
	if id == nil {
		return fmt.Sprintf("(%s)", a.view)
	}
	return fmt.Sprintf("(%s %s %s)", id.Email, id.Role, a.view)
}
