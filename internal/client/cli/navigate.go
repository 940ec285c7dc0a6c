package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/facultyip/internal/client/session"
)

// navigate asks the route guard where a request for view lands, moves
// there and reports redirects. The guard is consulted every time.
func (a *App) navigate(view session.View) session.Decision {
	if a.session.Initializing() {
		a.view = session.ViewLanding
		return session.Decision{View: session.ViewLanding, Redirected: view != session.ViewLanding}
	}

	d := session.Resolve(a.session.Current(), view)
	if d.Redirected {
		a.log.Debug(context.Background(), "navigation redirected", "requested", view, "view", d.View)
		fmt.Fprintf(a.out, "→ %s is not available, showing %s\n", view, d.View)
	}
	a.view = d.View
	return d
}

// Navigate implements execIface.
func (a *App) Navigate(view session.View) session.Decision {
	return a.navigate(view)
}

// Open navigates to an arbitrary path, as typing a URL would.
func (a *App) Open(ctx context.Context, path string) error {
	d := a.navigate(session.ParseView(path))
	fmt.Fprintf(a.out, "Now at %s\n", d.View)
	return nil
}
