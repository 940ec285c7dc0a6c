package session

import (
	"strings"

	"github.com/dmitrijs2005/facultyip/internal/client/models"
)

// View is a navigable location.
type View string

const (
	ViewLanding View = "/"
	ViewFaculty View = "/faculty"
	ViewAdmin   View = "/admin"
)

// ParseView maps a path to a View. Unknown paths are the landing view.
func ParseView(path string) View {
	p := strings.TrimSpace(path)
	if p != "/" {
		p = strings.TrimRight(p, "/")
	}
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	switch View(strings.ToLower(p)) {
	case ViewFaculty:
		return ViewFaculty
	case ViewAdmin:
		return ViewAdmin
	default:
		return ViewLanding
	}
}

// Decision is the outcome of a navigation request.
type Decision struct {
	View       View
	Redirected bool
}

// Home is the only view an identity may reach.
func Home(id *models.Identity) View {
	if id == nil {
		return ViewLanding
	}
	switch id.Role {
	case models.RoleFaculty:
		return ViewFaculty
	case models.RoleAdmin:
		return ViewAdmin
	default:
		return ViewLanding
	}
}

// Resolve decides where a request for view lands for the given identity.
// It holds no state and must be called on every navigation.
func Resolve(id *models.Identity, requested View) Decision {
	home := Home(id)
	return Decision{View: home, Redirected: requested != home}
}
