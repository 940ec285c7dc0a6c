package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/facultyip/internal/client/client"
	"github.com/dmitrijs2005/facultyip/internal/client/models"
	"github.com/dmitrijs2005/facultyip/internal/common"
	"github.com/dmitrijs2005/facultyip/internal/logging"
	"github.com/go-playground/validator/v10"
)

// Authority holds the current identity. It is safe for concurrent use.
type Authority struct {
	api      client.Client
	store    *Store
	log      logging.Logger
	validate *validator.Validate

	mu           sync.RWMutex
	current      *models.Identity
	initializing bool
	bootOnce     sync.Once

	subMu  sync.Mutex
	subs   map[int]func(*models.Identity)
	nextID int
}

type loginInput struct {
	Email    string      `validate:"required,email"`
	Password string      `validate:"required"`
	Role     models.Role `validate:"required,oneof=faculty admin"`
}

type registerInput struct {
	Email    string      `validate:"required,email"`
	Password string      `validate:"required"`
	FullName string      `validate:"required"`
	Role     models.Role `validate:"required,oneof=faculty admin"`
}

// NewAuthority returns an Authority in the initializing state. The API
// client may be set later with SetClient when it needs the Authority as
// its token source.
func NewAuthority(api client.Client, store *Store, log logging.Logger) *Authority {
	if log == nil {
		log = logging.Nop()
	}
	return &Authority{
		api:          api,
		store:        store,
		log:          log.With("component", "session"),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		initializing: true,
		subs:         make(map[int]func(*models.Identity)),
	}
}

// SetClient installs the backend client. It must be called before Login
// or Register.
func (a *Authority) SetClient(api client.Client) {
	a.mu.Lock()
	a.api = api
	a.mu.Unlock()
}

// Bootstrap rehydrates the session from storage. A stored identity that
// does not parse wipes both entries. It never fails; anything unusable is
// treated as logged out. Only the first call has any effect.
func (a *Authority) Bootstrap(ctx context.Context) {
	a.bootOnce.Do(func() {
		id := a.restore(ctx)

		a.mu.Lock()
		a.current = id
		a.initializing = false
		a.mu.Unlock()

		if id != nil {
			a.log.Info(ctx, "session restored", "user_id", id.ID, "role", id.Role)
			a.publish(id)
		}
	})
}

func (a *Authority) restore(ctx context.Context) *models.Identity {
	token, userInfo, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "cannot read stored session", "error", err)
		return nil
	}

	if len(token) == 0 && len(userInfo) == 0 {
		return nil
	}

	id, err := models.ParseIdentity(userInfo)
	if err == nil && len(token) == 0 {
		err = errors.New("identity stored without credential")
	}
	if err != nil {
		a.log.Warn(ctx, "stored session is corrupt, clearing it", "error", err)
		a.clearCorrupt(ctx)
		return nil
	}
	return id
}

func (a *Authority) clearCorrupt(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "cannot clear corrupt session", "error", err)
	}
}

// Initializing reports whether Bootstrap has not finished yet.
func (a *Authority) Initializing() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.initializing
}

// Current returns the authenticated identity, nil when anonymous.
func (a *Authority) Current() *models.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current
}

// Token reads the credential from storage on every call.
func (a *Authority) Token(ctx context.Context) (string, error) {
	return a.store.Token(ctx)
}

// Login authenticates against the backend and accepts the result only if
// the backend's role equals expected. On a mismatch nothing is stored.
func (a *Authority) Login(ctx context.Context, email, password string, expected models.Role) (*models.Identity, error) {
	in := loginInput{Email: strings.TrimSpace(email), Password: password, Role: expected}
	if err := a.check(in); err != nil {
		return nil, err
	}

	resp, err := a.client().Login(ctx, models.LoginRequest{Email: in.Email, Password: in.Password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// Both roles must agree with expected: user_info is what gets stored.
	if role, stored := resp.EffectiveRole(), resp.UserInfo.Role; role != expected || (stored != "" && stored != expected) {
		a.log.Warn(ctx, "role mismatch on login", "expected", expected, "got", role, "user_info_role", stored)
		return nil, ErrInvalidUserType
	}

	return a.accept(ctx, resp, expected)
}

// Register creates an account and signs in as it. The role is not
// restricted here; the admin role is simply never offered to users.
func (a *Authority) Register(ctx context.Context, email, password, fullName string, role models.Role) (*models.Identity, error) {
	in := registerInput{
		Email:    strings.TrimSpace(email),
		Password: password,
		FullName: strings.TrimSpace(fullName),
		Role:     role,
	}
	if err := a.check(in); err != nil {
		return nil, err
	}

	resp, err := a.client().Register(ctx, models.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Role:     role,
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return a.accept(ctx, resp, role)
}

// Logout clears the stored session. It cannot fail from the caller's
// point of view; a storage error is only logged.
func (a *Authority) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "cannot clear stored session", "error", err)
	}

	a.mu.Lock()
	prev := a.current
	a.current = nil
	a.mu.Unlock()

	if prev != nil {
		a.log.Info(ctx, "logged out", "user_id", prev.ID)
		a.publish(nil)
	}
}

// Subscribe registers fn for identity changes. fn receives nil on logout.
// The returned func removes the subscription.
func (a *Authority) Subscribe(fn func(*models.Identity)) (unsubscribe func()) {
	a.subMu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	a.subMu.Unlock()

	return func() {
		a.subMu.Lock()
		delete(a.subs, id)
		a.subMu.Unlock()
	}
}

func (a *Authority) publish(id *models.Identity) {
	a.subMu.Lock()
	fns := make([]func(*models.Identity), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(id)
	}
}

func (a *Authority) client() client.Client {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.api
}

// accept persists a successful authentication and makes it current.
func (a *Authority) accept(ctx context.Context, resp *models.AuthResponse, role models.Role) (*models.Identity, error) {
	if resp.AccessToken == "" {
		return nil, errors.New("backend returned no access token")
	}

	id := resp.UserInfo
	if id.Role == "" {
		id.Role = role
	}

	blob, err := json.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}
	if err := a.store.Save(ctx, resp.AccessToken, blob); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.current = &id
	a.mu.Unlock()

	a.log.Info(ctx, "signed in", "user_id", id.ID, "role", id.Role)
	a.publish(&id)
	return &id, nil
}

func (a *Authority) check(in any) error {
	if err := a.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return common.NewValidationError("%s", describe(verrs[0]))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	if fe.Field() == "FullName" {
		field = "full name"
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "email is not a valid address"
	case "oneof":
		return "role must be faculty or admin"
	default:
		return field + " is invalid"
	}
}
