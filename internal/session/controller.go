// Package session drives sign-in state: login, registration, logout and
// restoring the persisted session at start-up.
//
// The controller has two states, Anonymous and Authenticated. Every
// transition refreshes the UI exactly once and notifies at most once. Errors
// are surfaced through the UI hooks at the point they happen and returned to
// the caller as well; nothing here panics or is fatal.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/backend"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/credentials"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/ui"
	"github.com/dmitrijs2005/portfolio/internal/validation"
	"github.com/google/uuid"
)

var (
	// ErrCredentialConflict is returned by Register when the email is taken.
	ErrCredentialConflict = common.ErrCredentialConflict
	// ErrAuthenticationFailure is returned by Login when no account matches.
	ErrAuthenticationFailure = common.ErrAuthenticationFailure
)

// State is the controller's sign-in state.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// User-facing texts.
const (
	msgLoginOK         = "Login successful!"
	msgLoginFailed     = "Invalid credentials"
	msgBadPair         = "Invalid email or password"
	msgRegisterOK      = "Account created successfully!"
	msgEmailTaken      = "Email already registered"
	msgEmailExists     = "Email already exists"
	msgLogoutOK        = "Logged out successfully"
	msgUnexpected      = "Something went wrong, please try again"
	labelLoggingIn     = "Logging in..."
	labelCreatingAcct  = "Creating account..."
	fieldLoginPassword = "loginPassword"
	fieldRegisterEmail = "registerEmail"
)

type Controller struct {
	gateway backend.Gateway
	store   *credentials.Store
	ui      ui.Binder
	log     logging.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewController(gateway backend.Gateway, store *credentials.Store, binder ui.Binder, log logging.Logger) *Controller {
	return &Controller{gateway: gateway, store: store, ui: binder, log: log}
}

// State reports whether a user is signed in.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return Anonymous
	}
	return Authenticated
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (c *Controller) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Controller) setUser(u *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = u
}

// RestoreSession adopts the persisted session, if any, without checking it
// against the user collection. Called once at start-up.
func (c *Controller) RestoreSession(ctx context.Context) *models.User {
	user := c.store.LoadSession(ctx)
	c.setUser(user)
	c.ui.ReflectSession(user)

	if user != nil {
		c.log.Info(ctx, "session restored", "user_id", user.ID)
	}
	return user
}

// Login signs in with an exact email and password match. A failed attempt
// leaves the current state, including an existing session, untouched.
func (c *Controller) Login(ctx context.Context, email, password string) (*models.User, error) {
	log := c.opLogger("login")
	c.ui.ClearFieldErrors(common.FormLogin)

	if err := validation.ValidateLogin(validation.LoginForm{Email: email, Password: password}); err != nil {
		c.showValidation(ctx, log, err)
		return nil, err
	}

	c.ui.SetBusy(common.FormLogin, labelLoggingIn, true)
	user, err := c.gateway.Authenticate(ctx, email, password)
	c.ui.SetBusy(common.FormLogin, labelLoggingIn, false)

	if errors.Is(err, ErrAuthenticationFailure) {
		c.ui.ShowFieldError(fieldLoginPassword, msgBadPair)
		c.ui.Notify(msgLoginFailed, ui.KindError)
		log.Info(ctx, "login rejected")
		return nil, err
	}
	if err != nil {
		return nil, c.fail(ctx, log, err)
	}

	if err := c.store.SaveSession(ctx, *user); err != nil {
		return nil, c.fail(ctx, log, err)
	}

	c.signIn(user, msgLoginOK, common.FormLogin)
	log.Info(ctx, "login succeeded", "user_id", user.ID)
	return user, nil
}

// Register creates an account and signs it in. A taken email fails with
// ErrCredentialConflict and changes nothing.
func (c *Controller) Register(ctx context.Context, name, email, password, confirmPassword string) (*models.User, error) {
	log := c.opLogger("register")
	c.ui.ClearFieldErrors(common.FormRegister)

	form := validation.RegisterForm{Name: name, Email: email, Password: password, ConfirmPassword: confirmPassword}
	if err := validation.ValidateRegister(form); err != nil {
		c.showValidation(ctx, log, err)
		return nil, err
	}

	c.ui.SetBusy(common.FormRegister, labelCreatingAcct, true)
	user, err := c.gateway.CreateAccount(ctx, name, email, password)
	c.ui.SetBusy(common.FormRegister, labelCreatingAcct, false)

	if errors.Is(err, ErrCredentialConflict) {
		c.ui.ShowFieldError(fieldRegisterEmail, msgEmailTaken)
		c.ui.Notify(msgEmailExists, ui.KindError)
		log.Info(ctx, "registration rejected: email taken")
		return nil, err
	}
	if err != nil {
		return nil, c.fail(ctx, log, err)
	}

	// The account is stored by now; a failed session write only loses the
	// sign-in across restarts.
	if err := c.store.SaveSession(ctx, *user); err != nil {
		log.Warn(ctx, "session not persisted, signed in for this run only", "user_id", user.ID, "error", err)
	}

	c.signIn(user, msgRegisterOK, common.FormRegister)
	log.Info(ctx, "registration succeeded", "user_id", user.ID)
	return user, nil
}

// Logout drops the session. Calling it while signed out still refreshes the
// UI and notifies.
func (c *Controller) Logout(ctx context.Context) error {
	log := c.opLogger("logout")

	if err := c.store.ClearSession(ctx); err != nil {
		return c.fail(ctx, log, err)
	}

	c.setUser(nil)
	c.ui.ReflectSession(nil)
	c.ui.Notify(msgLogoutOK, ui.KindSuccess)
	log.Info(ctx, "logged out")
	return nil
}

func (c *Controller) signIn(user *models.User, msg, form string) {
	c.setUser(user)
	c.ui.ReflectSession(user)
	c.ui.Notify(msg, ui.KindSuccess)
	c.ui.CloseForm(form)
}

func (c *Controller) showValidation(ctx context.Context, log logging.Logger, err error) {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		c.ui.Notify(msgUnexpected, ui.KindError)
		log.Error(ctx, "validation failed unexpectedly", "error", err)
		return
	}
	for _, f := range verr.Fields {
		c.ui.ShowFieldError(f.Field, f.Message)
	}
	log.Debug(ctx, "input rejected", "fields", len(verr.Fields))
}

func (c *Controller) fail(ctx context.Context, log logging.Logger, err error) error {
	log.Error(ctx, "operation failed", "error", err)
	c.ui.Notify(msgUnexpected, ui.KindError)
	return err
}

func (c *Controller) opLogger(op string) logging.Logger {
	return c.log.With("op", op, "op_id", uuid.NewString())
}
