package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/credentials"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/google/uuid"
)

// Local serves the Gateway from the credential store after a fixed delay.
// The delay has no jitter and is the only point where ctx cancellation is
// observed; once the delay elapsed the outcome always completes.
type Local struct {
	store        *credentials.Store
	authDelay    time.Duration
	contactDelay time.Duration
	log          logging.Logger
	now          func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewLocal(store *credentials.Store, authDelay, contactDelay time.Duration, log logging.Logger) *Local {
	return &Local{
		store:        store,
		authDelay:    authDelay,
		contactDelay: contactDelay,
		log:          log,
		now:          time.Now,
	}
}

func (l *Local) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if err := wait(ctx, l.authDelay); err != nil {
		return nil, err
	}

	users, err := l.store.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}

	user, ok := credentials.FindByCredentials(users, email, password)
	if !ok {
		return nil, common.ErrAuthenticationFailure
	}
	return user, nil
}

func (l *Local) CreateAccount(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := wait(ctx, l.authDelay); err != nil {
		return nil, err
	}

	// ReadUsers, not LoadUsers: a read failure must abort before SaveUsers
	users, err := l.store.ReadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := credentials.FindByEmail(users, email); exists {
		return nil, common.ErrCredentialConflict
	}

	now := l.now()
	user := models.User{
		ID:        l.nextID(now, users),
		Name:      name,
		Email:     email,
		Password:  password,
		CreatedAt: models.FormatCreatedAt(now),
	}

	if err := l.store.SaveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}

	l.log.Debug(ctx, "account created", "id", user.ID, "users", len(users)+1)
	return &user, nil
}

func (l *Local) SendMessage(ctx context.Context, msg ContactMessage) (*Receipt, error) {
	if err := wait(ctx, l.contactDelay); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generate receipt id: %w", err)
	}

	l.log.Info(ctx, "contact message delivered", "receipt", id.String(), "from", msg.Email, "length", len(msg.Message))
	return &Receipt{ID: id, SentAt: l.now()}, nil
}

// nextID returns the creation time in milliseconds, bumped past every id
// already issued or stored so two accounts made in one tick stay distinct.
func (l *Local) nextID(now time.Time, users []models.User) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}
	l.lastID = id
	return id
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
