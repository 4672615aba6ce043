package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

type notice struct {
	message string
	kind    Kind
	expires time.Time
}

// Terminal renders the hooks as lines on w and keeps the state a prompt
// needs: the signed-in user, outstanding field errors and notifications that
// have not yet expired.
type Terminal struct {
	w   io.Writer
	ttl time.Duration
	now func() time.Time

	mu          sync.Mutex
	notices     []notice
	fieldErrors map[string]string
	user        *models.User
}

func NewTerminal(w io.Writer, ttl time.Duration) *Terminal {
	return &Terminal{
		w:           w,
		ttl:         ttl,
		now:         time.Now,
		fieldErrors: make(map[string]string),
	}
}

func (t *Terminal) Notify(message string, kind Kind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notices = append(t.notices, notice{message: message, kind: kind, expires: t.now().Add(t.ttl)})
	fmt.Fprintf(t.w, "[%s] %s\n", kind, message)
}

// Pending returns the messages of notifications that have not expired,
// oldest first, and forgets the expired ones.
func (t *Terminal) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	live := t.notices[:0]
	out := make([]string, 0, len(t.notices))
	for _, n := range t.notices {
		if now.Before(n.expires) {
			live = append(live, n)
			out = append(out, n.message)
		}
	}
	t.notices = live
	return out
}

func (t *Terminal) ShowFieldError(fieldKey, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fieldErrors[fieldKey] = message
	fmt.Fprintf(t.w, "  ! %s\n", message)
}

func (t *Terminal) ClearFieldErrors(formKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k := range t.fieldErrors {
		if strings.HasPrefix(k, formKey) {
			delete(t.fieldErrors, k)
		}
	}
}

// FieldErrors returns the outstanding field errors of formKey, sorted by key.
// An empty formKey selects every form.
func (t *Terminal) FieldErrors(formKey string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]string, 0, len(t.fieldErrors))
	for k := range t.fieldErrors {
		if strings.HasPrefix(k, formKey) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+": "+t.fieldErrors[k])
	}
	return out
}

func (t *Terminal) ReflectSession(user *models.User) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.user = user
	if user == nil {
		fmt.Fprintln(t.w, "Signed out. Commands: login, register")
		return
	}
	fmt.Fprintf(t.w, "Signed in as %s\n", user.Name)
}

func (t *Terminal) SetBusy(_ string, label string, busy bool) {
	if !busy {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, label)
}

// CloseForm drops the form's field errors; a closed form shows none.
func (t *Terminal) CloseForm(formKey string) {
	t.ClearFieldErrors(formKey)
}

// DisplayName is the signed-in user's name, or "" when signed out.
func (t *Terminal) DisplayName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.user == nil {
		return ""
	}
	return t.user.Name
}
