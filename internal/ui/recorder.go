package ui

import (
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/models"
)

// Call is one hook invocation captured by Recorder.
type Call struct {
	Hook    string
	Key     string
	Message string
	Kind    Kind
	User    *models.User
	Busy    bool
}

// Recorder is a Binder that only records calls. Controllers are tested
// against it instead of a terminal.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) add(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

func (r *Recorder) Notify(message string, kind Kind) {
	r.add(Call{Hook: "Notify", Message: message, Kind: kind})
}

func (r *Recorder) ShowFieldError(fieldKey, message string) {
	r.add(Call{Hook: "ShowFieldError", Key: fieldKey, Message: message})
}

func (r *Recorder) ClearFieldErrors(formKey string) {
	r.add(Call{Hook: "ClearFieldErrors", Key: formKey})
}

func (r *Recorder) ReflectSession(user *models.User) {
	r.add(Call{Hook: "ReflectSession", User: user})
}

func (r *Recorder) SetBusy(formKey, label string, busy bool) {
	r.add(Call{Hook: "SetBusy", Key: formKey, Message: label, Busy: busy})
}

func (r *Recorder) CloseForm(formKey string) {
	r.add(Call{Hook: "CloseForm", Key: formKey})
}

// Calls returns a copy of everything recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Hooks returns the recorded calls to hook, in order.
func (r *Recorder) Hooks(hook string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Hook == hook {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
