// Package admin holds the state controllers of the admin console: one
// editor per tab, the profile form, image uploads and the shell that ties
// them to the session.
package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/validate"
)

var (
	ErrEditorBusy     = errors.New("another item is being edited")
	ErrInvalidDraft   = errors.New("draft has invalid fields")
	ErrSubmitInFlight = errors.New("submit already in progress")
	ErrCancelled      = errors.New("cancelled")
	ErrNotEditing     = errors.New("nothing is being edited")
	ErrUnknownItem    = errors.New("item is not in the list")
	ErrClosed         = errors.New("editor is closed")
)

// NetworkMessage is shown when the API could not be reached.
const NetworkMessage = "Network error. Please try again."

// SubmitKey holds the form-level message in Errors.
const SubmitKey = "submit"

type Mode int

const (
	Idle Mode = iota
	Creating
	Editing
	Submitting
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	}
	return "idle"
}

// Resource is the remote collection an editor works on.
type Resource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, v T) (T, error)
	Update(ctx context.Context, id int64, v T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Kind describes the edited entity.
type Kind[T any] struct {
	Label    string // "Project", used in notices
	Noun     string // "project", used in failure messages
	ID       func(T) int64
	Validate func(T) validate.Errors
	// Clone deep-copies an item; nil for types without slices or pointers.
	Clone func(T) T
}

func (k Kind[T]) copyOf(v T) T {
	if k.Clone == nil {
		return v
	}
	return k.Clone(v)
}

// Confirmer asks the operator before destructive actions.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Editor is the form state of one admin tab. Only one item is edited at a
// time; results that arrive after Close are dropped.
type Editor[T any] struct {
	kind Kind[T]
	res  Resource[T]

	mu      sync.Mutex
	mode    Mode
	resume  Mode // mode to return to when a submit fails
	editID  int64
	draft   T
	items   []T
	errs    validate.Errors
	notice  string
	loadErr error
	closed  bool
}

func NewEditor[T any](kind Kind[T], res Resource[T]) *Editor[T] {
	return &Editor[T]{kind: kind, res: res, errs: validate.Errors{}, items: []T{}}
}

// Refresh reloads the list.
func (e *Editor[T]) Refresh(ctx context.Context) error {
	items, err := e.res.List(ctx)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	e.loadErr = err
	if err == nil {
		if items == nil {
			items = []T{}
		}
		e.items = items
	}
	return err
}

// BeginCreate opens the form with a blank draft.
func (e *Editor[T]) BeginCreate(blank T) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.mode != Idle {
		return ErrEditorBusy
	}
	e.mode, e.editID, e.draft = Creating, 0, blank
	e.errs, e.notice = validate.Errors{}, ""
	return nil
}

// BeginEdit opens the form on a copy of the listed item id.
func (e *Editor[T]) BeginEdit(id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.mode != Idle {
		return ErrEditorBusy
	}
	for _, it := range e.items {
		if e.kind.ID(it) == id {
			e.mode, e.editID, e.draft = Editing, id, e.kind.copyOf(it)
			e.errs, e.notice = validate.Errors{}, ""
			return nil
		}
	}
	return ErrUnknownItem
}

// Edit changes the open draft in place.
func (e *Editor[T]) Edit(fn func(*T)) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.mode != Creating && e.mode != Editing {
		return ErrNotEditing
	}
	fn(&e.draft)
	return nil
}

// Cancel drops the draft. It does nothing while a submit is running.
func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode == Creating || e.mode == Editing {
		e.reset()
	}
}

func (e *Editor[T]) reset() {
	var zero T
	e.mode, e.editID, e.draft = Idle, 0, zero
	e.errs = validate.Errors{}
}

// Validate checks the draft and stores the field errors.
func (e *Editor[T]) Validate() validate.Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs = e.check(e.draft)
	return copyErrors(e.errs)
}

func (e *Editor[T]) check(v T) validate.Errors {
	if e.kind.Validate == nil {
		return validate.Errors{}
	}
	errs := e.kind.Validate(v)
	if errs == nil {
		errs = validate.Errors{}
	}
	return errs
}

// Submit sends the draft: one create or update, then one list refetch.
// An invalid draft sends nothing and returns ErrInvalidDraft.
func (e *Editor[T]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	switch e.mode {
	case Submitting:
		e.mu.Unlock()
		return ErrSubmitInFlight
	case Idle:
		e.mu.Unlock()
		return ErrNotEditing
	}
	if errs := e.check(e.draft); len(errs) > 0 {
		e.errs = errs
		e.mu.Unlock()
		return ErrInvalidDraft
	}
	e.resume, e.mode = e.mode, Submitting
	draft, id, creating := e.draft, e.editID, e.resume == Creating
	e.mu.Unlock()

	var err error
	if creating {
		_, err = e.res.Create(ctx, draft)
	} else {
		_, err = e.res.Update(ctx, id, draft)
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		e.mode = e.resume
		e.errs = submitErrors(err, "Failed to save "+e.kind.Noun)
		e.mu.Unlock()
		return err
	}
	e.reset()
	if creating {
		e.notice = e.kind.Label + " created successfully!"
	} else {
		e.notice = e.kind.Label + " updated successfully!"
	}
	e.mu.Unlock()

	// the record is saved; a failed refetch shows up in LoadErr
	_ = e.Refresh(ctx)
	return nil
}

// Delete removes item id after confirmation, then refetches the list.
func (e *Editor[T]) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if e.mode == Submitting {
		e.mu.Unlock()
		return ErrSubmitInFlight
	}
	e.mu.Unlock()

	if confirm == nil || !confirm.Confirm("Are you sure you want to delete this "+e.kind.Noun+"?") {
		return ErrCancelled
	}
	return e.remove(ctx, id, func(ctx context.Context) error { return e.res.Delete(ctx, id) }, e.kind.Label+" deleted successfully!")
}

// remove runs a destructive call and refreshes on success.
func (e *Editor[T]) remove(ctx context.Context, id int64, do func(context.Context) error, notice string) error {
	err := do(ctx)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		e.errs = submitErrors(err, "Failed to delete "+e.kind.Noun)
		e.mu.Unlock()
		return err
	}
	if e.mode == Editing && e.editID == id {
		e.reset()
	}
	e.notice = notice
	e.mu.Unlock()

	_ = e.Refresh(ctx)
	return nil
}

// Close detaches the editor; late answers of in-flight calls are ignored.
func (e *Editor[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.reset()
}

func (e *Editor[T]) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *Editor[T]) Draft() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.kind.copyOf(e.draft)
}

// EditingID is the id of the item being edited, zero when creating.
func (e *Editor[T]) EditingID() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editID
}

func (e *Editor[T]) Items() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]T{}, e.items...)
}

func (e *Editor[T]) Errors() validate.Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyErrors(e.errs)
}

// Notice is the last success message.
func (e *Editor[T]) Notice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.notice
}

// LoadErr is the failure of the last list refetch.
func (e *Editor[T]) LoadErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadErr
}

// submitErrors turns an API failure into form errors. Server field errors
// are kept; the submit key gets the server message or fallback.
func submitErrors(err error, fallback string) validate.Errors {
	errs := validate.Errors{}
	var reqErr *client.RequestError
	var netErr *client.TransportError
	switch {
	case errors.As(err, &netErr):
		errs[SubmitKey] = NetworkMessage
	case errors.As(err, &reqErr):
		errs.Merge(reqErr.Fields)
		msg := strings.TrimSpace(reqErr.Message)
		if msg == "" || msg == http.StatusText(reqErr.Status) {
			msg = fallback
		}
		errs[SubmitKey] = msg
	default:
		errs[SubmitKey] = fallback
	}
	return errs
}

func copyErrors(errs validate.Errors) validate.Errors {
	out := make(validate.Errors, len(errs))
	out.Merge(errs)
	return out
}
