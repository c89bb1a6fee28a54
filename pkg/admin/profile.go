package admin

import (
	"context"
	"io"
	"sync"

	"github.com/artem13815/portfolio/pkg/client"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/validate"
)

// ProfileAPI is what the profile form needs from the client.
type ProfileAPI interface {
	Profile(ctx context.Context, authAware bool) (profile.Data, error)
	UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error)
	UploadProfilePhoto(ctx context.Context, filename string, r io.Reader) (string, error)
}

// ProfileForm edits the single owner profile. It is never created or
// deleted, so it only knows Idle, Editing and Submitting.
type ProfileForm struct {
	api ProfileAPI

	mu      sync.Mutex
	mode    Mode
	current profile.Profile
	draft   profile.Profile
	errs    validate.Errors
	notice  string
	closed  bool
}

func NewProfileForm(api ProfileAPI) *ProfileForm {
	return &ProfileForm{api: api, errs: validate.Errors{}}
}

// Load fetches the stored profile.
func (f *ProfileForm) Load(ctx context.Context) error {
	data, err := f.api.Profile(ctx, true)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if err != nil {
		return err
	}
	f.current = data.User
	return nil
}

// BeginEdit copies the stored profile into the draft.
func (f *ProfileForm) BeginEdit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.mode != Idle {
		return ErrEditorBusy
	}
	f.mode, f.draft = Editing, f.current
	f.errs, f.notice = validate.Errors{}, ""
	return nil
}

func (f *ProfileForm) Edit(fn func(*profile.Profile)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if f.mode != Editing {
		return ErrNotEditing
	}
	fn(&f.draft)
	return nil
}

func (f *ProfileForm) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == Editing {
		f.mode, f.draft, f.errs = Idle, profile.Profile{}, validate.Errors{}
	}
}

// UploadPhoto sends the picked image and puts its URL into the draft.
func (f *ProfileForm) UploadPhoto(ctx context.Context, u *Upload) (string, error) {
	if f.Mode() != Editing {
		return "", ErrNotEditing
	}
	url, err := u.Send(ctx, f.api.UploadProfilePhoto)
	if err != nil {
		return "", err
	}
	return url, f.Edit(func(p *profile.Profile) { p.ProfilePhoto = url })
}

// SetMedia stores a photo or animation URL typed by hand.
func (f *ProfileForm) SetMedia(url string) error {
	return f.Edit(func(p *profile.Profile) { p.ProfilePhoto = url })
}

// Submit saves the draft with one update followed by one reload.
func (f *ProfileForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	switch f.mode {
	case Submitting:
		f.mu.Unlock()
		return ErrSubmitInFlight
	case Idle:
		f.mu.Unlock()
		return ErrNotEditing
	}
	if errs := profile.Validate(f.draft); len(errs) > 0 {
		f.errs = errs
		f.mu.Unlock()
		return ErrInvalidDraft
	}
	f.mode = Submitting
	d := f.draft
	f.mu.Unlock()

	_, err := f.api.UpdateProfile(ctx, profile.Patch{
		FirstName:    &d.FirstName,
		LastName:     &d.LastName,
		Email:        &d.Email,
		Bio:          &d.Bio,
		ProfilePhoto: &d.ProfilePhoto,
	})

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		f.mode = Editing
		f.errs = submitErrors(err, "Failed to update profile")
		f.mu.Unlock()
		return err
	}
	f.mode, f.draft, f.errs = Idle, profile.Profile{}, validate.Errors{}
	f.notice = "Profile updated successfully!"
	f.mu.Unlock()

	_ = f.Load(ctx)
	return nil
}

func (f *ProfileForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.mode = Idle
}

func (f *ProfileForm) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *ProfileForm) Current() profile.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *ProfileForm) Draft() profile.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ProfileForm) Errors() validate.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.errs)
}

func (f *ProfileForm) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// MediaKind tells how the stored media should be shown.
func (f *ProfileForm) MediaKind() profile.MediaKind {
	return profile.KindOf(f.Current().ProfilePhoto)
}

var _ ProfileAPI = (*client.Client)(nil)
