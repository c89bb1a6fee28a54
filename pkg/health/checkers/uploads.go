package checkers

import "context"

// Writable is satisfied by the media store.
type Writable interface {
	Writable(ctx context.Context) error
}

// UploadDirChecker fails when uploaded images could not be stored.
type UploadDirChecker struct {
	store Writable
}

func NewUploadDirChecker(store Writable) *UploadDirChecker {
	return &UploadDirChecker{store: store}
}

func (c *UploadDirChecker) Name() string { return "uploads" }

func (c *UploadDirChecker) Check(ctx context.Context) error {
	return c.store.Writable(ctx)
}
