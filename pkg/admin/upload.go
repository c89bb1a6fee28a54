package admin

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxImageBytes is the largest image accepted before any request is made.
const MaxImageBytes int64 = 5 << 20

var (
	ErrImageTooLarge = errors.New("image must be smaller than 5MB")
	ErrNotAnImage    = errors.New("please select an image file")
)

// ValidateImage checks size and type of a picked file.
func ValidateImage(size int64, contentType string) error {
	if size > MaxImageBytes {
		return ErrImageTooLarge
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/") {
		return ErrNotAnImage
	}
	return nil
}

// UploadFunc sends an image and returns its public URL.
// client.Client.UploadImage and UploadProfilePhoto have this shape.
type UploadFunc func(ctx context.Context, filename string, r io.Reader) (string, error)

// Upload is a picked image waiting to be sent.
type Upload struct {
	Filename    string
	ContentType string
	data        []byte
}

// NewUpload reads and validates the file. The type is the one declared by
// the file extension; content is sniffed only when the extension says nothing.
func NewUpload(filename string, r io.Reader) (*Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	ct := declaredType(filename)
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	if err := ValidateImage(int64(len(data)), ct); err != nil {
		return nil, err
	}
	return &Upload{Filename: filename, ContentType: ct, data: data}, nil
}

func declaredType(filename string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil || mt == "application/octet-stream" {
		return ""
	}
	return mt
}

func (u *Upload) Size() int64 { return int64(len(u.data)) }

// Preview renders the image as a data: URL for display before upload.
func (u *Upload) Preview() string {
	return "data:" + u.ContentType + ";base64," + base64.StdEncoding.EncodeToString(u.data)
}

// Send uploads the image and returns its URL.
func (u *Upload) Send(ctx context.Context, send UploadFunc) (string, error) {
	return send(ctx, u.Filename, bytes.NewReader(u.data))
}

// UploadInto sends u and stores the returned URL in the open draft of e
// with set. The record itself is saved only by a later Submit.
func UploadInto[T any](ctx context.Context, e *Editor[T], u *Upload, send UploadFunc, set func(*T, string)) (string, error) {
	if m := e.Mode(); m != Creating && m != Editing {
		return "", ErrNotEditing
	}
	url, err := u.Send(ctx, send)
	if err != nil {
		return "", err
	}
	if err := e.Edit(func(d *T) { set(d, url) }); err != nil {
		return "", err
	}
	return url, nil
}
