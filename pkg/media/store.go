// Package media stores uploaded images on the local filesystem.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const DefaultMaxBytes int64 = 5 << 20

var (
	ErrTooLarge = errors.New("file too large")
	ErrNotImage = errors.New("file is not an image")
)

// Store saves images under Dir and hands out URLs below BaseURL + "/uploads".
type Store struct {
	Dir      string
	BaseURL  string
	MaxBytes int64
}

func NewStore(dir, baseURL string, maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), MaxBytes: maxBytes}
}

// Save validates and writes one image under a fresh uuid name inside
// folder (e.g. "blog", "profile") and returns its public URL.
func (s *Store) Save(_ context.Context, folder, filename string, r io.Reader) (string, error) {
	data, err := readAtMost(r, s.MaxBytes)
	if err != nil {
		return "", err
	}
	ext, err := imageExt(filename, data)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(s.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare storage: %w", err)
	}
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return s.BaseURL + "/uploads/" + folder + "/" + name, nil
}

// Writable reports whether the upload directory can be created and written.
func (s *Store) Writable(_ context.Context) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(s.Dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, max)
	}
	return b, nil
}

// imageExt sniffs the content type; the extension of filename is kept when
// it looks sane, otherwise one is derived from the sniffed type.
func imageExt(filename string, data []byte) (string, error) {
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") && !isSVG(data) {
		return "", ErrNotImage
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp", ".ico":
		return ext, nil
	}
	switch ct {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/gif":
		return ".gif", nil
	case "image/webp":
		return ".webp", nil
	}
	return ".img", nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}
