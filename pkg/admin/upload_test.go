package admin

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/blog"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage(1024, "image/png"))
	assert.NoError(t, ValidateImage(MaxImageBytes, "IMAGE/JPEG"))
	assert.ErrorIs(t, ValidateImage(MaxImageBytes+1, "image/png"), ErrImageTooLarge)
	assert.ErrorIs(t, ValidateImage(10, "application/pdf"), ErrNotAnImage)
}

func TestNewUploadRejectsBeforeSending(t *testing.T) {
	_, err := NewUpload("notes.txt", strings.NewReader("just text"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	_, err = NewUpload("notes", strings.NewReader("just text"))
	assert.ErrorIs(t, err, ErrNotAnImage)

	big := io.MultiReader(bytes.NewReader(pngHeader), bytes.NewReader(make([]byte, MaxImageBytes)))
	_, err = NewUpload("big.png", big)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestNewUploadTypeFromExtension(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`
	u, err := NewUpload("logo.svg", strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", u.ContentType)
	assert.True(t, strings.HasPrefix(u.Preview(), "data:image/svg+xml;base64,"))

	u, err = NewUpload("LOGO.SVG", strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", u.ContentType)

	u, err = NewUpload("photo", bytes.NewReader(pngHeader))
	require.NoError(t, err, "no extension falls back to the content")
	assert.Equal(t, "image/png", u.ContentType)
}

func TestUploadIntoMergesURL(t *testing.T) {
	u, err := NewUpload("cover.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, "image/png", u.ContentType)
	assert.True(t, strings.HasPrefix(u.Preview(), "data:image/png;base64,"))

	ed, res := newBlogs()
	sent := 0
	send := func(_ context.Context, name string, r io.Reader) (string, error) {
		sent++
		data, _ := io.ReadAll(r)
		assert.Equal(t, pngHeader, data)
		return "http://media.test/uploads/blog/" + name, nil
	}

	_, err = UploadInto(context.Background(), ed, u, send, func(p *blog.Post, url string) { p.FeaturedImage = url })
	assert.ErrorIs(t, err, ErrNotEditing)
	assert.Zero(t, sent)

	require.NoError(t, ed.BeginCreate(blog.Post{}))
	url, err := UploadInto(context.Background(), ed, u, send, func(p *blog.Post, url string) { p.FeaturedImage = url })
	require.NoError(t, err)
	assert.Equal(t, url, ed.Draft().FeaturedImage)
	assert.Empty(t, res.Calls(), "uploading does not save the record")
}
