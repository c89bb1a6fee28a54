package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/artem13815/portfolio/pkg/contact"
)

// Session is the login answer.
type Session struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var out Session
	body := map[string]string{"username": username, "password": password}
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login/", body: body}, &out)
	return out, err
}

// Logout revokes the current token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/auth/logout/", auth: true}, nil)
}

func (c *Client) SendContact(ctx context.Context, m contact.Message) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/contact/", body: m}, nil)
}

type uploadAnswer struct {
	URL string `json:"url"`
}

// UploadImage stores a blog image and returns its URL. The post itself is
// not changed.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, "/blogs/upload-image/", "featured_image", filename, r)
}

// UploadProfilePhoto stores a profile photo and returns its URL.
func (c *Client) UploadProfilePhoto(ctx context.Context, filename string, r io.Reader) (string, error) {
	return c.upload(ctx, c.userPath("/photo/"), "profile_photo", filename, r)
}

func (c *Client) upload(ctx context.Context, path, field, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	var out uploadAnswer
	err = c.do(ctx, call{
		method:      http.MethodPost,
		path:        path,
		raw:         &buf,
		contentType: w.FormDataContentType(),
		auth:        true,
	}, &out)
	return out.URL, err
}
