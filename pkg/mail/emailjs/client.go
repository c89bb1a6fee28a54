package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/artem13815/portfolio/pkg/mail"
)

// Client sends template e-mails through the EmailJS REST API.
type Client struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
	httpDo     *http.Client
}

func New(serviceID, templateID, publicKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.emailjs.com/api/v1.0"
	}
	return &Client{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpDo: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *Client) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Send posts the message once. EmailJS answers 200 "OK" on success; any other
// status is returned as an error with the response text.
func (c *Client) Send(ctx context.Context, msg mail.Message) error {
	if !c.Configured() {
		return mail.ErrNotConfigured
	}
	data, err := json.Marshal(sendRequest{
		ServiceID:      c.ServiceID,
		TemplateID:     c.TemplateID,
		UserID:         c.PublicKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/email/send", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("emailjs http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
