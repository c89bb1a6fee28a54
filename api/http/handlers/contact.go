package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/contact"
	"github.com/artem13815/portfolio/pkg/mail"
	"github.com/artem13815/portfolio/pkg/validate"
)

type ContactHandler struct {
	svc contact.UseCase
}

func NewContactHandler(svc contact.UseCase) *ContactHandler { return &ContactHandler{svc: svc} }

// Send relays a visitor message to the owner by e-mail.
// @Summary Форма обратной связи
// @Tags    Обратная связь
// @Accept  json
// @Produce json
// @Param   input body contact.Message true "Сообщение"
// @Success 202 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /contact/ [post]
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var m contact.Message
	if err := c.BodyParser(&m); err != nil {
		return badJSON(c)
	}
	err := h.svc.Send(c.Context(), m)
	var fields validate.Errors
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusAccepted, fiber.Map{"message": "Message sent"})
	case errors.As(err, &fields):
		return presenter.ValidationError(c, fields)
	case errors.Is(err, mail.ErrNotConfigured):
		return presenter.Error(c, http.StatusServiceUnavailable, "contact form is not available")
	}
	log.Printf("contact: %v", err)
	return presenter.Error(c, http.StatusBadGateway, "Failed to send message. Please try again.")
}
