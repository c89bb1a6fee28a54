package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/experience"
)

type ExperienceHandler struct {
	svc experience.UseCase
}

func NewExperienceHandler(svc experience.UseCase) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

// @Summary Опыт работы
// @Tags    Опыт работы
// @Produce json
// @Param   userId path int true "ID владельца"
// @Success 200 {array} experience.Experience
// @Router  /users/{userId}/work-experience/ [get]
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	items, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return fail(c, "list experience", err, "failed to load work experience")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// @Summary Добавить место работы
// @Tags    Опыт работы
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   input body experience.Experience true "Место работы"
// @Security TokenAuth
// @Success 201 {object} experience.Experience
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/{userId}/work-experience/ [post]
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	var e experience.Experience
	if err := c.BodyParser(&e); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Create(c.Context(), userID, e)
	if err != nil {
		return fail(c, "create experience", err, "Failed to save experience")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// @Summary Обновить место работы
// @Tags    Опыт работы
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID места работы"
// @Param   input body experience.Experience true "Место работы"
// @Security TokenAuth
// @Success 200 {object} experience.Experience
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/work-experience/{id}/ [put]
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var e experience.Experience
	if err := c.BodyParser(&e); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Update(c.Context(), userID, id, e)
	if err != nil {
		return fail(c, "update experience", err, "Failed to save experience")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить место работы
// @Tags    Опыт работы
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID места работы"
// @Security TokenAuth
// @Success 204
// @Router  /users/{userId}/work-experience/{id}/ [delete]
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), userID, id); err != nil {
		return fail(c, "delete experience", err, "Failed to delete experience")
	}
	return c.SendStatus(http.StatusNoContent)
}
