package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/project"
)

type ProjectHandler struct {
	svc project.UseCase
}

func NewProjectHandler(svc project.UseCase) *ProjectHandler { return &ProjectHandler{svc: svc} }

// List returns projects newest first. Visitors only see active ones.
// @Summary Список проектов
// @Tags    Проекты
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   page query int false "Номер страницы"
// @Param   page_size query int false "Размер страницы"
// @Success 200 {object} presenter.ListResponse[project.Project]
// @Router  /users/{userId}/projects/ [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	items, err := h.svc.List(c.Context(), userID, !isOwner(c, userID))
	if err != nil {
		return fail(c, "list projects", err, "failed to load projects")
	}
	return presenter.JSON(c, http.StatusOK, paginate(c, items))
}

// @Summary Создать проект
// @Tags    Проекты
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   input body project.Project true "Проект"
// @Security TokenAuth
// @Success 201 {object} project.Project
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/{userId}/projects/ [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	var p project.Project
	if err := c.BodyParser(&p); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Create(c.Context(), userID, p)
	if err != nil {
		return fail(c, "create project", err, "Failed to save project")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// @Summary Обновить проект
// @Tags    Проекты
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID проекта"
// @Param   input body project.Project true "Проект"
// @Security TokenAuth
// @Success 200 {object} project.Project
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/projects/{id}/ [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var p project.Project
	if err := c.BodyParser(&p); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Update(c.Context(), userID, id, p)
	if err != nil {
		return fail(c, "update project", err, "Failed to save project")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить проект
// @Tags    Проекты
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID проекта"
// @Security TokenAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/projects/{id}/ [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), userID, id); err != nil {
		return fail(c, "delete project", err, "Failed to delete project")
	}
	return c.SendStatus(http.StatusNoContent)
}
