package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/skill"
)

type SkillHandler struct {
	svc skill.UseCase
}

func NewSkillHandler(svc skill.UseCase) *SkillHandler { return &SkillHandler{svc: svc} }

// @Summary Список групп навыков
// @Tags    Навыки
// @Produce json
// @Param   userId path int true "ID владельца"
// @Success 200 {object} presenter.ListResponse[skill.Group]
// @Router  /users/{userId}/skills/ [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	groups, err := h.svc.List(c.Context(), userID)
	if err != nil {
		return fail(c, "list skills", err, "failed to load skills")
	}
	return presenter.JSON(c, http.StatusOK, paginate(c, groups))
}

// @Summary Создать группу навыков
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   input body skill.Group true "category_id и skills_list"
// @Security TokenAuth
// @Success 201 {object} skill.Group
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/{userId}/skills/ [post]
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	var g skill.Group
	if err := c.BodyParser(&g); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Create(c.Context(), userID, g)
	if err != nil {
		return fail(c, "create skill", err, "Failed to save skill")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// @Summary Обновить группу навыков
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID группы"
// @Param   input body skill.Group true "category_id и skills_list"
// @Security TokenAuth
// @Success 200 {object} skill.Group
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/skills/{id}/ [put]
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var g skill.Group
	if err := c.BodyParser(&g); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Update(c.Context(), userID, id, g)
	if err != nil {
		return fail(c, "update skill", err, "Failed to save skill")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить группу навыков
// @Tags    Навыки
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID группы"
// @Security TokenAuth
// @Success 204
// @Router  /users/{userId}/skills/{id}/ [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), userID, id); err != nil {
		return fail(c, "delete skill", err, "Failed to delete skill")
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Список категорий навыков
// @Tags    Навыки
// @Produce json
// @Success 200 {array} skill.Category
// @Router  /skill-categories/ [get]
func (h *SkillHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.svc.Categories(c.Context())
	if err != nil {
		return fail(c, "list categories", err, "failed to load categories")
	}
	return presenter.JSON(c, http.StatusOK, cats)
}

// @Summary Создать категорию навыков
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   input body skill.Category true "Название и описание"
// @Security TokenAuth
// @Success 201 {object} skill.Category
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /skill-categories/ [post]
func (h *SkillHandler) CreateCategory(c *fiber.Ctx) error {
	var cat skill.Category
	if err := c.BodyParser(&cat); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.CreateCategory(c.Context(), cat)
	if err != nil {
		return fail(c, "create category", err, "Failed to save category")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}
