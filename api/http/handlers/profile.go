package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/profile"
	"github.com/artem13815/portfolio/pkg/security/jwt"
)

type ProfileHandler struct {
	svc    profile.UseCase
	images ImageStore
}

func NewProfileHandler(svc profile.UseCase, images ImageStore) *ProfileHandler {
	return &ProfileHandler{svc: svc, images: images}
}

// Get returns the public page aggregate of a user.
// @Summary Публичный профиль
// @Tags    Профиль
// @Produce json
// @Param   userId path int true "ID владельца"
// @Success 200 {object} profile.Data
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/profile/ [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	data, err := h.svc.Data(c.Context(), userID, isOwner(c, userID))
	if err != nil {
		return fail(c, "get profile", err, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// Update patches the caller's own profile.
// @Summary Обновить профиль
// @Tags    Профиль
// @Accept  json
// @Produce json
// @Param   input body profile.Patch true "Изменённые поля"
// @Security TokenAuth
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/profile/ [patch]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "authentication required")
	}
	var patch profile.Patch
	if err := c.BodyParser(&patch); err != nil {
		return badJSON(c)
	}
	p, err := h.svc.Update(c.Context(), userID, patch)
	if err != nil {
		return fail(c, "update profile", err, "failed to update profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// UploadPhoto stores a profile photo and returns its URL without saving it
// on the profile.
// @Summary Загрузить фото профиля
// @Tags    Профиль
// @Accept  multipart/form-data
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   profile_photo formData file true "Изображение до 5 МБ"
// @Security TokenAuth
// @Success 201 {object} presenter.URLResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/{userId}/photo/ [post]
func (h *ProfileHandler) UploadPhoto(c *fiber.Ctx) error {
	return saveImage(c, h.images, "profile_photo", "profile")
}

// Links lists social links; inactive ones only for the owner.
// @Summary Ссылки на соцсети
// @Tags    Соцсети
// @Produce json
// @Param   userId path int true "ID владельца"
// @Success 200 {array} profile.SocialLink
// @Router  /users/{userId}/social-links/ [get]
func (h *ProfileHandler) Links(c *fiber.Ctx) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	links, err := h.svc.Links(c.Context(), userID, isOwner(c, userID))
	if err != nil {
		return fail(c, "list links", err, "failed to load social links")
	}
	return presenter.JSON(c, http.StatusOK, links)
}

// @Summary Создать ссылку на соцсеть
// @Tags    Соцсети
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   input body profile.SocialLink true "Ссылка"
// @Security TokenAuth
// @Success 201 {object} profile.SocialLink
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/{userId}/social-links/ [post]
func (h *ProfileHandler) CreateLink(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	var l profile.SocialLink
	if err := c.BodyParser(&l); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.CreateLink(c.Context(), userID, l)
	if err != nil {
		return fail(c, "create link", err, "failed to save social link")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// @Summary Обновить ссылку на соцсеть
// @Tags    Соцсети
// @Accept  json
// @Produce json
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID ссылки"
// @Param   input body profile.SocialLink true "Ссылка"
// @Security TokenAuth
// @Success 200 {object} profile.SocialLink
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/social-links/{id}/ [put]
func (h *ProfileHandler) UpdateLink(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var l profile.SocialLink
	if err := c.BodyParser(&l); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.UpdateLink(c.Context(), userID, id, l)
	if err != nil {
		return fail(c, "update link", err, "failed to save social link")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить ссылку на соцсеть
// @Tags    Соцсети
// @Param   userId path int true "ID владельца"
// @Param   id path int true "ID ссылки"
// @Security TokenAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{userId}/social-links/{id}/ [delete]
func (h *ProfileHandler) DeleteLink(c *fiber.Ctx) error {
	userID, _ := pathID(c, "userId")
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteLink(c.Context(), userID, id); err != nil {
		return fail(c, "delete link", err, "failed to delete social link")
	}
	return c.SendStatus(http.StatusNoContent)
}
