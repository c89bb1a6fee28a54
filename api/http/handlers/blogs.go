package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/blog"
	"github.com/artem13815/portfolio/pkg/security/jwt"
)

type BlogHandler struct {
	svc    blog.UseCase
	images ImageStore
}

func NewBlogHandler(svc blog.UseCase, images ImageStore) *BlogHandler {
	return &BlogHandler{svc: svc, images: images}
}

func blogQuery(c *fiber.Ctx) blog.Query {
	page, size, limit := pageQuery(c)
	return blog.Query{
		Search:       c.Query("search"),
		FeaturedOnly: queryBool(c, "featured"),
		ExcludeID:    int64(queryInt(c, "exclude_id", 1, 0)),
		Ordering:     c.Query("ordering"),
		Page:         page,
		PageSize:     size,
		Limit:        limit,
	}
}

// List returns published posts.
// @Summary Список опубликованных статей
// @Tags    Блог
// @Produce json
// @Param   page query int false "Номер страницы, с 1"
// @Param   page_size query int false "Размер страницы (по умолчанию 9)"
// @Param   limit query int false "Вернуть только первые N статей"
// @Param   search query string false "Подстрока заголовка, текста или анонса"
// @Param   featured query bool false "Только избранные статьи"
// @Param   exclude_id query int false "ID статьи, которую нужно исключить"
// @Param   ordering query string false "Например -views,-created_at"
// @Success 200 {object} blog.Page
// @Router  /blogs/ [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	page, err := h.svc.Published(c.Context(), blogQuery(c))
	if err != nil {
		return fail(c, "list blogs", err, "failed to load posts")
	}
	return presenter.JSON(c, http.StatusOK, page)
}

// @Summary Избранная статья
// @Tags    Блог
// @Produce json
// @Success 200 {object} blog.Post
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /blogs/featured/ [get]
func (h *BlogHandler) Featured(c *fiber.Ctx) error {
	p, err := h.svc.Featured(c.Context())
	if err != nil {
		return fail(c, "featured blog", err, "failed to load post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// Detail returns a published post by slug and counts the view.
// @Summary Статья по slug
// @Tags    Блог
// @Produce json
// @Param   slug path string true "Slug статьи"
// @Success 200 {object} blog.Post
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /blogs/{slug}/ [get]
func (h *BlogHandler) Detail(c *fiber.Ctx) error {
	p, err := h.svc.Read(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, "read blog", err, "failed to load post")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// @Summary Статьи текущего пользователя в любом статусе
// @Tags    Блог
// @Produce json
// @Security TokenAuth
// @Success 200 {object} blog.Page
// @Router  /user/blogs/ [get]
func (h *BlogHandler) Mine(c *fiber.Ctx) error {
	uid, _ := jwt.UserID(c)
	page, err := h.svc.Mine(c.Context(), uid, blogQuery(c))
	if err != nil {
		return fail(c, "list own blogs", err, "failed to load posts")
	}
	return presenter.JSON(c, http.StatusOK, page)
}

// @Summary Создать статью
// @Tags    Блог
// @Accept  json
// @Produce json
// @Param   input body blog.Post true "Статья; по умолчанию статус draft"
// @Security TokenAuth
// @Success 201 {object} blog.Post
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /blogs/create/ [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	uid, _ := jwt.UserID(c)
	var p blog.Post
	if err := c.BodyParser(&p); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Create(c.Context(), uid, p)
	if err != nil {
		return fail(c, "create blog", err, "Failed to save post")
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// @Summary Обновить статью
// @Tags    Блог
// @Accept  json
// @Produce json
// @Param   id path int true "ID статьи"
// @Param   input body blog.Patch true "Изменённые поля; slug менять нельзя"
// @Security TokenAuth
// @Success 200 {object} blog.Post
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /blogs/{id}/update/ [patch]
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	uid, _ := jwt.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	var patch blog.Patch
	if err := c.BodyParser(&patch); err != nil {
		return badJSON(c)
	}
	out, err := h.svc.Update(c.Context(), uid, id, patch)
	if err != nil {
		return fail(c, "update blog", err, "Failed to save post")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// @Summary Удалить статью
// @Tags    Блог
// @Param   id path int true "ID статьи"
// @Security TokenAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /blogs/{id}/delete/ [delete]
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	uid, _ := jwt.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Context(), uid, id); err != nil {
		return fail(c, "delete blog", err, "Failed to delete post")
	}
	return c.SendStatus(http.StatusNoContent)
}

// @Summary Загрузить обложку статьи
// @Tags    Блог
// @Accept  multipart/form-data
// @Produce json
// @Param   featured_image formData file true "Изображение до 5 МБ"
// @Security TokenAuth
// @Success 201 {object} presenter.URLResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /blogs/upload-image/ [post]
func (h *BlogHandler) UploadImage(c *fiber.Ctx) error {
	return saveImage(c, h.images, "featured_image", "blog")
}
