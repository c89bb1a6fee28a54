package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/portfolio/api/http/presenter"
	"github.com/artem13815/portfolio/pkg/auth"
	"github.com/artem13815/portfolio/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Login handles admin login.
// @Summary Вход администратора
// @Tags    Авторизация
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "Логин и пароль"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c)
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "username and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		log.Printf("login: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{
		Token:    result.Token,
		ID:       result.User.ID,
		Username: result.User.Username,
	})
}

// Logout revokes the presented token.
// @Summary Выход (отзыв токена)
// @Tags    Авторизация
// @Produce json
// @Security TokenAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/logout/ [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenID, exp := jwt.TokenID(c)
	if err := h.useCase.Logout(c.Context(), tokenID, exp); err != nil {
		log.Printf("logout: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to logout")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "logged out"})
}
