package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/utils"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	Expires   int
}

type LoginReq struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Login valida usuário+senha e emite o JWT. Qualquer falha responde 401 com
// a mesma mensagem, sem distinguir usuário inexistente de senha errada.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	handle := strings.TrimSpace(req.User)
	password := strings.TrimSpace(req.Password)
	if handle == "" || password == "" {
		return fail(c, fiber.StatusBadRequest, "Usuário e senha são obrigatórios.")
	}

	var u models.User
	if err := h.DB.Where(`"user" = ?`, handle).First(&u).Error; err != nil {
		return fail(c, fiber.StatusUnauthorized, "Email ou senha enviados estão incorretos.")
	}

	if !utils.CheckPassword(u.Password, password) {
		return fail(c, fiber.StatusUnauthorized, "Email ou senha enviados estão incorretos.")
	}

	token, err := utils.SignJWT(h.JWTSecret, u.ID, u.User, h.Expires)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar o token.")
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"access_token": token,
		"user_name":    u.User,
	})
}
