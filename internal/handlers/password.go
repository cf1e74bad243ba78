package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/services/mailer"
	"github.com/aimob/aimob-backend/internal/utils"
)

type PasswordHandler struct {
	DB     *gorm.DB
	Mailer mailer.Sender
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

// SendResetCode grava um código curto no usuário e o envia por e-mail.
func (h *PasswordHandler) SendResetCode(c *fiber.Ctx) error {
	var req ForgotPasswordReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}

	resetCode := uuid.NewString()[:6]
	if err := h.DB.Model(&user).Update("reset_code", resetCode).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar o código de redefinição.")
	}

	if h.Mailer != nil {
		body := fmt.Sprintf("Seu código de recuperação de senha é: %s", resetCode)
		if err := h.Mailer.Send(email, "Recuperação de Senha", body); err != nil {
			log.Println("erro ao enviar código de redefinição:", err)
			return fail(c, fiber.StatusInternalServerError, "Erro ao enviar o código de redefinição.")
		}
	}

	return okMessage(c, "Código de redefinição enviado com sucesso!")
}

type ResetPasswordReq struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword valida o código (uso único), troca a senha e limpa o código.
func (h *PasswordHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}

	if user.ResetCode == nil || *user.ResetCode != req.Code {
		return fail(c, fiber.StatusBadRequest, "Código de redefinição inválido.")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao redefinir a senha. Tente novamente.")
	}

	updates := map[string]interface{}{"password": hashed, "reset_code": nil}
	if err := h.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Println("erro ao redefinir a senha:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao redefinir a senha. Tente novamente.")
	}

	return okMessage(c, "Senha redefinida com sucesso!")
}
