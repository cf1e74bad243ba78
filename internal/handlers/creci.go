package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/aimob/aimob-backend/internal/services/creciapi"
)

type CreciHandler struct {
	API *creciapi.Service
}

// Validate repassa a consulta ao registro de corretores e devolve a resposta
// da API externa como veio, status incluído.
func (h *CreciHandler) Validate(c *fiber.Ctx) error {
	creci := c.Query("creci")
	if creci == "" {
		return fail(c, fiber.StatusBadRequest, "Informe o número do CRECI.")
	}

	body, status, err := h.API.Validate(creci)
	if err != nil {
		log.Println("erro ao conectar à API CRECI:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao conectar à API CRECI.")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(status).Send(body)
}
