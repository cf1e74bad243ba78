package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
)

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db}
}

type ClientReq struct {
	CPF        string   `json:"cpf"`
	Phone      string   `json:"phone"`
	Address    string   `json:"address"`
	Income     *float64 `json:"income"`
	Profession string   `json:"profession"`
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req ClientReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	if user.Roles != models.RoleClient {
		return fail(c, fiber.StatusNotFound, "User does not have the role of CLIENT.")
	}

	var existing models.Client
	if err := h.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusNotFound, "Client already exists for this user.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}

	client := models.Client{
		UserID:     userID,
		CPF:        req.CPF,
		Phone:      req.Phone,
		Address:    req.Address,
		Profession: req.Profession,
	}
	if req.Income != nil {
		client.Income = *req.Income
	}
	if err := h.DB.Create(&client).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}
	return ok(c, fiber.StatusCreated, client)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	var clients []models.Client
	if err := h.DB.Preload("User").Find(&clients).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar clientes.")
	}
	return ok(c, fiber.StatusOK, clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var client models.Client
	if err := h.DB.Preload("User").First(&client, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Cliente não encontrado.")
	}
	return ok(c, fiber.StatusOK, client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var client models.Client
	if err := h.DB.First(&client, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Cliente não encontrado.")
	}

	var req ClientReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.CPF != "" {
		client.CPF = req.CPF
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}
	if req.Address != "" {
		client.Address = req.Address
	}
	if req.Profession != "" {
		client.Profession = req.Profession
	}
	if req.Income != nil {
		client.Income = *req.Income
	}

	if err := h.DB.Save(&client).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o perfil.")
	}
	return ok(c, fiber.StatusOK, client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var client models.Client
	if err := h.DB.First(&client, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Cliente não encontrado.")
	}
	if err := h.DB.Delete(&client).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o perfil.")
	}
	return ok(c, fiber.StatusOK, client)
}
