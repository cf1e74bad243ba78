package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
)

type OwnerHandler struct {
	DB *gorm.DB
}

func NewOwnerHandler(db *gorm.DB) *OwnerHandler {
	return &OwnerHandler{DB: db}
}

type OwnerReq struct {
	CPF           string `json:"cpf"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	MaritalStatus string `json:"marital_status"`
}

func (h *OwnerHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req OwnerReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	if user.Roles != models.RoleOwner {
		return fail(c, fiber.StatusNotFound, "User does not have the role of OWNER.")
	}

	var existing models.Owner
	if err := h.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusNotFound, "Owner already exists for this user.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}

	owner := models.Owner{
		UserID:        userID,
		CPF:           req.CPF,
		Phone:         req.Phone,
		Address:       req.Address,
		MaritalStatus: req.MaritalStatus,
	}
	if err := h.DB.Create(&owner).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}
	return ok(c, fiber.StatusCreated, owner)
}

func (h *OwnerHandler) List(c *fiber.Ctx) error {
	var owners []models.Owner
	if err := h.DB.Preload("User").Find(&owners).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar proprietários.")
	}
	return ok(c, fiber.StatusOK, owners)
}

func (h *OwnerHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var owner models.Owner
	if err := h.DB.Preload("User").First(&owner, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Proprietário não encontrado.")
	}
	return ok(c, fiber.StatusOK, owner)
}

func (h *OwnerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var owner models.Owner
	if err := h.DB.First(&owner, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Proprietário não encontrado.")
	}

	var req OwnerReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.CPF != "" {
		owner.CPF = req.CPF
	}
	if req.Phone != "" {
		owner.Phone = req.Phone
	}
	if req.Address != "" {
		owner.Address = req.Address
	}
	if req.MaritalStatus != "" {
		owner.MaritalStatus = req.MaritalStatus
	}

	if err := h.DB.Save(&owner).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o perfil.")
	}
	return ok(c, fiber.StatusOK, owner)
}

func (h *OwnerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var owner models.Owner
	if err := h.DB.First(&owner, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Proprietário não encontrado.")
	}
	if err := h.DB.Delete(&owner).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o perfil.")
	}
	return ok(c, fiber.StatusOK, owner)
}
