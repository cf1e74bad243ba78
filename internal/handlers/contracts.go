package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/models"
)

type ContractHandler struct {
	DB *gorm.DB
}

func NewContractHandler(db *gorm.DB) *ContractHandler {
	return &ContractHandler{DB: db}
}

type ContractReq struct {
	ClientID   uint       `json:"clientId"`
	EmployeeID uint       `json:"employeeId"`
	EstateID   uint       `json:"estateId"`
	Type       string     `json:"type"`
	Value      *float64   `json:"value"`
	Terms      string     `json:"terms"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
}

// Create valida que cliente, corretor e imóvel existem antes de gravar.
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var req ContractReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var client models.Client
	if err := h.DB.First(&client, req.ClientID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Cliente não encontrado.")
	}
	var employee models.Employee
	if err := h.DB.First(&employee, req.EmployeeID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Corretor não encontrado.")
	}
	var estate models.RealEstate
	if err := h.DB.First(&estate, req.EstateID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}

	contract := models.Contract{
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		EstateID:   req.EstateID,
		Type:       req.Type,
		Terms:      req.Terms,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if req.Value != nil {
		contract.Value = *req.Value
	}
	if err := h.DB.Create(&contract).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o contrato.")
	}
	return ok(c, fiber.StatusCreated, contract)
}

func (h *ContractHandler) List(c *fiber.Ctx) error {
	var contracts []models.Contract
	if err := h.DB.Preload("Client").Preload("Employee").Preload("RealEstate").
		Find(&contracts).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar contratos.")
	}
	return ok(c, fiber.StatusOK, contracts)
}

func (h *ContractHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contract models.Contract
	if err := h.DB.Preload("Client").Preload("Employee").Preload("RealEstate").
		First(&contract, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contrato não encontrado.")
	}
	return ok(c, fiber.StatusOK, contract)
}

func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contract models.Contract
	if err := h.DB.First(&contract, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contrato não encontrado.")
	}

	var req ContractReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.Type != "" {
		contract.Type = req.Type
	}
	if req.Terms != "" {
		contract.Terms = req.Terms
	}
	if req.Value != nil {
		contract.Value = *req.Value
	}
	if req.StartDate != nil {
		contract.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		contract.EndDate = req.EndDate
	}

	if err := h.DB.Save(&contract).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o contrato.")
	}
	return ok(c, fiber.StatusOK, contract)
}

func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contract models.Contract
	if err := h.DB.First(&contract, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contrato não encontrado.")
	}
	if err := h.DB.Delete(&contract).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o contrato.")
	}
	return ok(c, fiber.StatusOK, contract)
}
