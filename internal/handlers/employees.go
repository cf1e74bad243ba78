package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{DB: db}
}

type EmployeeReq struct {
	CPF     string `json:"cpf"`
	CRECI   string `json:"creci"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Create exige que a conta autenticada tenha a tag EMPLOYEE e ainda não
// possua perfil de corretor.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req EmployeeReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	if user.Roles != models.RoleEmployee {
		return fail(c, fiber.StatusNotFound, "User does not have the role of EMPLOYEE.")
	}

	var existing models.Employee
	if err := h.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusNotFound, "Employee already exists for this user.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}

	employee := models.Employee{
		UserID:  userID,
		CPF:     req.CPF,
		CRECI:   req.CRECI,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.DB.Create(&employee).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o perfil.")
	}
	return ok(c, fiber.StatusCreated, employee)
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var employees []models.Employee
	if err := h.DB.Preload("User").Find(&employees).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar corretores.")
	}
	return ok(c, fiber.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var employee models.Employee
	if err := h.DB.Preload("User").First(&employee, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Corretor não encontrado.")
	}
	return ok(c, fiber.StatusOK, employee)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var employee models.Employee
	if err := h.DB.First(&employee, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Corretor não encontrado.")
	}

	var req EmployeeReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.CPF != "" {
		employee.CPF = req.CPF
	}
	if req.CRECI != "" {
		employee.CRECI = req.CRECI
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Address != "" {
		employee.Address = req.Address
	}

	if err := h.DB.Save(&employee).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o perfil.")
	}
	return ok(c, fiber.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var employee models.Employee
	if err := h.DB.First(&employee, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Corretor não encontrado.")
	}
	if err := h.DB.Delete(&employee).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o perfil.")
	}
	return ok(c, fiber.StatusOK, employee)
}
