package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
)

type TaskHandler struct {
	DB *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

type TaskReq struct {
	Status        string `json:"status"`
	Description   string `json:"description"`
	ContactID     uint   `json:"contactId"`
	EstateID      uint   `json:"estateId"`
	AppointmentID *uint  `json:"appointmentId"`
}

// Create resolve o corretor através do imóvel e devolve a tarefa já
// existente quando a tripla (agendamento, contato, imóvel) se repete.
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var req TaskReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var userID uint
	if req.EstateID != 0 {
		var estate models.RealEstate
		if err := h.DB.First(&estate, req.EstateID).Error; err == nil {
			userID = estate.UserID
		}
	}
	if userID == 0 {
		return fail(c, fiber.StatusBadRequest, "A tarefa deve estar associada a um usuário.")
	}

	dup := h.DB.Where("contact_id = ? AND estate_id = ?", req.ContactID, req.EstateID)
	if req.AppointmentID != nil {
		dup = dup.Where("appointment_id = ?", *req.AppointmentID)
	} else {
		dup = dup.Where("appointment_id IS NULL")
	}
	var existing models.Task
	if err := dup.First(&existing).Error; err == nil {
		return ok(c, fiber.StatusOK, existing)
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar a tarefa.")
	}

	task := models.Task{
		Status:        req.Status,
		Description:   req.Description,
		UserID:        userID,
		ContactID:     req.ContactID,
		EstateID:      req.EstateID,
		AppointmentID: req.AppointmentID,
	}
	if err := h.DB.Create(&task).Error; err != nil {
		log.Println("erro ao criar a tarefa:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar a tarefa.")
	}
	return ok(c, fiber.StatusCreated, task)
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var tasks []models.Task
	if err := h.DB.Where("user_id = ?", userID).
		Preload("Contact").Preload("Appointment").Preload("RealEstate").
		Find(&tasks).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar tarefas.")
	}
	return ok(c, fiber.StatusOK, tasks)
}

func (h *TaskHandler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var task models.Task
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Contact").Preload("Appointment").Preload("RealEstate").
		First(&task).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Tarefa não encontrada.")
	}
	return ok(c, fiber.StatusOK, task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var task models.Task
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Tarefa não encontrada ou acesso negado.")
	}

	var req TaskReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Description != "" {
		task.Description = req.Description
	}

	if err := h.DB.Save(&task).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar a tarefa.")
	}
	return ok(c, fiber.StatusOK, task)
}

// Delete remove a tarefa e o agendamento ligado a ela; o contato só cai
// quando esta era a última tarefa que o referenciava.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var task models.Task
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Tarefa não encontrada ou acesso negado.")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&task).Error; err != nil {
			return err
		}

		if task.AppointmentID != nil {
			if err := tx.Delete(&models.Appointment{}, *task.AppointmentID).Error; err != nil {
				return err
			}
		}

		var remaining int64
		if err := tx.Model(&models.Task{}).Where("contact_id = ?", task.ContactID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			if err := tx.Delete(&models.Contact{}, task.ContactID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Println("erro ao excluir a tarefa:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir a tarefa.")
	}

	return ok(c, fiber.StatusOK, task)
}
