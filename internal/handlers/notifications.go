package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/models"
)

type NotificationHandler struct {
	DB *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{DB: db}
}

type NotificationReq struct {
	TaskID uint  `json:"taskId"`
	Read   *bool `json:"read"`
}

func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req NotificationReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	var task models.Task
	if err := h.DB.First(&task, req.TaskID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Tarefa não encontrada.")
	}

	notification := models.Notification{TaskID: req.TaskID}
	if err := h.DB.Create(&notification).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar a notificação.")
	}
	return ok(c, fiber.StatusCreated, notification)
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	var notifications []models.Notification
	if err := h.DB.Preload("Task").Find(&notifications).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar notificações.")
	}
	return ok(c, fiber.StatusOK, notifications)
}

func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var notification models.Notification
	if err := h.DB.Preload("Task").First(&notification, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Notificação não encontrada.")
	}
	return ok(c, fiber.StatusOK, notification)
}

func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var notification models.Notification
	if err := h.DB.First(&notification, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Notificação não encontrada.")
	}

	var req NotificationReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.Read != nil {
		notification.Read = *req.Read
	}

	if err := h.DB.Save(&notification).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar a notificação.")
	}
	return ok(c, fiber.StatusOK, notification)
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var notification models.Notification
	if err := h.DB.First(&notification, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Notificação não encontrada.")
	}
	if err := h.DB.Delete(&notification).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir a notificação.")
	}
	return ok(c, fiber.StatusOK, notification)
}
