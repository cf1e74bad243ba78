package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/report"
)

type ContactHandler struct {
	DB      *gorm.DB
	Reports *report.Generator
}

type ContactReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req ContactReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" {
		return fail(c, fiber.StatusBadRequest, "Nome e e-mail são obrigatórios.")
	}

	var existing models.Contact
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusBadRequest, "O e-mail já está registrado.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o contato. Tente novamente.")
	}

	contact := models.Contact{Name: req.Name, Email: email, Phone: req.Phone}
	if err := h.DB.Create(&contact).Error; err != nil {
		log.Println("erro ao criar contato:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o contato. Tente novamente.")
	}
	return ok(c, fiber.StatusCreated, contact)
}

type ContactBasicReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	EstateID        uint   `json:"estateId"`
	TaskStatus      string `json:"taskStatus"`
	TaskDescription string `json:"taskDescription"`
}

// CreateBasic é o funil público: upsert do contato por e-mail, associação ao
// corretor dono do imóvel e criação de Task+Notification, tudo numa
// transação.
func (h *ContactHandler) CreateBasic(c *fiber.Ctx) error {
	var req ContactBasicReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" {
		return fail(c, fiber.StatusBadRequest, "Nome e e-mail são obrigatórios.")
	}

	var estate models.RealEstate
	if err := h.DB.First(&estate, req.EstateID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}
	ownerID := estate.UserID

	var contact models.Contact
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).First(&contact).Error; err == gorm.ErrRecordNotFound {
			contact = models.Contact{Name: req.Name, Email: email, Phone: req.Phone}
			if err := tx.Create(&contact).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			contact.Name = req.Name
			contact.Phone = req.Phone
		}

		contact.UserID = &ownerID
		if err := tx.Save(&contact).Error; err != nil {
			return err
		}

		task := models.Task{
			Status:      req.TaskStatus,
			Description: req.TaskDescription,
			UserID:      ownerID,
			ContactID:   contact.ID,
			EstateID:    estate.ID,
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		return tx.Create(&models.Notification{TaskID: task.ID}).Error
	})
	if err != nil {
		log.Println("erro ao criar contato básico:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o contato básico. Tente novamente.")
	}

	return ok(c, fiber.StatusCreated, contact)
}

func (h *ContactHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var contacts []models.Contact
	if err := h.DB.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar os contatos. Tente novamente.")
	}
	return ok(c, fiber.StatusOK, contacts)
}

func (h *ContactHandler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contact models.Contact
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contato não encontrado.")
	}
	return ok(c, fiber.StatusOK, contact)
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contact models.Contact
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contato não encontrado.")
	}

	var req ContactReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.Name != "" {
		contact.Name = req.Name
	}
	if req.Email != "" {
		contact.Email = strings.ToLower(req.Email)
	}
	if req.Phone != "" {
		contact.Phone = req.Phone
	}

	if err := h.DB.Save(&contact).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o contato.")
	}
	return ok(c, fiber.StatusOK, contact)
}

// Delete recusa a exclusão enquanto outro corretor tiver tarefas apontando
// para o contato; caso contrário remove, em cascata, as tarefas do corretor,
// os agendamentos ligados a elas ou ao contato, e por fim o contato.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var contact models.Contact
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Contato não encontrado.")
	}

	var otherTasks int64
	if err := h.DB.Model(&models.Task{}).
		Where("contact_id = ? AND user_id <> ?", contact.ID, userID).
		Count(&otherTasks).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o contato.")
	}
	if otherTasks > 0 {
		return fail(c, fiber.StatusBadRequest, "Não é possível excluir o contato, pois ele ainda está associado a outras tarefas.")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var tasks []models.Task
		if err := tx.Where("contact_id = ? AND user_id = ?", contact.ID, userID).Find(&tasks).Error; err != nil {
			return err
		}

		var appointmentIDs []uint
		for _, t := range tasks {
			if t.AppointmentID != nil {
				appointmentIDs = append(appointmentIDs, *t.AppointmentID)
			}
		}
		if len(appointmentIDs) > 0 {
			if err := tx.Where("id IN ?", appointmentIDs).Delete(&models.Appointment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		if len(tasks) > 0 {
			if err := tx.Where("contact_id = ? AND user_id = ?", contact.ID, userID).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&contact).Error
	})
	if err != nil {
		log.Println("erro ao excluir contato:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o contato.")
	}

	return okMessage(c, "Contato excluído com sucesso.")
}

// Report emite o PDF de contatos, com recorte por período: all, 15days, today.
func (h *ContactHandler) Report(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	filter := c.Query("filter", "all")

	q := h.DB.Where("user_id = ?", userID)
	now := time.Now()
	switch filter {
	case "15days":
		q = q.Where("created_at >= ?", now.AddDate(0, 0, -15))
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		q = q.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}

	var contacts []models.Contact
	if err := q.Find(&contacts).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar o relatório de clientes. Tente novamente.")
	}

	pdf, err := h.Reports.Contacts(contacts)
	if err != nil {
		log.Println("erro ao gerar relatório de contatos:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar o relatório em PDF.")
	}
	return sendPDF(c, "relatorio-contatos.pdf", pdf)
}
