package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/report"
	"github.com/aimob/aimob-backend/internal/services/mailer"
	"github.com/aimob/aimob-backend/internal/services/sms"
)

type AppointmentHandler struct {
	DB      *gorm.DB
	Mailer  mailer.Sender
	SMS     sms.Sender
	Reports *report.Generator
}

type AppointmentReq struct {
	VisitDate time.Time `json:"visitDate"`
	EstateID  uint      `json:"estateId"`

	ContactID    uint   `json:"contactId"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	TaskStatus      string `json:"taskStatus"`
	TaskDescription string `json:"taskDescription"`
}

// Create é o agendamento público de visita. Resolve o corretor pelo imóvel,
// garante o contato (por id ou upsert por e-mail), recusa data já ocupada
// para o mesmo imóvel e corretor e cria Task, Appointment e Notification
// numa única transação.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req AppointmentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	if req.ContactID == 0 && (req.ContactEmail == "" || req.ContactName == "") {
		return fail(c, fiber.StatusBadRequest, "Informe o contato ou nome e e-mail para criar um.")
	}
	if req.VisitDate.IsZero() {
		return fail(c, fiber.StatusBadRequest, "A data da visita é obrigatória.")
	}

	var estate models.RealEstate
	if err := h.DB.First(&estate, req.EstateID).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}
	ownerID := estate.UserID

	var conflict models.Appointment
	err := h.DB.Where("visit_date = ? AND estate_id = ? AND user_id = ?",
		req.VisitDate, estate.ID, ownerID).First(&conflict).Error
	if err == nil {
		return fail(c, fiber.StatusBadRequest, "Agendamento indisponível para esta data.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o agendamento.")
	}

	var appointment models.Appointment
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var contact models.Contact
		if req.ContactID != 0 {
			if err := tx.First(&contact, req.ContactID).Error; err != nil {
				return err
			}
		} else {
			email := strings.ToLower(strings.TrimSpace(req.ContactEmail))
			if err := tx.Where("email = ?", email).First(&contact).Error; err == gorm.ErrRecordNotFound {
				contact = models.Contact{Name: req.ContactName, Email: email, Phone: req.ContactPhone}
				if err := tx.Create(&contact).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				contact.Name = req.ContactName
				contact.Phone = req.ContactPhone
				if err := tx.Save(&contact).Error; err != nil {
					return err
				}
			}
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

		appointment = models.Appointment{
			VisitDate:     req.VisitDate,
			VisitApproved: false,
			UserID:        ownerID,
			EstateID:      estate.ID,
			ContactID:     contact.ID,
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		task.AppointmentID = &appointment.ID
		task.Status = models.TaskStatusAwaitingVisit
		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		return tx.Create(&models.Notification{TaskID: task.ID}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fail(c, fiber.StatusNotFound, "Contato não encontrado.")
		}
		log.Println("erro ao criar agendamento:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o agendamento.")
	}

	return ok(c, fiber.StatusCreated, appointment)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var appointments []models.Appointment
	if err := h.DB.Where("user_id = ?", userID).
		Preload("Contact").Preload("RealEstate").
		Find(&appointments).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar agendamentos.")
	}
	return ok(c, fiber.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var appointment models.Appointment
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Contact").Preload("RealEstate").
		First(&appointment).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Agendamento não encontrado.")
	}
	return ok(c, fiber.StatusOK, appointment)
}

type UpdateAppointmentReq struct {
	VisitDate     *time.Time `json:"visitDate"`
	VisitApproved *bool      `json:"visitApproved"`
}

// Update muda a data e/ou o aval da visita. A mudança de visitApproved
// dispara um aviso ao contato (e-mail quando houver, senão SMS); falha no
// envio é registrada e não derruba a atualização.
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var appointment models.Appointment
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Contact").
		First(&appointment).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Agendamento não encontrado.")
	}

	var req UpdateAppointmentReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	if req.VisitDate != nil {
		appointment.VisitDate = *req.VisitDate
	}
	notify := false
	if req.VisitApproved != nil {
		appointment.VisitApproved = *req.VisitApproved
		notify = true
	}

	if err := h.DB.Save(&appointment).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o agendamento.")
	}

	if notify && appointment.Contact != nil {
		h.notifyContact(&appointment)
	}

	return ok(c, fiber.StatusOK, appointment)
}

// notifyContact monta a mensagem com o horário local (UTC-3) da visita.
func (h *AppointmentHandler) notifyContact(appointment *models.Appointment) {
	contact := appointment.Contact
	localDate := appointment.VisitDate.Add(-3 * time.Hour).Format("02/01/2006 às 15:04")

	subject := "Confirmação de Agendamento Aprovado"
	body := fmt.Sprintf("Olá %s, sua visita foi aprovada para %s.", contact.Name, localDate)
	if !appointment.VisitApproved {
		subject = "Confirmação de Agendamento Reprovado"
		body = fmt.Sprintf("Olá %s, sua visita agendada para %s não foi aprovada.", contact.Name, localDate)
	}

	switch {
	case contact.Email != "" && h.Mailer != nil:
		if err := h.Mailer.Send(contact.Email, subject, body); err != nil {
			log.Println("erro ao enviar e-mail de agendamento:", err)
		}
	case contact.Phone != "" && h.SMS != nil:
		if err := h.SMS.Send(contact.Phone, body); err != nil {
			log.Println("erro ao enviar SMS de agendamento:", err)
		}
	}
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var appointment models.Appointment
	if err := h.DB.Where("id = ? AND user_id = ?", id, userID).First(&appointment).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Agendamento não encontrado.")
	}
	if err := h.DB.Delete(&appointment).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o agendamento.")
	}
	return ok(c, fiber.StatusOK, appointment)
}

var reportStatusByFilter = map[string]string{
	"pending":   models.TaskStatusAwaitingVisit,
	"progress":  models.TaskStatusInProgress,
	"completed": models.TaskStatusDone,
}

// Report filtra por situação da tarefa ligada e/ou mês da visita.
func (h *AppointmentHandler) Report(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	filter := c.Query("filter", "all")
	month := c.QueryInt("month")

	q := h.DB.Where("user_id = ?", userID).
		Preload("Contact").Preload("RealEstate")

	if status, ok := reportStatusByFilter[filter]; ok {
		q = q.Where("id IN (?)", h.DB.Model(&models.Task{}).
			Select("appointment_id").
			Where("status = ? AND appointment_id IS NOT NULL", status))
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar relatório de agendamentos.")
	}

	if month >= 1 && month <= 12 {
		filtered := appointments[:0]
		for _, a := range appointments {
			if int(a.VisitDate.Month()) == month {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}

	pdf, err := h.Reports.Appointments(appointments)
	if err != nil {
		log.Println("erro ao gerar relatório de agendamentos:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar relatório de agendamentos.")
	}
	return sendPDF(c, "relatorio-agendamentos.pdf", pdf)
}
