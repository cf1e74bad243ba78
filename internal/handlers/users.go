package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/services/storage"
	"github.com/aimob/aimob-backend/internal/utils"
)

const defaultAvatarURL = "https://img.freepik.com/vetores-premium/icone-de-perfil-de-avatar-padrao-imagem-de-usuario-de-midia-social-cinza-avatar-icone-em-branco-silhueta-vetor-ilustracao_561158-3485.jpg?w=740"

type UserHandler struct {
	DB      *gorm.DB
	Storage storage.Uploader
}

func NewUserHandler(db *gorm.DB, up storage.Uploader) *UserHandler {
	return &UserHandler{DB: db, Storage: up}
}

type CreateUserReq struct {
	Name     string `json:"name" form:"name"`
	User     string `json:"user" form:"user"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Roles    string `json:"roles" form:"roles"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	name := strings.TrimSpace(req.Name)
	handle := strings.TrimSpace(req.User)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || handle == "" || email == "" || req.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Nome, usuário, email e senha são obrigatórios.")
	}

	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusBadRequest, "O email já está em uso.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar usuário.")
	}
	if err := h.DB.Where(`"user" = ?`, handle).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusBadRequest, "O nome de usuário já está em uso.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar usuário.")
	}

	image := defaultAvatarURL
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := uploadImage(c.Context(), h.Storage, fh)
		if err != nil {
			log.Println("erro ao enviar avatar para o storage:", err)
			return fail(c, fiber.StatusInternalServerError, "Erro ao fazer upload da imagem.")
		}
		image = url
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao processar a senha.")
	}
	if hashed == req.Password {
		return fail(c, fiber.StatusBadRequest, "Falha ao gerar o hash da senha.")
	}

	u := models.User{
		Name:     name,
		User:     handle,
		Email:    email,
		Password: hashed,
		Roles:    models.Role(strings.ToUpper(strings.TrimSpace(req.Roles))),
		Image:    image,
	}

	if err := h.DB.Create(&u).Error; err != nil {
		log.Println("erro ao criar usuário:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar usuário.")
	}

	return ok(c, fiber.StatusCreated, u)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	var users []models.User
	if err := h.DB.Find(&users).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar usuários.")
	}
	return ok(c, fiber.StatusOK, users)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var u models.User
	if err := h.DB.First(&u, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	return ok(c, fiber.StatusOK, u)
}

type UpdateUserReq struct {
	Name     *string `json:"name" form:"name"`
	User     *string `json:"user" form:"user"`
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Roles    *string `json:"roles" form:"roles"`
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var u models.User
	if err := h.DB.First(&u, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}

	var req UpdateUserReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.User != nil {
		u.User = *req.User
	}
	if req.Email != nil {
		u.Email = strings.ToLower(*req.Email)
	}
	if req.Roles != nil {
		u.Roles = models.Role(strings.ToUpper(*req.Roles))
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "Erro ao processar a senha.")
		}
		u.Password = hashed
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := uploadImage(c.Context(), h.Storage, fh)
		if err != nil {
			log.Println("erro ao enviar avatar para o storage:", err)
			return fail(c, fiber.StatusInternalServerError, "Erro ao fazer upload da imagem.")
		}
		u.Image = url
	}

	if err := h.DB.Save(&u).Error; err != nil {
		log.Println("erro ao atualizar usuário:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar usuário.")
	}
	return ok(c, fiber.StatusOK, u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var u models.User
	if err := h.DB.First(&u, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Usuário não encontrado.")
	}
	if err := h.DB.Delete(&u).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir usuário.")
	}
	return ok(c, fiber.StatusOK, u)
}
