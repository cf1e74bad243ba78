package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/report"
	"github.com/aimob/aimob-backend/internal/services/facebook"
	"github.com/aimob/aimob-backend/internal/services/storage"
)

type RealEstateHandler struct {
	DB          *gorm.DB
	Storage     storage.Uploader
	Facebook    facebook.Poster
	Reports     *report.Generator
	FrontendURL string
}

type RealEstateReq struct {
	Registration string `json:"registration" form:"registration"`
	Street       string `json:"street" form:"street"`
	Number       string `json:"number" form:"number"`
	Complement   string `json:"complement" form:"complement"`
	District     string `json:"district" form:"district"`
	ZipCode      string `json:"zipCode" form:"zipCode"`
	City         string `json:"city" form:"city"`
	State        string `json:"state" form:"state"`
	BuiltArea    string `json:"builtArea" form:"builtArea"`
	TotalArea    string `json:"totalArea" form:"totalArea"`
	Bedrooms     string `json:"bedrooms" form:"bedrooms"`
	Bathrooms    string `json:"bathrooms" form:"bathrooms"`
	LivingRooms  string `json:"livingRooms" form:"livingRooms"`
	Kitchens     string `json:"kitchens" form:"kitchens"`
	Garage       bool   `json:"garage" form:"garage"`
	Yard         bool   `json:"yard" form:"yard"`
	Pool         bool   `json:"pool" form:"pool"`
	Type         string `json:"type" form:"type"`
	Description  string `json:"description" form:"description"`

	// SalePrice chega como string no multipart e como número no JSON.
	SalePrice json.Number `json:"salePrice" form:"salePrice"`
	Status    bool        `json:"status" form:"status"`
	IsPosted  bool        `json:"isPosted" form:"isPosted"`
}

func (h *RealEstateHandler) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req RealEstateReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}
	if req.Registration == "" {
		return fail(c, fiber.StatusBadRequest, "O registro do imóvel é obrigatório.")
	}

	var existing models.RealEstate
	if err := h.DB.Where("registration = ?", req.Registration).First(&existing).Error; err == nil {
		return fail(c, fiber.StatusBadRequest, "Imóvel com este registro já existe.")
	} else if err != gorm.ErrRecordNotFound {
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o imóvel.")
	}

	salePrice, _ := req.SalePrice.Float64()

	estate := models.RealEstate{
		Registration: req.Registration,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		District:     req.District,
		ZipCode:      req.ZipCode,
		City:         req.City,
		State:        req.State,
		BuiltArea:    req.BuiltArea,
		TotalArea:    req.TotalArea,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		LivingRooms:  req.LivingRooms,
		Kitchens:     req.Kitchens,
		Garage:       req.Garage,
		Yard:         req.Yard,
		Pool:         req.Pool,
		Type:         req.Type,
		Description:  req.Description,
		SalePrice:    salePrice,
		Status:       req.Status,
		UserID:       userID,
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > 0 {
			urls, err := uploadImages(c.Context(), h.Storage, files)
			if err != nil {
				log.Println("erro ao enviar imagens para o storage:", err)
				return fail(c, fiber.StatusInternalServerError, "Erro ao fazer upload da imagem.")
			}
			estate.Images = mustJSON(urls)
		}
	}

	if err := h.DB.Create(&estate).Error; err != nil {
		log.Println("erro ao criar imóvel:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao criar o imóvel.")
	}

	if req.IsPosted {
		h.postToFacebook(&estate)
	}

	return ok(c, fiber.StatusCreated, estate)
}

// postToFacebook é best-effort: falha vira log, nunca erro da requisição.
func (h *RealEstateHandler) postToFacebook(estate *models.RealEstate) {
	if h.Facebook == nil {
		return
	}

	message := fmt.Sprintf("\n🏠 Novo imóvel disponível\n💬 %s\n💵 R$ %.2f\n🔗 Confira mais detalhes: %s/realestate/%d",
		estate.Description, estate.SalePrice, h.FrontendURL, estate.ID)

	imageURL := ""
	if urls := imageURLs(estate.Images); len(urls) > 0 {
		imageURL = urls[0]
	}

	if _, err := h.Facebook.PostListing(message, imageURL); err != nil {
		log.Println("erro ao postar no Facebook:", err)
		return
	}

	if err := h.DB.Model(estate).Update("is_posted", true).Error; err != nil {
		log.Println("erro ao marcar imóvel como postado:", err)
		return
	}
	estate.IsPosted = true
}

func (h *RealEstateHandler) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var estates []models.RealEstate
	if err := h.DB.Where("user_id = ?", userID).Order("views_count DESC").Find(&estates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar imóveis.")
	}
	return ok(c, fiber.StatusOK, estates)
}

func (h *RealEstateHandler) ListAvailable(c *fiber.Ctx) error {
	var estates []models.RealEstate
	if err := h.DB.Where("status = ?", true).Order("views_count DESC").Find(&estates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar imóveis disponíveis.")
	}
	return ok(c, fiber.StatusOK, estates)
}

// Get incrementa o contador de visualizações a cada consulta.
func (h *RealEstateHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var estate models.RealEstate
	if err := h.DB.First(&estate, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}

	if err := h.DB.Model(&estate).UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar imóveis.")
	}
	estate.ViewsCount++

	return ok(c, fiber.StatusOK, estate)
}

func (h *RealEstateHandler) Search(c *fiber.Ctx) error {
	estateType := c.Query("type")

	var estates []models.RealEstate
	if err := h.DB.Where("LOWER(type) LIKE LOWER(?)", "%"+estateType+"%").Find(&estates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao buscar imóveis.")
	}
	return ok(c, fiber.StatusOK, estates)
}

// AdvanceSearch monta o filtro só com os parâmetros presentes; ausência de
// um filtro não vira false/zero.
func (h *RealEstateHandler) AdvanceSearch(c *fiber.Ctx) error {
	q := h.DB.Model(&models.RealEstate{})

	if v := c.Query("bedrooms"); v != "" {
		q = q.Where("bedrooms = ?", v)
	}
	if v := c.Query("bathrooms"); v != "" {
		q = q.Where("bathrooms = ?", v)
	}
	if v := c.Query("kitchens"); v != "" {
		q = q.Where("kitchens = ?", v)
	}
	if v := c.Query("livingRooms"); v != "" {
		q = q.Where("living_rooms = ?", v)
	}
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("sale_price >= ?", min)
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("sale_price <= ?", max)
		}
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("type = ?", v)
	}
	if v := c.Query("garage"); v != "" {
		q = q.Where("garage = ?", v == "true")
	}
	if v := c.Query("yard"); v != "" {
		q = q.Where("yard = ?", v == "true")
	}
	if v := c.Query("pool"); v != "" {
		q = q.Where("pool = ?", v == "true")
	}

	var estates []models.RealEstate
	if err := q.Find(&estates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao realizar busca avançada.")
	}
	return ok(c, fiber.StatusOK, estates)
}

type UpdateRealEstateReq struct {
	Registration *string  `json:"registration" form:"registration"`
	Street       *string  `json:"street" form:"street"`
	Number       *string  `json:"number" form:"number"`
	Complement   *string  `json:"complement" form:"complement"`
	District     *string  `json:"district" form:"district"`
	ZipCode      *string  `json:"zipCode" form:"zipCode"`
	City         *string  `json:"city" form:"city"`
	State        *string  `json:"state" form:"state"`
	BuiltArea    *string  `json:"builtArea" form:"builtArea"`
	TotalArea    *string  `json:"totalArea" form:"totalArea"`
	Bedrooms     *string  `json:"bedrooms" form:"bedrooms"`
	Bathrooms    *string  `json:"bathrooms" form:"bathrooms"`
	LivingRooms  *string  `json:"livingRooms" form:"livingRooms"`
	Kitchens     *string  `json:"kitchens" form:"kitchens"`
	Garage       *bool    `json:"garage" form:"garage"`
	Yard         *bool    `json:"yard" form:"yard"`
	Pool         *bool    `json:"pool" form:"pool"`
	Type         *string  `json:"type" form:"type"`
	Description  *string  `json:"description" form:"description"`
	SalePrice    *float64 `json:"salePrice" form:"salePrice"`
	Status       *bool    `json:"status" form:"status"`
	IsPosted     *bool    `json:"isPosted" form:"isPosted"`
}

// Update só sobrescreve os campos presentes no payload. Campo ausente mantém
// o valor atual; zero e vazio enviados explicitamente valem.
func (h *RealEstateHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var estate models.RealEstate
	if err := h.DB.First(&estate, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}

	var req UpdateRealEstateReq
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Corpo da requisição inválido.")
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&estate.Registration, req.Registration)
	applyString(&estate.Street, req.Street)
	applyString(&estate.Number, req.Number)
	applyString(&estate.Complement, req.Complement)
	applyString(&estate.District, req.District)
	applyString(&estate.ZipCode, req.ZipCode)
	applyString(&estate.City, req.City)
	applyString(&estate.State, req.State)
	applyString(&estate.BuiltArea, req.BuiltArea)
	applyString(&estate.TotalArea, req.TotalArea)
	applyString(&estate.Bedrooms, req.Bedrooms)
	applyString(&estate.Bathrooms, req.Bathrooms)
	applyString(&estate.LivingRooms, req.LivingRooms)
	applyString(&estate.Kitchens, req.Kitchens)
	applyString(&estate.Type, req.Type)
	applyString(&estate.Description, req.Description)

	if req.Garage != nil {
		estate.Garage = *req.Garage
	}
	if req.Yard != nil {
		estate.Yard = *req.Yard
	}
	if req.Pool != nil {
		estate.Pool = *req.Pool
	}
	if req.SalePrice != nil {
		estate.SalePrice = *req.SalePrice
	}
	if req.Status != nil {
		estate.Status = *req.Status
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["images"]
		if len(files) > 0 {
			urls, err := uploadImages(c.Context(), h.Storage, files)
			if err != nil {
				log.Println("erro ao enviar imagens para o storage:", err)
				return fail(c, fiber.StatusInternalServerError, "Erro ao fazer upload da imagem.")
			}
			estate.Images = mustJSON(urls)
		}
	}

	if err := h.DB.Save(&estate).Error; err != nil {
		log.Println("erro ao atualizar imóvel:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao atualizar o imóvel.")
	}

	if req.IsPosted != nil && *req.IsPosted {
		h.postToFacebook(&estate)
	}

	return ok(c, fiber.StatusOK, estate)
}

func (h *RealEstateHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Identificador inválido.")
	}

	var estate models.RealEstate
	if err := h.DB.First(&estate, id).Error; err != nil {
		return fail(c, fiber.StatusNotFound, "Imóvel não encontrado.")
	}
	if err := h.DB.Delete(&estate).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao excluir o imóvel.")
	}
	return ok(c, fiber.StatusOK, estate)
}

func (h *RealEstateHandler) Report(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	q := h.DB.Where("user_id = ?", userID)
	if v := c.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("sale_price >= ?", min)
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			q = q.Where("sale_price <= ?", max)
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		q = q.Where("bedrooms = ?", v)
	}
	if v := c.Query("bathrooms"); v != "" {
		q = q.Where("bathrooms = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v == "true")
	}

	var estates []models.RealEstate
	if err := q.Find(&estates).Error; err != nil {
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar relatório de imóveis.")
	}

	pdf, err := h.Reports.RealEstates(estates)
	if err != nil {
		log.Println("erro ao gerar relatório de imóveis:", err)
		return fail(c, fiber.StatusInternalServerError, "Erro ao gerar relatório de imóveis.")
	}
	return sendPDF(c, "relatorio-imoveis.pdf", pdf)
}

func mustJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func imageURLs(data datatypes.JSON) []string {
	var urls []string
	if len(data) == 0 {
		return urls
	}
	_ = json.Unmarshal(data, &urls)
	return urls
}
