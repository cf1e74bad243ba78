package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimob/aimob-backend/internal/models"
)

func TestCreateRealEstate(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "corretorimovel", "imovel@aimob.com.br", "senha123", models.RoleEmployee)
	token := env.token(t, u)

	payload := map[string]interface{}{
		"registration": "MAT-0001",
		"street":       "Rua das Flores",
		"number":       "45",
		"district":     "Batel",
		"zipCode":      "80420-000",
		"city":         "Curitiba",
		"state":        "PR",
		"builtArea":    "120",
		"totalArea":    "200",
		"bedrooms":     "3",
		"bathrooms":    "2",
		"livingRooms":  "1",
		"kitchens":     "1",
		"garage":       true,
		"pool":         false,
		"type":         "Casa",
		"description":  "Casa ampla no Batel",
		"salePrice":    450000.0,
		"status":       true,
	}

	resp := env.request(t, http.MethodPost, "/api/realestates", payload, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored models.RealEstate
	require.NoError(t, env.db.Where("registration = ?", "MAT-0001").First(&stored).Error)
	assert.Equal(t, u.ID, stored.UserID, "imóvel pertence ao corretor autenticado")
	assert.Equal(t, 450000.0, stored.SalePrice)
	assert.False(t, stored.IsPosted)

	t.Run("registro repetido é recusado", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, "/api/realestates", payload, token)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Imóvel com este registro já existe.", decodeBody(t, resp)["message"])
	})

	t.Run("sem registro responde 400", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, "/api/realestates", map[string]interface{}{
			"street": "Rua Sem Registro",
		}, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetRealEstateIncrementsViews(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "vitrine", "vitrine@aimob.com.br", "senha123", models.RoleEmployee)
	estate := env.createEstate(t, "MAT-0002", u.ID)

	for i := 1; i <= 3; i++ {
		resp := env.request(t, http.MethodGet, path("/api/realestates/%d", estate.ID), nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode, "detalhe do imóvel é público")
	}

	var stored models.RealEstate
	require.NoError(t, env.db.First(&stored, estate.ID).Error)
	assert.EqualValues(t, 3, stored.ViewsCount)

	t.Run("imóvel inexistente responde 404", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/api/realestates/9999", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestListAvailableRealEstates(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "listagem", "listagem@aimob.com.br", "senha123", models.RoleEmployee)

	active := env.createEstate(t, "MAT-0003", u.ID)
	inactive := env.createEstate(t, "MAT-0004", u.ID)
	require.NoError(t, env.db.Model(&models.RealEstate{}).Where("id = ?", inactive.ID).
		Update("status", false).Error)

	resp := env.request(t, http.MethodGet, "/api/realestates/available", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	list := body["data"].([]interface{})
	require.Len(t, list, 1)
	got := list[0].(map[string]interface{})
	assert.EqualValues(t, active.ID, got["id"])
}

func TestAdvanceSearch(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "busca", "busca@aimob.com.br", "senha123", models.RoleEmployee)

	casa := env.createEstate(t, "MAT-0005", u.ID)
	require.NoError(t, env.db.Model(&models.RealEstate{}).Where("id = ?", casa.ID).
		Updates(map[string]interface{}{"bedrooms": "3", "sale_price": 300000, "garage": true}).Error)

	apto := env.createEstate(t, "MAT-0006", u.ID)
	require.NoError(t, env.db.Model(&models.RealEstate{}).Where("id = ?", apto.ID).
		Updates(map[string]interface{}{"type": "Apartamento", "bedrooms": "2", "sale_price": 800000}).Error)

	t.Run("filtros combinados", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/api/realestates/advance-search?bedrooms=3&maxPrice=500000&garage=true", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeBody(t, resp)["data"].([]interface{})
		require.Len(t, list, 1)
		assert.EqualValues(t, casa.ID, list[0].(map[string]interface{})["id"])
	})

	t.Run("sem filtros devolve tudo", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/api/realestates/advance-search", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeBody(t, resp)["data"].([]interface{})
		assert.Len(t, list, 2)
	})

	t.Run("busca por tipo ignora caixa", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/api/realestates/search?type=aparta", nil, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeBody(t, resp)["data"].([]interface{})
		require.Len(t, list, 1)
		assert.EqualValues(t, apto.ID, list[0].(map[string]interface{})["id"])
	})
}

func TestUpdateRealEstatePartial(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "editor", "editor@aimob.com.br", "senha123", models.RoleEmployee)
	token := env.token(t, u)
	estate := env.createEstate(t, "MAT-0007", u.ID)

	t.Run("campo ausente não é sobrescrito", func(t *testing.T) {
		resp := env.request(t, http.MethodPatch, path("/api/realestates/%d", estate.ID), map[string]interface{}{
			"description": "Descrição nova",
		}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.RealEstate
		require.NoError(t, env.db.First(&stored, estate.ID).Error)
		assert.Equal(t, "Descrição nova", stored.Description)
		assert.Equal(t, estate.SalePrice, stored.SalePrice)
		assert.True(t, stored.Status)
	})

	t.Run("false explícito vale", func(t *testing.T) {
		resp := env.request(t, http.MethodPatch, path("/api/realestates/%d", estate.ID), map[string]interface{}{
			"status": false,
		}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.RealEstate
		require.NoError(t, env.db.First(&stored, estate.ID).Error)
		assert.False(t, stored.Status)
	})
}

func TestDeleteRealEstate(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "removedor", "removedor@aimob.com.br", "senha123", models.RoleEmployee)
	estate := env.createEstate(t, "MAT-0008", u.ID)

	resp := env.request(t, http.MethodDelete, path("/api/realestates/%d", estate.ID), nil, env.token(t, u))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	env.db.Model(&models.RealEstate{}).Where("id = ?", estate.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRealEstateReport(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "relator", "relator@aimob.com.br", "senha123", models.RoleEmployee)
	env.createEstate(t, "MAT-0009", u.ID)

	resp := env.request(t, http.MethodGet, "/api/realestates/report", nil, env.token(t, u))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio-imoveis.pdf")
}
