package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimob/aimob-backend/internal/models"
)

func TestCreateContract(t *testing.T) {
	env := newTestEnv(t)

	brokerAccount := env.createUser(t, "corretorcontrato", "ccontrato@aimob.com.br", "senha123", models.RoleEmployee)
	clientAccount := env.createUser(t, "clientecontrato", "clicontrato@aimob.com.br", "senha123", models.RoleClient)
	token := env.token(t, brokerAccount)

	employee := models.Employee{UserID: brokerAccount.ID, CPF: "222.333.444-55", CRECI: "54321-F"}
	require.NoError(t, env.db.Create(&employee).Error)
	client := models.Client{UserID: clientAccount.ID, CPF: "555.444.333-22", Profession: "Professor"}
	require.NoError(t, env.db.Create(&client).Error)
	estate := env.createEstate(t, "MAT-CO01", brokerAccount.ID)

	value := 420000.0
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	payload := map[string]interface{}{
		"clientId":   client.ID,
		"employeeId": employee.ID,
		"estateId":   estate.ID,
		"type":       "Venda",
		"value":      value,
		"terms":      "Pagamento à vista na assinatura.",
		"startDate":  start.Format(time.RFC3339),
	}

	resp := env.request(t, http.MethodPost, "/api/contracts", payload, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored models.Contract
	require.NoError(t, env.db.Where("estate_id = ?", estate.ID).First(&stored).Error)
	assert.Equal(t, "Venda", stored.Type)
	assert.Equal(t, value, stored.Value)
	require.NotNil(t, stored.StartDate)
	assert.Nil(t, stored.EndDate)

	t.Run("cliente inexistente responde 404", func(t *testing.T) {
		bad := map[string]interface{}{
			"clientId":   9999,
			"employeeId": employee.ID,
			"estateId":   estate.ID,
			"type":       "Venda",
		}
		resp := env.request(t, http.MethodPost, "/api/contracts", bad, token)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Cliente não encontrado.", decodeBody(t, resp)["message"])
	})

	t.Run("corretor inexistente responde 404", func(t *testing.T) {
		bad := map[string]interface{}{
			"clientId":   client.ID,
			"employeeId": 9999,
			"estateId":   estate.ID,
			"type":       "Venda",
		}
		resp := env.request(t, http.MethodPost, "/api/contracts", bad, token)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Corretor não encontrado.", decodeBody(t, resp)["message"])
	})

	t.Run("imóvel inexistente responde 404", func(t *testing.T) {
		bad := map[string]interface{}{
			"clientId":   client.ID,
			"employeeId": employee.ID,
			"estateId":   9999,
			"type":       "Venda",
		}
		resp := env.request(t, http.MethodPost, "/api/contracts", bad, token)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Imóvel não encontrado.", decodeBody(t, resp)["message"])
	})

	t.Run("listagem traz as associações", func(t *testing.T) {
		resp := env.request(t, http.MethodGet, "/api/contracts", nil, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		list := decodeBody(t, resp)["data"].([]interface{})
		require.Len(t, list, 1)
		got := list[0].(map[string]interface{})
		assert.NotNil(t, got["client"])
		assert.NotNil(t, got["employee"])
		assert.NotNil(t, got["realEstate"])
	})
}
