package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/utils"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"name":     "Ana Souza",
		"user":     "anasouza",
		"email":    "Ana@Aimob.com.br",
		"password": "senha123",
		"roles":    "employee",
	}

	resp := env.request(t, http.MethodPost, "/api/users", payload, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})

	assert.Equal(t, "anasouza", data["user"])
	assert.Equal(t, "ana@aimob.com.br", data["email"], "email é normalizado para minúsculas")
	assert.Equal(t, "EMPLOYEE", data["roles"], "papel é normalizado para maiúsculas")
	assert.Equal(t, defaultAvatarURL, data["image"], "sem upload fica o avatar padrão")
	_, exposed := data["password"]
	assert.False(t, exposed, "senha nunca sai na resposta")

	var stored models.User
	require.NoError(t, env.db.Where("email = ?", "ana@aimob.com.br").First(&stored).Error)
	assert.NotEqual(t, "senha123", stored.Password, "senha é gravada em hash")
	assert.True(t, utils.CheckPassword(stored.Password, "senha123"))

	t.Run("email repetido é recusado", func(t *testing.T) {
		dup := map[string]string{
			"name":     "Outra Ana",
			"user":     "outraana",
			"email":    "ana@aimob.com.br",
			"password": "outrasenha",
			"roles":    "OWNER",
		}
		resp := env.request(t, http.MethodPost, "/api/users", dup, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "O email já está em uso.", decodeBody(t, resp)["message"])

		var count int64
		env.db.Model(&models.User{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("nome de usuário repetido é recusado", func(t *testing.T) {
		dup := map[string]string{
			"name":     "Ana Homônima",
			"user":     "anasouza",
			"email":    "homonima@aimob.com.br",
			"password": "outrasenha",
			"roles":    "CLIENT",
		}
		resp := env.request(t, http.MethodPost, "/api/users", dup, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "O nome de usuário já está em uso.", decodeBody(t, resp)["message"])
	})

	t.Run("campos obrigatórios ausentes respondem 400", func(t *testing.T) {
		resp := env.request(t, http.MethodPost, "/api/users", map[string]string{
			"name": "Sem Email",
		}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "carlosdias", "carlos@aimob.com.br", "original1", models.RoleEmployee)
	token := env.token(t, u)

	t.Run("campo ausente mantém o valor atual", func(t *testing.T) {
		resp := env.request(t, http.MethodPatch, path("/api/users/%d", u.ID), map[string]string{
			"name": "Carlos Dias Jr.",
		}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.User
		require.NoError(t, env.db.First(&stored, u.ID).Error)
		assert.Equal(t, "Carlos Dias Jr.", stored.Name)
		assert.Equal(t, "carlos@aimob.com.br", stored.Email)
		assert.True(t, utils.CheckPassword(stored.Password, "original1"), "senha não é tocada")
	})

	t.Run("nova senha é re-hasheada", func(t *testing.T) {
		resp := env.request(t, http.MethodPatch, path("/api/users/%d", u.ID), map[string]string{
			"password": "trocada2",
		}, token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.User
		require.NoError(t, env.db.First(&stored, u.ID).Error)
		assert.NotEqual(t, "trocada2", stored.Password)
		assert.True(t, utils.CheckPassword(stored.Password, "trocada2"))
	})

	t.Run("usuário inexistente responde 404", func(t *testing.T) {
		resp := env.request(t, http.MethodPatch, "/api/users/9999", map[string]string{"name": "X"}, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin", "admin@aimob.com.br", "admin123", models.RoleEmployee)
	victim := env.createUser(t, "efemero", "efemero@aimob.com.br", "curta123", models.RoleClient)

	resp := env.request(t, http.MethodDelete, path("/api/users/%d", victim.ID), nil, env.token(t, admin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	env.db.Model(&models.User{}).Where("id = ?", victim.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
