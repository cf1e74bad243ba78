package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aimob/aimob-backend/internal/middleware"
	"github.com/aimob/aimob-backend/internal/models"
	"github.com/aimob/aimob-backend/internal/report"
	"github.com/aimob/aimob-backend/internal/utils"
)

const testSecret = "segredo-de-teste"

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mailerStub struct {
	sent []sentMail
}

func (m *mailerStub) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type smsStub struct {
	sent []string
}

func (s *smsStub) Send(to, body string) error {
	s.sent = append(s.sent, to+": "+body)
	return nil
}

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	mail *mailerStub
	sms  *smsStub
}

// newTestEnv monta a aplicação sobre um sqlite em memória, com as mesmas
// rotas do cmd/api e integrações externas dubladas.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	mail := &mailerStub{}
	smsSender := &smsStub{}
	reports := report.NewGenerator()
	reports.LogoURL = ""

	authH := &AuthHandler{DB: gdb, JWTSecret: testSecret, Expires: 60}
	userH := NewUserHandler(gdb, nil)
	employeeH := NewEmployeeHandler(gdb)
	ownerH := NewOwnerHandler(gdb)
	clientH := NewClientHandler(gdb)
	estateH := &RealEstateHandler{DB: gdb, Reports: reports, FrontendURL: "http://localhost:3000"}
	contactH := &ContactHandler{DB: gdb, Reports: reports}
	appointmentH := &AppointmentHandler{DB: gdb, Mailer: mail, SMS: smsSender, Reports: reports}
	taskH := NewTaskHandler(gdb)
	contractH := NewContractHandler(gdb)
	notificationH := NewNotificationHandler(gdb)
	passwordH := &PasswordHandler{DB: gdb, Mailer: mail}

	app := fiber.New()
	api := app.Group("/api")

	api.Post("/login", authH.Login)
	api.Post("/users", userH.Create)
	api.Post("/forgot-password", passwordH.SendResetCode)
	api.Post("/reset-password", passwordH.ResetPassword)
	api.Post("/contacts", contactH.Create)
	api.Post("/contacts/basic", contactH.CreateBasic)
	api.Post("/appointments/create", appointmentH.Create)

	api.Get("/realestates/available", estateH.ListAvailable)
	api.Get("/realestates/search", estateH.Search)
	api.Get("/realestates/advance-search", estateH.AdvanceSearch)
	api.Get("/realestates/:id<int>", estateH.Get)

	protected := api.Group("/",
		middleware.JWTFromHeader(testSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/users", userH.List)
	protected.Get("/users/:id", userH.Get)
	protected.Patch("/users/:id", userH.Update)
	protected.Delete("/users/:id", userH.Delete)

	protected.Post("/employees", employeeH.Create)
	protected.Get("/employees", employeeH.List)
	protected.Get("/employees/:id", employeeH.Get)

	protected.Post("/owners", ownerH.Create)
	protected.Post("/clients", clientH.Create)

	protected.Post("/realestates", estateH.Create)
	protected.Get("/realestates", estateH.List)
	protected.Get("/realestates/report", estateH.Report)
	protected.Patch("/realestates/:id", estateH.Update)
	protected.Delete("/realestates/:id", estateH.Delete)

	protected.Get("/contacts", contactH.List)
	protected.Get("/contacts/report", contactH.Report)
	protected.Get("/contacts/:id", contactH.Get)
	protected.Patch("/contacts/:id", contactH.Update)
	protected.Delete("/contacts/:id", contactH.Delete)

	protected.Get("/appointments", appointmentH.List)
	protected.Get("/appointments/report", appointmentH.Report)
	protected.Get("/appointments/:id", appointmentH.Get)
	protected.Patch("/appointments/:id", appointmentH.Update)
	protected.Delete("/appointments/:id", appointmentH.Delete)

	protected.Post("/tasks", taskH.Create)
	protected.Get("/tasks", taskH.List)
	protected.Get("/tasks/:id", taskH.Get)
	protected.Patch("/tasks/:id", taskH.Update)
	protected.Delete("/tasks/:id", taskH.Delete)

	protected.Post("/contracts", contractH.Create)
	protected.Get("/contracts", contractH.List)

	protected.Post("/notifications", notificationH.Create)
	protected.Get("/notifications", notificationH.List)
	protected.Patch("/notifications/:id", notificationH.Update)

	return &testEnv{app: app, db: gdb, mail: mail, sms: smsSender}
}

// createUser grava um usuário direto no banco, com senha já em hash.
func (e *testEnv) createUser(t *testing.T, handle, email, password string, role models.Role) models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	u := models.User{
		Name:     "Usuário " + handle,
		User:     handle,
		Email:    email,
		Password: hashed,
		Roles:    role,
		Image:    defaultAvatarURL,
	}
	require.NoError(t, e.db.Create(&u).Error)
	return u
}

func (e *testEnv) createEstate(t *testing.T, registration string, userID uint) models.RealEstate {
	t.Helper()
	estate := models.RealEstate{
		Registration: registration,
		Street:       "Rua das Laranjeiras",
		Number:       "120",
		District:     "Centro",
		City:         "Curitiba",
		State:        "PR",
		Type:         "Casa",
		SalePrice:    350000,
		Status:       true,
		UserID:       userID,
	}
	require.NoError(t, e.db.Create(&estate).Error)
	return estate
}

func (e *testEnv) createContact(t *testing.T, name, email string, userID *uint) models.Contact {
	t.Helper()
	contact := models.Contact{Name: name, Email: email, Phone: "41999990000", UserID: userID}
	require.NoError(t, e.db.Create(&contact).Error)
	return contact
}

func (e *testEnv) token(t *testing.T, u models.User) string {
	t.Helper()
	token, err := utils.SignJWT(testSecret, u.ID, u.User, 60)
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func dataField(t *testing.T, resp *http.Response, key string) interface{} {
	t.Helper()
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "resposta sem data: %v", body)
	return data[key]
}

func idOf(t *testing.T, resp *http.Response) uint {
	t.Helper()
	v, ok := dataField(t, resp, "id").(float64)
	require.True(t, ok)
	return uint(v)
}

func path(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
