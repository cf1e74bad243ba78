package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aimob/aimob-backend/internal/models"
)

func newOfflineGenerator() *Generator {
	g := NewGenerator()
	g.LogoURL = ""
	return g
}

func TestRealEstatesReport(t *testing.T) {
	g := newOfflineGenerator()

	pdf, err := g.RealEstates([]models.RealEstate{
		{
			Registration: "MAT-0001",
			Street:       "Rua das Flores",
			Number:       "45",
			City:         "Curitiba",
			State:        "PR",
			BuiltArea:    "120",
			Bedrooms:     "3",
			Garage:       true,
			SalePrice:    450000,
			Status:       true,
		},
		{
			// campos vazios saem como N/A, sem quebrar a geração
			Street: "Rua Sem Dados",
			Number: "1",
			City:   "Curitiba",
			State:  "PR",
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestContactsReport(t *testing.T) {
	g := newOfflineGenerator()

	pdf, err := g.Contacts([]models.Contact{
		{Name: "Fernanda Alves", Email: "fernanda@exemplo.com", Phone: "41944443333", CreatedAt: time.Now()},
		{Name: "Sem Telefone", Email: "semtel@exemplo.com", CreatedAt: time.Now()},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestAppointmentsReport(t *testing.T) {
	g := newOfflineGenerator()

	estate := models.RealEstate{Street: "Rua das Laranjeiras", Number: "120", City: "Curitiba", State: "PR"}
	contact := models.Contact{Name: "Diego Rocha"}

	pdf, err := g.Appointments([]models.Appointment{
		{
			VisitDate:     time.Date(2026, 9, 12, 14, 30, 0, 0, time.UTC),
			VisitApproved: true,
			Contact:       &contact,
			RealEstate:    &estate,
		},
		{
			// sem associações carregadas o relatório imprime N/A
			VisitDate: time.Date(2026, 9, 13, 10, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestEmptyReportStillRenders(t *testing.T) {
	g := newOfflineGenerator()

	pdf, err := g.RealEstates(nil)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
