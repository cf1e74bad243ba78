// Package report desenha os relatórios em PDF (imóveis, contatos e
// agendamentos) com o timbre da imobiliária.
package report

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/aimob/aimob-backend/internal/models"
)

const defaultLogoURL = "https://bucket-aimob-images.s3.us-east-2.amazonaws.com/logosemfundo_azul.png"

type Generator struct {
	Client  *http.Client
	LogoURL string
}

func NewGenerator() *Generator {
	return &Generator{
		Client:  &http.Client{Timeout: 15 * time.Second},
		LogoURL: defaultLogoURL,
	}
}

// newDoc abre um A4 em pontos com o cabeçalho padrão: título centralizado,
// logo no canto e data de emissão.
func (g *Generator) newDoc(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(50, 50, 50)
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 24, title, "", 1, "C", false, 0, "")

	if logo := g.fetchLogo(); logo != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		pdf.ImageOptions("logo", 480, 20, 80, 0, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "", 12)
	emitted := fmt.Sprintf("Data de Emissão: %s", time.Now().Format("02/01/2006"))
	pdf.CellFormat(0, 16, emitted, "", 1, "R", false, 0, "")
	pdf.Ln(10)
	return pdf
}

// fetchLogo é best-effort: sem logo o relatório sai mesmo assim.
func (g *Generator) fetchLogo() []byte {
	if g.LogoURL == "" {
		return nil
	}
	resp, err := g.Client.Get(g.LogoURL)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}
	return data
}

func divider(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 6
	pdf.Line(50, y, 545, y)
	pdf.SetY(y + 12)
}

func line(pdf *gofpdf.Fpdf, text string) {
	pdf.MultiCell(0, 16, text, "", "L", false)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func simNao(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func (g *Generator) RealEstates(estates []models.RealEstate) ([]byte, error) {
	pdf := g.newDoc("Relatório de Imóveis")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, e := range estates {
		price := "N/A"
		if e.SalePrice > 0 {
			price = fmt.Sprintf("R$ %.2f", e.SalePrice)
		}
		status := "Indisponível"
		if e.Status {
			status = "Disponível"
		}

		line(pdf, tr(fmt.Sprintf("Endereço: %s, %s, %s - %s", e.Street, e.Number, e.City, e.State)))
		line(pdf, tr(fmt.Sprintf("Registro: %s", orNA(e.Registration))))
		line(pdf, tr(fmt.Sprintf("Área Construída: %s m²", orNA(e.BuiltArea))))
		line(pdf, tr(fmt.Sprintf("Área Total: %s m²", orNA(e.TotalArea))))
		line(pdf, tr(fmt.Sprintf("Quartos: %s", orNA(e.Bedrooms))))
		line(pdf, tr(fmt.Sprintf("Banheiros: %s", orNA(e.Bathrooms))))
		line(pdf, tr(fmt.Sprintf("Garagem: %s", simNao(e.Garage))))
		line(pdf, tr(fmt.Sprintf("Preço de Venda: %s", price)))
		line(pdf, tr(fmt.Sprintf("Status: %s", status)))
		divider(pdf)
	}

	return output(pdf)
}

func (g *Generator) Contacts(contacts []models.Contact) ([]byte, error) {
	pdf := g.newDoc("Relatório de Contatos Novos")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, c := range contacts {
		line(pdf, tr(fmt.Sprintf("Nome: %s", c.Name)))
		line(pdf, tr(fmt.Sprintf("Email: %s", c.Email)))
		line(pdf, tr(fmt.Sprintf("Telefone: %s", orNA(c.Phone))))
		line(pdf, tr(fmt.Sprintf("Data da Criação: %s", c.CreatedAt.Format("02/01/2006"))))
		divider(pdf)
	}

	return output(pdf)
}

func (g *Generator) Appointments(appointments []models.Appointment) ([]byte, error) {
	pdf := g.newDoc("Relatório de Agendamentos")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, a := range appointments {
		contact := "N/A"
		if a.Contact != nil {
			contact = a.Contact.Name
		}
		address := "N/A"
		if a.RealEstate != nil {
			address = fmt.Sprintf("%s, %s, %s - %s",
				a.RealEstate.Street, a.RealEstate.Number, a.RealEstate.City, a.RealEstate.State)
		}
		approved := "Pendente"
		if a.VisitApproved {
			approved = "Aprovada"
		}

		line(pdf, tr(fmt.Sprintf("Visita: %s", a.VisitDate.Format("02/01/2006 15:04"))))
		line(pdf, tr(fmt.Sprintf("Contato: %s", contact)))
		line(pdf, tr(fmt.Sprintf("Imóvel: %s", address)))
		line(pdf, tr(fmt.Sprintf("Situação: %s", approved)))
		divider(pdf)
	}

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
