package creciapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Service consulta o registro de corretores (buscacreci) e repassa a
// resposta crua para o handler relayar.
type Service struct {
	Client  *http.Client
	BaseURL string
}

func New() *Service {
	return &Service{
		Client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://api.buscacreci.com.br",
	}
}

// Validate devolve o corpo e o status HTTP retornados pela API externa.
func (s *Service) Validate(creci string) ([]byte, int, error) {
	endpoint := fmt.Sprintf("%s/?creci=%s", s.BaseURL, url.QueryEscape(creci))

	resp, err := s.Client.Get(endpoint)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
