package facebook

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Poster publica um imóvel na página da imobiliária. Retorna o id do post.
type Poster interface {
	PostListing(message, imageURL string) (string, error)
}

type PageService struct {
	Client  *http.Client
	BaseURL string
	PageID  string
	Token   string
}

func NewPageService(pageID, token string) *PageService {
	return &PageService{
		Client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://graph.facebook.com/v21.0",
		PageID:  pageID,
		Token:   token,
	}
}

type graphResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
	Error  *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// PostListing usa /photos quando há imagem e /feed quando não há.
func (s *PageService) PostListing(message, imageURL string) (string, error) {
	form := url.Values{}
	form.Set("message", message)
	form.Set("access_token", s.Token)

	endpoint := fmt.Sprintf("%s/%s/feed", s.BaseURL, s.PageID)
	if imageURL != "" {
		endpoint = fmt.Sprintf("%s/%s/photos", s.BaseURL, s.PageID)
		form.Set("url", imageURL)
	}

	resp, err := s.Client.PostForm(endpoint, form)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var gr graphResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("resposta inesperada do Graph: %s", string(body))
	}
	if gr.Error != nil {
		return "", fmt.Errorf("graph error %d: %s", gr.Error.Code, gr.Error.Message)
	}
	if gr.ID == "" && gr.PostID == "" {
		return "", fmt.Errorf("post sem id na resposta: %s", string(body))
	}
	if gr.PostID != "" {
		return gr.PostID, nil
	}
	return gr.ID, nil
}
