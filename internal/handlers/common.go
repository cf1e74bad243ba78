package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/aimob/aimob-backend/internal/services/storage"
)

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ok(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func okMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// uploadImages envia cada arquivo do multipart para o storage e devolve as
// URLs públicas, na ordem recebida.
func uploadImages(ctx context.Context, up storage.Uploader, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		url, err := up.Upload(ctx, fh.Filename, contentType, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadImage(ctx context.Context, up storage.Uploader, fh *multipart.FileHeader) (string, error) {
	urls, err := uploadImages(ctx, up, []*multipart.FileHeader{fh})
	if err != nil {
		return "", err
	}
	return urls[0], nil
}

func sendPDF(c *fiber.Ctx, filename string, pdf []byte) error {
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(pdf)
}
