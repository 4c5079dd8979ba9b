package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveUpload stores the named multipart file in the OS temp dir and returns
// its local path, empty when the field is absent. The use case pushes the
// file to the asset host; the temp file is throwaway.
func saveUpload(c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}

// saveUploads stores every file sent under the named field.
func saveUploads(c *fiber.Ctx, field string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File[field]
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fh.Filename))
		if err := c.SaveFile(fh, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// pageParams reads limit/offset query params with sane bounds.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
