package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// fileResponse is the JSON shape of a stored file reference.
type fileResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	StoredName string    `json:"stored_name"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}

// UploadFile handles POST /files - multipart upload. The file lands on disk
// under the upload directory with a UUID-prefixed name; the returned URL is
// where the static file route serves it from.
func (s *Server) UploadFile(ctx echo.Context) error {
	header, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "file is required")
	}

	src, err := header.Open()
	if err != nil {
		return badRequest(ctx, "file could not be read")
	}
	defer src.Close()

	fileID := kernel.NewUUID()
	storedName := fmt.Sprintf("%s-%s", fileID.String(), filepath.Base(header.Filename))
	url := fmt.Sprintf("%s/files/%s", s.baseURL, storedName)

	if err = writeUpload(filepath.Join(s.uploadDir, storedName), src); err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStoreFileCommand(fileID, header.Filename, storedName, url)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.StoreFile.Handle(ctx.Request().Context(), cmd); err != nil {
		// The metadata row is the source of truth; without it the file on
		// disk is unreachable garbage, so clean it up.
		_ = os.Remove(filepath.Join(s.uploadDir, storedName))
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fileResponse{
		ID:         fileID.String(),
		Name:       header.Filename,
		StoredName: storedName,
		URL:        url,
		CreatedAt:  time.Now(),
	})
}

func writeUpload(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
