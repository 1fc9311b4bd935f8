package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/nohithkv/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 10 * 1024 * 1024

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	uploadsDir string
}

func newUploadHandler(uploadsDir string) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		uploadsDir: uploadsDir,
	}
}

// upload stores a multipart file under the uploads directory and returns
// the URL it will be served from. Names are prefixed with the upload time
// so repeated uploads of the same file never collide.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}
		defer file.Close()

		if err := os.MkdirAll(h.uploadsDir, 0o755); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		original := filepath.Base(header.Filename)
		if original == "" || original == "." || original == string(filepath.Separator) {
			original = "image"
		}
		name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), original)

		dst, err := os.Create(filepath.Join(h.uploadsDir, name))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("file", name).Msg("stored upload")
		h.responder.WriteJSON(w, map[string]string{"url": "/uploads/" + name})
	}
}
