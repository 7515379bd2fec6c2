package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mishumang/prame/pkg/response"
)

const maxUploadSize = 10 << 20 // 10 MiB

// UploadProfileImage stores a single multipart image and returns its
// public URL under /uploads/.
func (h *UserHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userIDParam := chi.URLParam(r, "userId")
	if _, ok := parseUserID(userIDParam); !ok {
		response.Error(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "failed to parse form data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		log.Printf("[WARN] Rejected upload with extension %s for userID=%s", ext, userIDParam)
		response.Error(w, http.StatusBadRequest, "only JPG and PNG images are allowed")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		log.Printf("[ERROR] Failed to create upload dir %s: %v", h.uploadDir, err)
		response.Error(w, http.StatusInternalServerError, "failed to prepare upload dir")
		return
	}

	filename := fmt.Sprintf("%s-%s%s", userIDParam, uuid.NewString(), ext)
	savePath := filepath.Join(h.uploadDir, filename)

	dst, err := os.Create(savePath)
	if err != nil {
		log.Printf("[ERROR] Failed to create file %s: %v", savePath, err)
		response.Error(w, http.StatusInternalServerError, "failed to save image")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("[ERROR] Failed to write file %s: %v", savePath, err)
		response.Error(w, http.StatusInternalServerError, "failed to save image")
		return
	}
	log.Printf("[INFO] Saved profile image | UserID=%s | File=%s", userIDParam, filename)

	response.JSON(w, http.StatusOK, map[string]string{
		"imageUrl": "/uploads/" + filename,
	})
}
