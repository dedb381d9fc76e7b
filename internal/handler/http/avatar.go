package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nology-tech/employee-creator-go/internal/handler/http/response"
	"github.com/nology-tech/employee-creator-go/internal/pkg/imagegen"
	"github.com/nology-tech/employee-creator-go/internal/service/avatar"
)

type AvatarHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
}

type AvatarHandlerImpl struct {
	avatarService avatar.AvatarService
}

func NewAvatarHandler(avatarService avatar.AvatarService) AvatarHandler {
	return &AvatarHandlerImpl{avatarService: avatarService}
}

type avatarRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Seed   int    `json:"seed,omitempty"`
}

type avatarResponse struct {
	URL string `json:"url"`
}

// Preview implements AvatarHandler. It returns a direct generator URL
// without uploading anything.
func (h *AvatarHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		response.BadRequest(w, "prompt is required", nil)
		return
	}

	url := h.avatarService.PreviewURL(prompt, imagegen.Options{NoLogo: true})
	response.JSON(w, http.StatusOK, avatarResponse{URL: url})
}

// Generate implements AvatarHandler. It renders the prompt and uploads
// the image, returning a stable hosted URL for the thumbnail field.
func (h *AvatarHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req avatarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Prompt == "" {
		response.BadRequest(w, "prompt is required", nil)
		return
	}

	url, err := h.avatarService.GenerateAndUpload(r.Context(), req.Prompt, imagegen.Options{
		Width:  req.Width,
		Height: req.Height,
		Seed:   req.Seed,
		NoLogo: true,
	})
	if err != nil {
		slog.Error("Failed to generate avatar", "error", err)
		response.InternalServerError(w, "Failed to generate avatar")
		return
	}
	response.JSON(w, http.StatusCreated, avatarResponse{URL: url})
}
