package avatar

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/nology-tech/employee-creator-go/internal/pkg/imagegen"
	"github.com/nology-tech/employee-creator-go/internal/pkg/uploader"
)

// AvatarService produces hosted profile images: it renders a prompt
// through the image generation service and uploads the result so the
// stored thumbnail URL is stable even if the generator expires links.
type AvatarService interface {
	PreviewURL(prompt string, opts imagegen.Options) string
	GenerateAndUpload(ctx context.Context, prompt string, opts imagegen.Options) (string, error)
}

type AvatarServiceImpl struct {
	generator *imagegen.Client
	uploader  *uploader.CloudinaryUploader
	logger    *slog.Logger
}

func NewAvatarService(generator *imagegen.Client, up *uploader.CloudinaryUploader, logger *slog.Logger) AvatarService {
	return &AvatarServiceImpl{
		generator: generator,
		uploader:  up,
		logger:    logger,
	}
}

// PreviewURL implements AvatarService. The returned URL renders the
// image on GET without persisting anything.
func (s *AvatarServiceImpl) PreviewURL(prompt string, opts imagegen.Options) string {
	return s.generator.PromptURL(prompt, opts)
}

// GenerateAndUpload implements AvatarService.
func (s *AvatarServiceImpl) GenerateAndUpload(ctx context.Context, prompt string, opts imagegen.Options) (string, error) {
	data, _, err := s.generator.Generate(ctx, prompt, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate avatar: %w", err)
	}

	hostedURL, err := s.uploader.Upload(ctx, bytes.NewReader(data), "avatar.jpg")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	s.logger.InfoContext(ctx, "avatar generated", slog.Int("bytes", len(data)))
	return hostedURL, nil
}
