package imagegen

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultWidth  = 512
	defaultHeight = 512
)

// Options controls the generated image. Zero values fall back to the
// service defaults.
type Options struct {
	Width  int
	Height int
	Seed   int
	NoLogo bool
}

// Client builds prompt URLs for a text-to-image service and fetches the
// resulting images. The service renders the image on GET, so the URL
// itself is usable as an <img> source.
type Client struct {
	baseURL    string
	httpClient *http.Client
	randSeed   func() int
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		randSeed: func() int { return rand.Intn(1_000_000) },
	}
}

// APIError represents an image generation service error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("image generation error [%d]: %s", e.StatusCode, e.Message)
}

// PromptURL builds the image URL for a text prompt. A random seed is
// chosen when none is given so repeated prompts produce distinct images.
func (c *Client) PromptURL(prompt string, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}
	seed := opts.Seed
	if seed <= 0 {
		seed = c.randSeed()
	}

	params := url.Values{}
	params.Set("width", strconv.Itoa(width))
	params.Set("height", strconv.Itoa(height))
	params.Set("seed", strconv.Itoa(seed))
	if opts.NoLogo {
		params.Set("nologo", "true")
	}

	return fmt.Sprintf("%s/prompt/%s?%s", c.baseURL, url.PathEscape(prompt), params.Encode())
}

// Generate fetches the rendered image for a prompt and returns the raw
// bytes together with the content type.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) ([]byte, string, error) {
	imageURL := c.PromptURL(prompt, opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch generated image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read generated image: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
