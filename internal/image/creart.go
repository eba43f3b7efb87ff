package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmorgan81/creartproxy/internal/config"
	"github.com/dmorgan81/creartproxy/internal/log"
	"github.com/samber/do"
)

type CreartForwarder struct {
	Client              *http.Client
	BaseURL             string
	TextToImageTimeout  time.Duration
	ImageToImageTimeout time.Duration
}

func NewCreartForwarder(i *do.Injector) (Forwarder, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &CreartForwarder{
		Client:              do.MustInvoke[*http.Client](i),
		BaseURL:             cfg.UpstreamBaseURL,
		TextToImageTimeout:  cfg.TextToImageTimeout,
		ImageToImageTimeout: cfg.ImageToImageTimeout,
	}, nil
}

func (f *CreartForwarder) TextToImage(ctx context.Context, params TextToImageParams) (json.RawMessage, error) {
	return f.forward(ctx, "/text2image", params.toForm(), f.TextToImageTimeout)
}

func (f *CreartForwarder) ImageToImage(ctx context.Context, params ImageToImageParams) (json.RawMessage, error) {
	return f.forward(ctx, "/image2image", params.toForm(), f.ImageToImageTimeout)
}

func (f *CreartForwarder) forward(ctx context.Context, path string, form url.Values, timeout time.Duration) (json.RawMessage, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("forwarder").With("path", path)
	log.Info("forwarding to api.creartai.com")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	log.Info("received upstream response", "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{Status: resp.StatusCode, Detail: string(body)}
	}

	var out json.RawMessage
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding upstream response: %w", err)
	}
	return out, nil
}
