package handle

import (
	"errors"
	"net/http"

	"github.com/dmorgan81/creartproxy/internal/image"
	"github.com/dmorgan81/creartproxy/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/samber/lo"
)

const (
	defaultAspectRatio   = "1x1"
	defaultGuidanceScale = 9.5
)

type TextToImageRequest struct {
	Prompt         string   `json:"prompt" binding:"required"`
	NegativePrompt string   `json:"negative_prompt"`
	AspectRatio    string   `json:"aspect_ratio"`
	GuidanceScale  *float64 `json:"guidance_scale"`
	Seed           *int64   `json:"seed"`
}

func (r TextToImageRequest) toParams() image.TextToImageParams {
	return image.TextToImageParams{
		Prompt:         r.Prompt,
		NegativePrompt: r.NegativePrompt,
		AspectRatio:    lo.Ternary(r.AspectRatio != "", r.AspectRatio, defaultAspectRatio),
		GuidanceScale:  lo.FromPtrOr(r.GuidanceScale, defaultGuidanceScale),
		Seed:           r.Seed,
	}
}

type ImageToImageRequest struct {
	TextToImageRequest
	InputImageBase64 string `json:"input_image_base64" binding:"required"`
}

func (r ImageToImageRequest) toParams() image.ImageToImageParams {
	return image.ImageToImageParams{
		TextToImageParams: r.TextToImageRequest.toParams(),
		InputImageBase64:  r.InputImageBase64,
	}
}

type TextToImageHandler struct {
	forwarder image.Forwarder
}

func NewTextToImageHandler(i *do.Injector) (*TextToImageHandler, error) {
	return &TextToImageHandler{forwarder: do.MustInvoke[image.Forwarder](i)}, nil
}

func (h *TextToImageHandler) Handle(c *gin.Context) {
	var req TextToImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := h.forwarder.TextToImage(c.Request.Context(), req.toParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

type ImageToImageHandler struct {
	forwarder image.Forwarder
}

func NewImageToImageHandler(i *do.Injector) (*ImageToImageHandler, error) {
	return &ImageToImageHandler{forwarder: do.MustInvoke[image.Forwarder](i)}, nil
}

func (h *ImageToImageHandler) Handle(c *gin.Context) {
	var req ImageToImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	out, err := h.forwarder.ImageToImage(c.Request.Context(), req.toParams())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

func respondError(c *gin.Context, err error) {
	var upstream *image.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.Status, gin.H{"detail": "error from upstream api: " + upstream.Detail})
		return
	}

	log.FromContextOrDiscard(c.Request.Context()).Error("forwarding failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "an internal error occurred: " + err.Error()})
}
