package image

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/samber/lo"
)

type TextToImageParams struct {
	Prompt         string
	NegativePrompt string
	AspectRatio    string
	GuidanceScale  float64
	Seed           *int64
}

type ImageToImageParams struct {
	TextToImageParams
	InputImageBase64 string
}

func (p TextToImageParams) toForm() url.Values {
	form := url.Values{}
	form.Set("prompt", p.Prompt)
	form.Set("input_image_type", "text2image")
	form.Set("input_image_base64", "")
	form.Set("negative_prompt", p.NegativePrompt)
	form.Set("aspect_ratio", p.AspectRatio)
	form.Set("guidance_scale", strconv.FormatFloat(p.GuidanceScale, 'f', -1, 64))
	form.Set("seed", lo.TernaryF(p.Seed != nil,
		func() string { return strconv.FormatInt(*p.Seed, 10) },
		func() string { return "" },
	))
	return form
}

func (p ImageToImageParams) toForm() url.Values {
	form := p.TextToImageParams.toForm()
	form.Set("input_image_type", "image2image")
	form.Set("input_image_base64", p.InputImageBase64)
	return form
}

// Forwarder makes exactly one upstream call per invocation and hands the
// upstream JSON back untouched.
type Forwarder interface {
	TextToImage(context.Context, TextToImageParams) (json.RawMessage, error)
	ImageToImage(context.Context, ImageToImageParams) (json.RawMessage, error)
}
