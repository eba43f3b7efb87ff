package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmorgan81/creartproxy/internal/config"
	"github.com/dmorgan81/creartproxy/internal/handle"
	"github.com/dmorgan81/creartproxy/internal/image"
	"github.com/dmorgan81/creartproxy/internal/log"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
)

func Setup(ctx context.Context) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Info(fmt.Sprintf(format, args...))
		},
	})
	do.Provide[*config.Config](injector, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[image.Forwarder](injector, image.NewCreartForwarder)
	do.Provide[*handle.TextToImageHandler](injector, handle.NewTextToImageHandler)
	do.Provide[*handle.ImageToImageHandler](injector, handle.NewImageToImageHandler)

	do.Provide[*gin.Engine](injector, func(i *do.Injector) (*gin.Engine, error) {
		engine := gin.New()
		engine.Use(gin.Recovery(), log.Middleware(logger))

		api := engine.Group("/api")
		api.POST("/text-to-image", do.MustInvoke[*handle.TextToImageHandler](i).Handle)
		api.POST("/image-to-image", do.MustInvoke[*handle.ImageToImageHandler](i).Handle)
		return engine, nil
	})

	return injector
}
