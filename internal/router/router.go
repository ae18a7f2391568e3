package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/toolvia/toolvia-go/internal/config"
	"github.com/toolvia/toolvia-go/internal/crypto"
	"github.com/toolvia/toolvia-go/internal/handler"
	"github.com/toolvia/toolvia-go/internal/middleware"
	"github.com/toolvia/toolvia-go/internal/service"
)

// Router is the HTTP entry point. Close releases the rate limiter.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

func (rt *Router) Close() {
	if rt.limiter != nil {
		rt.limiter.Stop()
	}
}

// New wires every tool endpoint with the shared middleware stack.
func New(cfg config.Config, logger *zap.Logger) *Router {
	converter := handler.NewConverterHandler(service.NewConverterService(cfg.LenientTemperatureUnits), logger, cfg.MaxBodyBytes)
	encoding := handler.NewEncodingHandler(service.NewEncodingService(), logger, cfg.MaxBodyBytes)
	hash := handler.NewHashHandler(service.NewHashService(crypto.DefaultArgon2Params()), logger, cfg.MaxBodyBytes, cfg.MaxUploadBytes)
	formatter := handler.NewFormatHandler(service.NewFormatService(), logger, cfg.MaxBodyBytes)
	generator := handler.NewGeneratorHandler(service.NewGeneratorService(), logger, cfg.MaxBodyBytes)
	other := handler.NewOtherHandler(service.NewOtherService(), logger, cfg.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(chimw.Compress(5, "application/json"))

	rt := &Router{Handler: r}

	r.Get("/health", handler.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			rt.limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
			r.Use(rt.limiter.Handler)
		}

		r.Route("/converter", func(r chi.Router) {
			r.Post("/unit", converter.HandleUnit)
			r.Post("/number-base", converter.HandleNumberBase)
			r.Post("/case", converter.HandleCase)
			r.Post("/color", converter.HandleColor)
		})

		r.Route("/encoding/{codec}", func(r chi.Router) {
			r.Post("/encode", encoding.HandleEncode)
			r.Post("/decode", encoding.HandleDecode)
		})

		r.Route("/hash", func(r chi.Router) {
			r.Post("/all", hash.HandleHashAll)
			r.Post("/file", hash.HandleHashFile)
			r.Post("/argon2", hash.HandleArgon2)
			r.Post("/argon2/verify", hash.HandleArgon2Verify)
			r.Post("/{algorithm}", hash.HandleHash)
		})

		r.Route("/format", func(r chi.Router) {
			r.Post("/json/format", formatter.HandleJSONFormat())
			r.Post("/json/minify", formatter.HandleJSONMinify())
			r.Post("/json/validate", formatter.HandleJSONValidate())
			r.Post("/json/unescape", formatter.HandleJSONUnescape())
			r.Post("/xml/format", formatter.HandleXMLFormat())
			r.Post("/xml/minify", formatter.HandleXMLMinify())
			r.Post("/xml/validate", formatter.HandleXMLValidate())
			r.Post("/html/format", formatter.HandleHTMLFormat())
			r.Post("/html/minify", formatter.HandleHTMLMinify())
		})

		r.Route("/generator", func(r chi.Router) {
			r.Post("/uuid", generator.HandleUUID)
			r.Post("/password", generator.HandlePassword)
			r.Post("/lorem", generator.HandleLorem)
			r.Post("/qrcode", generator.HandleQRCode)
		})

		r.Post("/other/diff", other.HandleDiff)
	})

	return rt
}
