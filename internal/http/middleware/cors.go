package middleware

import (
	"net/http"

	"github.com/csa-rae/gantt-api/internal/config"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// CORS returns a CORS middleware configured from the application config.
// The chart frontend is served from arbitrary origins, so the default
// configuration is the wildcard; explicit origin lists are honored when set.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			if environment == "production" {
				logger.Warn("CORS configured with wildcard origin in production",
					zap.String("environment", environment))
			}
			options.AllowOriginFunc = func(r *http.Request, origin string) bool {
				return origin != ""
			}
			break
		}
	}

	if options.AllowOriginFunc == nil {
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	}

	return cors.Handler(options)
}
