package healthcheck

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sizebots/sizebot-go/config"
)

// Healthcheck that starts http server
func StartHealthcheck(ctx context.Context, cfg config.AppConfig, logger zerolog.Logger) {
	go func() {
		port := strconv.Itoa(cfg.Port)
		err := http.ListenAndServe(":"+port, HealthCheckHandler())
		if err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("healthcheck server error")
		}
	}()
}

func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
