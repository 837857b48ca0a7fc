package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-sales-api/pkg/apiErrors"
)

const healthcheckTimeout = 2 * time.Second

// Pinger verifica a conexão com o banco de vendas
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(store Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco indisponível")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "Banco de dados indisponível", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"status":  "ok",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}
