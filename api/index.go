package handler

import (
	"net/http"
	"skyline/config"
	"skyline/di"
	"skyline/shared/logger"
	"skyline/transport/http/response"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	server  http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
