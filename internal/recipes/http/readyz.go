package http

import (
	"net/http"
	"time"

	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/pkg/httpx"
	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness probe
//	@Description	Returns 200 when the database is reachable, 503 otherwise.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	recipesdk.HealthResponse
//	@Failure		503	{object}	recipesdk.HealthResponse	"Database unreachable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, recipesdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}
