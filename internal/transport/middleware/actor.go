package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/unihub/campus-events-backend/pkg/ctxutil"
)

// ActorHeader carries the authenticated user id set by the API gateway.
// Authentication itself happens upstream; this service trusts the header.
const ActorHeader = "X-User-Id"

// Actor reads the gateway-authenticated user id header into the request
// context. Requests without the header (or with a malformed id) pass
// through anonymous; handlers that need an actor reject them.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(ActorHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id)))
	})
}
