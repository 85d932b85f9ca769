package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

// NewTokenAuth returns an HS256 verifier for secret, or nil when no secret is
// configured.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	if secret == "" {
		log.Warn("JWT_SECRET_KEY is not set, operational routes are public")
		return nil
	}
	return jwtauth.New("HS256", []byte(secret), nil)
}

// ServiceToken issues a token accepted by the Secure routes.
func ServiceToken(ta *jwtauth.JWTAuth, serviceID string, ttl time.Duration) (string, error) {
	_, tokenString, err := ta.Encode(map[string]interface{}{
		"service_id": serviceID,
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return tokenString, err
}

// Secure mounts routes behind JWT verification when ta is set.
func Secure(r chi.Router, ta *jwtauth.JWTAuth, routes func(r chi.Router)) {
	r.Group(func(r chi.Router) {
		if ta != nil {
			r.Use(jwtauth.Verifier(ta))
			r.Use(jwtauth.Authenticator)
		}
		routes(r)
	})
}

// Health answers with the Response envelope naming the service.
func Health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		CreateResponse(w, Response{
			Message: service + " service is running",
			Code:    http.StatusOK,
		})
	}
}

// LogServiceToken logs a week-long token at debug level so the secured
// routes can be called by hand. Nothing is logged when ta is nil.
func LogServiceToken(ta *jwtauth.JWTAuth, serviceID string) {
	if ta == nil {
		return
	}
	token, err := ServiceToken(ta, serviceID, 7*24*time.Hour)
	if err != nil {
		log.Errorf("unable to issue service token: %v", err)
		return
	}
	log.Debugf("JWT for secured routes, expires in 7 days: %s", token)
}
