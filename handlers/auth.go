package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/wordgrid/wordgrid-web/internal/sessions"
	"github.com/wordgrid/wordgrid-web/pkg/logger"
)

// RegisterSignout registers the sign-out proxy route. Signing out is a
// client-side act (the frontend drops its stored credential); this route is
// the best-effort server half: it records the presented token in the Redis
// blacklist until the token's own expiry. It always succeeds; a missing or
// unparsable token simply leaves nothing to record.
func RegisterSignout(r *gin.Engine) {
	r.POST("/api/proxy/signout", Signout)
}

func Signout(c *gin.Context) {
	if cred, ok := bearerFromRequest(c); ok {
		tok := strings.TrimPrefix(cred, "Bearer ")
		if exp, err := tokenExpiry(tok); err == nil {
			ttl := time.Until(exp)
			if ttl > 0 {
				// a repeated sign-out must not refresh the existing entry's TTL
				if seen, err := sessions.IsTokenBlacklisted(c.Request.Context(), tok); err == nil && seen {
					logger.Debugf("signout: token already blacklisted")
				} else if err := sessions.BlacklistToken(c.Request.Context(), tok, ttl); err != nil {
					logger.Warnf("signout: blacklist write failed: %v", err)
				}
			}
		} else {
			logger.Debugf("signout: token exp not readable: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// tokenExpiry decodes the token's own exp claim without verifying the
// signature. Good enough for computing a blacklist TTL; never an
// authorization decision (the game backend owns those).
func tokenExpiry(tok string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("exp claim not present")
	}
	return exp.Time, nil
}
