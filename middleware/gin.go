package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/authware/idtoken/authctx"
	"github.com/authware/idtoken/logger"
	"github.com/authware/idtoken/strategy"
)

// AuthenticateGin returns a Gin middleware backed by the given strategy.
// Route parameters are merged into the strategy's request view, so tokens in
// path segments (e.g. "/auth/:id_token") are located like any other field.
func AuthenticateGin(s *strategy.Strategy, log *logger.Logger) gin.HandlerFunc {
	log = log.WithComponent("middleware")
	return func(c *gin.Context) {
		req := strategy.FromHTTP(c.Request)
		if len(c.Params) > 0 {
			req.Params = make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				req.Params[p.Key] = p.Value
			}
		}

		out := s.Authenticate(c.Request.Context(), req)
		if !out.Succeeded() {
			writeOutcome(c.Writer, log, s.Name(), out)
			c.Abort()
			return
		}

		ctx := authctx.Set(c.Request.Context(), authctx.Identity{
			Principal: out.Principal,
			Subject:   out.Subject,
			Claims:    out.Claims,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
