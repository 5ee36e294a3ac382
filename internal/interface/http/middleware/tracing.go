package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/xiebiao/livraria/pkg/tracing"
)

// Tracing 请求级Span中间件
// tracing未启用时otel使用noop Provider，这里的调用是零成本透传
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		spanName := c.Request.Method + " " + c.FullPath()

		ctx, span := tracing.StartSpan(c.Request.Context(), spanName,
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.target", c.Request.URL.Path),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		span.SetAttributes(attribute.Int("http.status_code", c.Writer.Status()))
		if c.Writer.Status() >= 500 {
			span.SetStatus(codes.Error, "internal error")
		}
	}
}
