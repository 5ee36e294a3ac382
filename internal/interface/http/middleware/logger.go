package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey 请求ID在gin context中的键
const RequestIDKey = "request_id"

// RequestID 请求ID中间件
// 优先复用上游传入的X-Request-ID，便于跨服务追查同一条请求链
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger 结构化访问日志中间件
// 设计说明：
// 1. 每条请求一行日志：方法、路径、状态码、耗时、请求ID
// 2. handler挂在c.Error上的内部错误在这里统一输出（见pkg/response）
// 3. 5xx记error级别，4xx记warn，其余info
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(RequestIDKey)),
		}

		for _, e := range c.Errors {
			fields = append(fields, zap.Error(e.Err))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("请求失败", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("请求异常", fields...)
		default:
			logger.Info("请求完成", fields...)
		}
	}
}
