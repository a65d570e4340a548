package middleware

import (
	"net/http"
	"strings"

	"livelink/internal/utils"
	"livelink/internal/validators"
	"livelink/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the acting operator.
const OperatorKey = "operator_id"

// OperatorRequired resolves the acting operator from header, falling back to
// defaultOperator when the header is absent. A malformed operator ID is
// rejected before any handler runs.
func OperatorRequired(header, defaultOperator string) gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := strings.TrimSpace(c.GetHeader(header))
		if operator == "" {
			operator = defaultOperator
		}

		if err := validators.ValidateOperator(operator); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, utils.ErrCodeInvalidOperator, err.Error())
			c.Abort()
			return
		}

		c.Set(OperatorKey, operator)
		c.Request = c.Request.WithContext(logger.ContextWithOperator(c.Request.Context(), operator))
		c.Next()
	}
}

// Operator returns the operator OperatorRequired stored on c.
func Operator(c *gin.Context) string {
	return c.GetString(OperatorKey)
}
