package testutils

import (
	"github.com/gin-gonic/gin"
)

// NewTestEngine returns a bare engine in test mode. Callers register the
// routes they exercise.
func NewTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
