package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LivenessHandler godoc
//
// @Summary Liveness probe
// @Description Reports that the service is up. No side effects.
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func LivenessHandler(ctx *gin.Context) {
	ctx.String(http.StatusOK, "meshconv is running")
}
