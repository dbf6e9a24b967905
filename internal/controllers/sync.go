package controllers

import (
	"net/http"

	"github.com/bankwatch/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterSyncRoutes registers the synchronization trigger. The
// trigger starts a full pass in the background; the pass itself runs
// sequentially over all accesses.
func RegisterSyncRoutes(r *gin.RouterGroup, trigger func()) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", func(c *gin.Context) {
		go trigger()
		c.Status(http.StatusAccepted)
	})
}
