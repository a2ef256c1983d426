package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"tracknest.io/asset-inventory-service/pkg/inventory"
)

type RestfulServer struct {
	Server            *gin.Engine
	Inv               *inventory.Inventory
	ProbeLimiterStore *inventory.ProbeLimiterStore

	// StaticDir holds the presentation shell; empty disables static serving.
	StaticDir string
}

func (rs *RestfulServer) GetLimiter(hostname string) *rate.Limiter {
	if rs.ProbeLimiterStore == nil {
		return nil
	} else {
		return rs.ProbeLimiterStore.GetLimiter(hostname)
	}
}

func (rs *RestfulServer) CheckProbeLimiter(hostname string) bool {
	limiter := rs.GetLimiter(hostname)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("/locations", rs.GetLocations)
		api.POST("/locations", rs.PostLocation)
		api.DELETE("/locations/:id", rs.DeleteLocation)

		api.GET("/assets", rs.GetAssets)
		api.GET("/assets/placements", rs.GetPlacements)
		api.POST("/assets", rs.PostAsset)
		api.PUT("/assets/:id", rs.PutAsset)
		api.DELETE("/assets/:id", rs.DeleteAsset)

		api.POST("/ping", rs.PostPing)
	}

	if rs.StaticDir != "" {
		rs.Server.NoRoute(gin.WrapH(http.FileServer(http.Dir(rs.StaticDir))))
	}
}
