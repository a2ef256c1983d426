package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/db"
	invHttp "tracknest.io/asset-inventory-service/pkg/http"
	"tracknest.io/asset-inventory-service/pkg/inventory"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	invDbType := os.Getenv(common.EnvKeyInvDBType)
	switch invDbType {
	case "file":
		dbInstance, err = db.New(db.UseSqliteDialector())
	case "memory":
		dbInstance, err = db.New(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown INV_DB_TYPE: " + invDbType)
	}
	if err != nil {
		// schema initialization failure is the one fatal startup error
		log.Fatal("Failed to initialize datastore: ", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyInvHttpHostPort))

	probeTimeout := 3 * time.Second
	if raw := os.Getenv(common.EnvKeyInvProbeTimeoutMs); raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("Invalid INV_PROBE_TIMEOUT_MS, should be an int value in milliseconds")
		}
		probeTimeout = time.Duration(ms) * time.Millisecond
	}

	probeRate := 1.0
	if raw := os.Getenv(common.EnvKeyInvProbeRate); raw != "" {
		if probeRate, err = strconv.ParseFloat(raw, 64); err != nil {
			log.Fatal("Invalid INV_PROBE_RATE, should be a float64 value")
		}
	}

	probeBurst := int64(3)
	if raw := os.Getenv(common.EnvKeyInvProbeBurst); raw != "" {
		if probeBurst, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Fatal("Invalid INV_PROBE_BURST, should be an int value")
		}
	}

	staticDir := os.Getenv(common.EnvKeyInvStaticDir)
	if staticDir == "" {
		staticDir = "./public"
	}

	logger := common.GetLogger()

	invCore := &inventory.Inventory{
		Db: *dbInstance,
	}
	invCore.WithServices(inventory.ServiceOpts{
		Asset:    invCore.GetIAsset(),
		Location: invCore.GetILocation(),
		Prober:   &inventory.IcmpProber{Timeout: probeTimeout},
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":3000"
	}

	server := gin.Default()
	server.Use(cors.Default())

	rs := &invHttp.RestfulServer{
		Server:            server,
		Inv:               invCore,
		ProbeLimiterStore: inventory.NewProbeLimiterStore(rate.Limit(probeRate), int(probeBurst)),
		StaticDir:         staticDir,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("probe_limiter",
			fmt.Sprintf("{\"probe_rate\": %v, \"probe_burst\": %v}", probeRate, probeBurst)),
		zap.Duration("probe_timeout", probeTimeout),
		zap.String("static_dir", staticDir))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
