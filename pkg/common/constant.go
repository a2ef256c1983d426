package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyInvDBType string = "INV_DB_TYPE"
	EnvKeyInvDBPath string = "INV_DB_PATH"

	EnvKeyInvHttpHostPort string = "INV_HTTP_HOST_PORT"
	EnvKeyInvStaticDir    string = "INV_STATIC_DIR"

	EnvKeyInvProbeTimeoutMs string = "INV_PROBE_TIMEOUT_MS"
	EnvKeyInvProbeRate      string = "INV_PROBE_RATE"
	EnvKeyInvProbeBurst     string = "INV_PROBE_BURST"

	LoggerNameInventoryCore string = "inventory_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldInvCategory  string = "category"

	LoggerCategoryInvAsset     string = "asset"
	LoggerCategoryInvLocation  string = "location"
	LoggerCategoryInvPlacement string = "placement"
	LoggerCategoryInvProbe     string = "probe"
	LoggerCategoryInvSchema    string = "schema"
)
