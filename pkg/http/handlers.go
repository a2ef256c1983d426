package http

import (
	"errors"
	"net/http"
	"strconv"

	"tracknest.io/asset-inventory-service/pkg/inventory"
	"tracknest.io/asset-inventory-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func statusFromError(err error) int {
	switch {
	case errors.Is(err, inventory.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrProbe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
		return 0, false
	}
	return uint(id), true
}

func (rs *RestfulServer) GetLocations(c *gin.Context) {
	locations, err := rs.Inv.Location.ListLocations()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

type LocationRequest struct {
	Name string       `json:"name"`
	Area *models.Rect `json:"area"`
}

var locationRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Required(),
})

func (rs *RestfulServer) PostLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := locationRequestSchema.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	location, err := rs.Inv.Location.AddLocation(req.Name, req.Area)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (rs *RestfulServer) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := rs.Inv.Location.DeleteLocation(id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetAssets(c *gin.Context) {
	assets, err := rs.Inv.Asset.ListAssets()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, assets)
}

// AssetDataPayload is the "data" document of an asset registration. The
// monitors and peripherals fields only matter for workstations.
type AssetDataPayload struct {
	DisplayName  string                   `json:"display_name"`
	AssetTag     string                   `json:"asset_tag"`
	RFIDTag      string                   `json:"rfid_tag"`
	SerialNumber string                   `json:"serial_number"`
	BrandModel   string                   `json:"brand_model"`
	LocationName string                   `json:"location_name"`
	SectorName   string                   `json:"sector_name"`
	Attributes   models.AttrBag           `json:"attributes"`
	Coords       *models.Point            `json:"coords"`
	Monitors     []inventory.MonitorInput `json:"monitors"`
	Peripherals  []string                 `json:"peripherals"`
}

type CreateAssetRequest struct {
	Type string            `json:"type"`
	Data *AssetDataPayload `json:"data"`
}

var createAssetRequestSchema = z.Struct(z.Shape{
	"Type": z.String().Required(),
})

func (rs *RestfulServer) PostAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := createAssetRequestSchema.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if req.Data == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset data is required"})
		return
	}

	asset, err := rs.Inv.Asset.CreateAsset(inventory.CreateAssetInput{
		Type:         req.Type,
		DisplayName:  req.Data.DisplayName,
		AssetTag:     req.Data.AssetTag,
		RFIDTag:      req.Data.RFIDTag,
		SerialNumber: req.Data.SerialNumber,
		BrandModel:   req.Data.BrandModel,
		LocationName: req.Data.LocationName,
		SectorName:   req.Data.SectorName,
		Attributes:   req.Data.Attributes,
		Coords:       req.Data.Coords,
		Monitors:     req.Data.Monitors,
		Peripherals:  req.Data.Peripherals,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

type UpdateAssetRequest struct {
	DisplayName  string         `json:"display_name"`
	AssetTag     string         `json:"asset_tag"`
	RFIDTag      string         `json:"rfid_tag"`
	SerialNumber string         `json:"serial_number"`
	BrandModel   string         `json:"brand_model"`
	LocationName string         `json:"location_name"`
	SectorName   string         `json:"sector_name"`
	Attributes   models.AttrBag `json:"attributes"`
	Coords       *models.Point  `json:"coords"`
}

func (rs *RestfulServer) PutAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := rs.Inv.Asset.UpdateAsset(id, inventory.UpdateAssetInput{
		DisplayName:  req.DisplayName,
		AssetTag:     req.AssetTag,
		RFIDTag:      req.RFIDTag,
		SerialNumber: req.SerialNumber,
		BrandModel:   req.BrandModel,
		LocationName: req.LocationName,
		SectorName:   req.SectorName,
		Attributes:   req.Attributes,
		Coords:       req.Coords,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) DeleteAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := rs.Inv.Asset.DeleteAsset(id); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) GetPlacements(c *gin.Context) {
	assets, err := rs.Inv.Asset.ListAssets()
	if err != nil {
		abortWithError(c, err)
		return
	}
	locations, err := rs.Inv.Location.ListLocations()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, inventory.ResolvePlacements(assets, locations))
}

type PingRequest struct {
	Hostname string `json:"hostname"`
}

var pingRequestSchema = z.Struct(z.Shape{
	"Hostname": z.String().Required(),
})

func (rs *RestfulServer) PostPing(c *gin.Context) {
	var req PingRequest
	if err := pingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckProbeLimiter(req.Hostname) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.Inv.ProbeHost(c.Request.Context(), req.Hostname)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
