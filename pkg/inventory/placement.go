package inventory

import (
	"encoding/binary"
	"hash/fnv"

	"tracknest.io/asset-inventory-service/pkg/models"
)

// Placement is a resolved map coordinate for one asset.
type Placement struct {
	AssetID uint    `json:"asset_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// ResolvePlacement computes the display point for an asset. Priority:
// explicit coords, then a point inside the area of the location matching the
// asset's sector name, then location name. The in-area point is derived from
// a hash of the asset id so a marker does not move between renders. Child
// assets are never placed on their own.
func ResolvePlacement(asset models.Asset, locations []models.Location) (models.Point, bool) {
	if asset.ParentAssetID != nil {
		return models.Point{}, false
	}
	if asset.Coords != nil {
		return *asset.Coords, true
	}

	location := findLocation(locations, asset.SectorName)
	if location == nil {
		location = findLocation(locations, asset.LocationName)
	}
	if location == nil || location.Area == nil {
		return models.Point{}, false
	}

	return pointInArea(asset.ID, *location.Area), true
}

// ResolvePlacements maps every placeable asset to its point.
func ResolvePlacements(assets []models.Asset, locations []models.Location) []Placement {
	placements := make([]Placement, 0, len(assets))
	for _, asset := range assets {
		if point, ok := ResolvePlacement(asset, locations); ok {
			placements = append(placements, Placement{AssetID: asset.ID, X: point.X, Y: point.Y})
		}
	}
	return placements
}

func findLocation(locations []models.Location, name string) *models.Location {
	if name == "" {
		return nil
	}
	for idx := range locations {
		if locations[idx].Name == name {
			return &locations[idx]
		}
	}
	return nil
}

// pointInArea spreads assets over [x, x+w) x [y, y+h) using the two halves
// of an FNV-1a hash of the asset id as fractions of the rectangle.
func pointInArea(assetID uint, area models.Rect) models.Point {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(assetID))
	h.Write(buf[:])
	sum := h.Sum64()

	fx := float64(uint32(sum>>32)) / float64(1<<32)
	fy := float64(uint32(sum)) / float64(1<<32)

	return models.Point{
		X: area.X + area.Width*fx,
		Y: area.Y + area.Height*fy,
	}
}
