package inventory

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/models"
)

func (i *Inventory) listLocations() ([]models.Location, error) {
	var locations []models.Location
	err := i.Db.Conn.Order("name").Find(&locations).Error
	return locations, err
}

func (i *Inventory) addLocation(name string, area *models.Rect) (*models.Location, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvLocation),
	)

	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("location name is required")
	}

	location := models.Location{Name: name, Area: area}
	if err := i.Db.Conn.Create(&location).Error; err != nil {
		// the unique index on name is the only constraint on this table
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, conflictErrorf("location %q already exists", name)
		}
		return nil, err
	}

	logger.Info("Added location", zap.Uint("id", location.ID), zap.String("name", location.Name))
	return &location, nil
}

// deleteLocation re-validates the name-based references from assets at
// delete time; there is no foreign key between the two tables.
func (i *Inventory) deleteLocation(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvLocation),
	)

	var location models.Location
	if err := i.Db.Conn.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("location %d does not exist", id)
		}
		return err
	}

	var inUse int64
	err := i.Db.Conn.Model(&models.Asset{}).
		Where("location_name = ? OR sector_name = ?", location.Name, location.Name).
		Count(&inUse).Error
	if err != nil {
		return err
	}
	if inUse > 0 {
		return conflictErrorf("location %q is in use by %d asset(s)", location.Name, inUse)
	}

	if err := i.Db.Conn.Delete(&models.Location{}, id).Error; err != nil {
		return err
	}

	logger.Info("Deleted location", zap.Uint("id", id), zap.String("name", location.Name))
	return nil
}

type ILocationImpl struct {
	inv *Inventory
}

func (il *ILocationImpl) ListLocations() ([]models.Location, error) {
	return il.inv.listLocations()
}

func (il *ILocationImpl) AddLocation(name string, area *models.Rect) (*models.Location, error) {
	return il.inv.addLocation(name, area)
}

func (il *ILocationImpl) DeleteLocation(id uint) error {
	return il.inv.deleteLocation(id)
}

func (i *Inventory) GetILocation() ILocation {
	return &ILocationImpl{inv: i}
}
