package inventory

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/models"
)

// MonitorInput is one monitor row of a workstation registration. Entries
// whose fields are all blank are not persisted.
type MonitorInput struct {
	AssetTag     string `json:"asset_tag"`
	RFIDTag      string `json:"rfid_tag"`
	SerialNumber string `json:"serial_number"`
	BrandModel   string `json:"brand_model"`
}

func (m MonitorInput) blank() bool {
	return strings.TrimSpace(m.AssetTag) == "" &&
		strings.TrimSpace(m.RFIDTag) == "" &&
		strings.TrimSpace(m.SerialNumber) == "" &&
		strings.TrimSpace(m.BrandModel) == ""
}

type CreateAssetInput struct {
	Type         string
	DisplayName  string
	AssetTag     string
	RFIDTag      string
	SerialNumber string
	BrandModel   string
	LocationName string
	SectorName   string
	Attributes   models.AttrBag
	Coords       *models.Point

	// Workstation registration only.
	Monitors    []MonitorInput
	Peripherals []string
}

type UpdateAssetInput struct {
	DisplayName  string
	AssetTag     string
	RFIDTag      string
	SerialNumber string
	BrandModel   string
	LocationName string
	SectorName   string
	Attributes   models.AttrBag
	Coords       *models.Point
}

func (i *Inventory) listAssets() ([]models.Asset, error) {
	var assets []models.Asset
	err := i.Db.Conn.Order("display_name").Find(&assets).Error
	return assets, err
}

func (i *Inventory) createAsset(input CreateAssetInput) (*models.Asset, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvAsset),
	)

	if strings.TrimSpace(input.Type) == "" {
		return nil, validationErrorf("asset type is required")
	}

	if input.Type == models.AssetTypeWorkstation {
		return i.createWorkstation(input, logger)
	}

	attrs := input.Attributes
	if attrs == nil {
		attrs = models.AttrBag{}
	}

	asset := models.Asset{
		Type:             input.Type,
		DisplayName:      input.DisplayName,
		AssetTag:         input.AssetTag,
		RFIDTag:          input.RFIDTag,
		SerialNumber:     input.SerialNumber,
		BrandModel:       input.BrandModel,
		LocationName:     input.LocationName,
		SectorName:       input.SectorName,
		TypeSpecificData: attrs,
		Coords:           input.Coords,
	}

	if err := i.Db.Conn.Create(&asset).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered asset", zap.Uint("id", asset.ID), zap.String("type", asset.Type))
	return &asset, nil
}

// createWorkstation inserts the computer row plus one Monitor child per
// non-blank monitor, all in one transaction. Children inherit the
// workstation's location and sector.
func (i *Inventory) createWorkstation(input CreateAssetInput, logger *zap.Logger) (*models.Asset, error) {
	parent := models.Asset{
		Type:             models.AssetTypeWorkstation,
		DisplayName:      input.DisplayName,
		AssetTag:         input.AssetTag,
		RFIDTag:          input.RFIDTag,
		SerialNumber:     input.SerialNumber,
		BrandModel:       input.BrandModel,
		LocationName:     input.LocationName,
		SectorName:       input.SectorName,
		TypeSpecificData: models.WorkstationAttrs{Peripherals: input.Peripherals}.Bag(),
		Coords:           input.Coords,
	}

	err := i.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&parent).Error; err != nil {
			return err
		}

		for _, monitor := range input.Monitors {
			if monitor.blank() {
				continue
			}
			child := models.Asset{
				Type:          models.AssetTypeMonitor,
				AssetTag:      monitor.AssetTag,
				RFIDTag:       monitor.RFIDTag,
				SerialNumber:  monitor.SerialNumber,
				BrandModel:    monitor.BrandModel,
				LocationName:  input.LocationName,
				SectorName:    input.SectorName,
				ParentAssetID: &parent.ID,
			}
			if err := tx.Create(&child).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Registered workstation", zap.Uint("id", parent.ID))
	return &parent, nil
}

func (i *Inventory) updateAsset(id uint, patch UpdateAssetInput) error {
	// Type, ParentAssetID and CreatedAt are deliberately not in this map.
	updates := map[string]any{
		"display_name":       patch.DisplayName,
		"asset_tag":          patch.AssetTag,
		"rfid_tag":           patch.RFIDTag,
		"serial_number":      patch.SerialNumber,
		"brand_model":        patch.BrandModel,
		"location_name":      patch.LocationName,
		"sector_name":        patch.SectorName,
		"type_specific_data": patch.Attributes,
	}
	if patch.Coords != nil {
		updates["coords"] = patch.Coords
	}

	result := i.Db.Conn.Model(&models.Asset{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFoundErrorf("asset %d does not exist", id)
	}
	return nil
}

// deleteAsset removes the asset and every child pointing at it in one
// transaction. The FK cascades on sqlite, but the explicit child delete
// keeps the contract on stores without that guarantee.
func (i *Inventory) deleteAsset(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvAsset),
	)

	err := i.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var target models.Asset
		if err := tx.First(&target, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErrorf("asset %d does not exist", id)
			}
			return err
		}

		if err := tx.Where("parent_asset_id = ?", id).Delete(&models.Asset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Asset{}, id).Error
	})
	if err != nil {
		return err
	}

	logger.Info("Deleted asset with children", zap.Uint("id", id))
	return nil
}

func (i *Inventory) recordProbeResult(hostname string, status models.OnlineStatus, at time.Time) error {
	// Probe targets are matched by display name only; there is no dedicated
	// probe-target key.
	return i.Db.Conn.Model(&models.Asset{}).
		Where("display_name = ?", hostname).
		Updates(map[string]any{
			"online_status":  status,
			"last_probed_at": at,
		}).Error
}

type IAssetImpl struct {
	inv *Inventory
}

func (ia *IAssetImpl) ListAssets() ([]models.Asset, error) {
	return ia.inv.listAssets()
}

func (ia *IAssetImpl) CreateAsset(input CreateAssetInput) (*models.Asset, error) {
	return ia.inv.createAsset(input)
}

func (ia *IAssetImpl) UpdateAsset(id uint, patch UpdateAssetInput) error {
	return ia.inv.updateAsset(id, patch)
}

func (ia *IAssetImpl) DeleteAsset(id uint) error {
	return ia.inv.deleteAsset(id)
}

func (ia *IAssetImpl) RecordProbeResult(hostname string, status models.OnlineStatus, at time.Time) error {
	return ia.inv.recordProbeResult(hostname, status, at)
}

func (i *Inventory) GetIAsset() IAsset {
	return &IAssetImpl{inv: i}
}
