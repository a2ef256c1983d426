package models

import "time"

type OnlineStatus string

const (
	StatusOnline  OnlineStatus = "Online"
	StatusOffline OnlineStatus = "Offline"
	StatusUnknown OnlineStatus = "Unknown"
)

const (
	AssetTypeWorkstation = "Workstation"
	AssetTypeMonitor     = "Monitor"
	AssetTypePhone       = "Phone"
	AssetTypeCamera      = "Camera"
	AssetTypeSwitch      = "Switch"
)

// Asset is one tracked physical item. A Monitor row belonging to a
// Workstation carries the parent's id in ParentAssetID; deleting the parent
// removes its children.
type Asset struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	Type             string       `gorm:"not null;index" json:"type"`
	DisplayName      string       `json:"display_name"`
	AssetTag         string       `json:"asset_tag"`
	RFIDTag          string       `gorm:"column:rfid_tag" json:"rfid_tag"`
	SerialNumber     string       `json:"serial_number"`
	BrandModel       string       `json:"brand_model"`
	LocationName     string       `gorm:"index" json:"location_name"`
	SectorName       string       `gorm:"index" json:"sector_name"`
	ParentAssetID    *uint        `gorm:"index" json:"parent_asset_id,omitempty"`
	TypeSpecificData AttrBag      `gorm:"type:text" json:"type_specific_data"`
	Coords           *Point       `gorm:"type:text" json:"coords,omitempty"`
	OnlineStatus     OnlineStatus `gorm:"type:varchar(10)" json:"online_status,omitempty"`
	LastProbedAt     *time.Time   `json:"last_probed_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`

	Children []Asset `gorm:"foreignKey:ParentAssetID;constraint:OnDelete:CASCADE" json:"-"`
}

// Location is a named place. LocationName/SectorName on Asset reference it
// by name, not by id, so renaming a location orphans the text on assets.
type Location struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
	Area *Rect  `gorm:"type:text" json:"area,omitempty"`
}
