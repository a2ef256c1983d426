package inventory

import (
	"context"
	"time"

	"tracknest.io/asset-inventory-service/pkg/db"
	"tracknest.io/asset-inventory-service/pkg/models"
)

type IAsset interface {
	ListAssets() ([]models.Asset, error)
	CreateAsset(input CreateAssetInput) (*models.Asset, error)
	UpdateAsset(id uint, patch UpdateAssetInput) error
	DeleteAsset(id uint) error
	RecordProbeResult(hostname string, status models.OnlineStatus, at time.Time) error
}

type ILocation interface {
	ListLocations() ([]models.Location, error)
	AddLocation(name string, area *models.Rect) (*models.Location, error)
	DeleteLocation(id uint) error
}

type IProber interface {
	Probe(ctx context.Context, hostname string) (models.OnlineStatus, error)
}

type Inventory struct {
	Db       db.DB
	Asset    IAsset
	Location ILocation
	Prober   IProber
}

type ServiceOpts struct {
	Asset    IAsset
	Location ILocation
	Prober   IProber
}

func (i *Inventory) WithServices(opts ServiceOpts) *Inventory {
	if opts.Asset != nil {
		i.Asset = opts.Asset
	}
	if opts.Location != nil {
		i.Location = opts.Location
	}
	if opts.Prober != nil {
		i.Prober = opts.Prober
	}
	return i
}
