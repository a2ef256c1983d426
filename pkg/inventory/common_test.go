package inventory

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"tracknest.io/asset-inventory-service/pkg/db"
	"tracknest.io/asset-inventory-service/pkg/inventory/mocks"
)

func GetMockInventoryWithMemorySqliteDialector(t *testing.T, useMockProber bool) (
	*gomock.Controller,
	*Inventory,
	*mocks.MockIProber,
) {
	ctrl := gomock.NewController(t)

	mockProber := mocks.NewMockIProber(ctrl)

	dbInstance, err := db.New(db.UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("failed to open memory store: %v", err)
	}

	invInstance := &Inventory{Db: *dbInstance}

	var prober IProber = &IcmpProber{Timeout: time.Second}
	if useMockProber {
		prober = mockProber
	}

	invInstance.WithServices(ServiceOpts{
		Asset:    invInstance.GetIAsset(),
		Location: invInstance.GetILocation(),
		Prober:   prober,
	})

	return ctrl, invInstance, mockProber
}
