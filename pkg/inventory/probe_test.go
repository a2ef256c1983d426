package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/models"
	_ "tracknest.io/asset-inventory-service/pkg/testing"
)

func TestProbeHost_OfflineIsNotAnError(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, mockProber := GetMockInventoryWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	hostname := uuid.NewString()

	target, err := inv.Asset.CreateAsset(CreateAssetInput{
		Type: models.AssetTypeWorkstation, DisplayName: hostname,
	})
	require.NoError(t, err)

	mockProber.
		EXPECT().
		Probe(gomock.Any(), gomock.Eq(hostname)).
		Return(models.StatusOffline, nil).
		Times(1)

	result, err := inv.ProbeHost(context.Background(), hostname)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffline, result.Status)
	assert.WithinDuration(t, time.Now(), result.Timestamp, 5*time.Second)

	var saved models.Asset
	require.NoError(t, inv.Db.Conn.First(&saved, target.ID).Error)
	assert.Equal(t, models.StatusOffline, saved.OnlineStatus)
	require.NotNil(t, saved.LastProbedAt)
}

func TestProbeHost_Online(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, mockProber := GetMockInventoryWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	hostname := uuid.NewString()

	target, err := inv.Asset.CreateAsset(CreateAssetInput{
		Type: models.AssetTypeWorkstation, DisplayName: hostname,
	})
	require.NoError(t, err)

	mockProber.
		EXPECT().
		Probe(gomock.Any(), gomock.Eq(hostname)).
		Return(models.StatusOnline, nil).
		Times(1)

	result, err := inv.ProbeHost(context.Background(), hostname)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, result.Status)

	var saved models.Asset
	require.NoError(t, inv.Db.Conn.First(&saved, target.ID).Error)
	assert.Equal(t, models.StatusOnline, saved.OnlineStatus)
}

func TestProbeHost_MechanismFailure(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, mockProber := GetMockInventoryWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	hostname := uuid.NewString()

	target, err := inv.Asset.CreateAsset(CreateAssetInput{
		Type: models.AssetTypeWorkstation, DisplayName: hostname,
	})
	require.NoError(t, err)

	mockProber.
		EXPECT().
		Probe(gomock.Any(), gomock.Eq(hostname)).
		Return(models.StatusUnknown, probeErrorf("socket: operation not permitted")).
		Times(1)

	_, err = inv.ProbeHost(context.Background(), hostname)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProbe))

	// a failed mechanism records nothing
	var saved models.Asset
	require.NoError(t, inv.Db.Conn.First(&saved, target.ID).Error)
	assert.Empty(t, saved.OnlineStatus)
	assert.Nil(t, saved.LastProbedAt)
}

func TestProbeHost_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, inv, _ := GetMockInventoryWithMemorySqliteDialector(t, true)
	defer ctrl.Finish()

	// empty hostname never reaches the prober
	_, err := inv.ProbeHost(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
