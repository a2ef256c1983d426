package inventory

import (
	"context"
	"strings"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"go.uber.org/zap"
	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/models"
)

// ProbeResult is the outcome of one on-demand reachability check.
type ProbeResult struct {
	Status    models.OnlineStatus `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
}

// IcmpProber sends a single ICMP echo with a bounded timeout. An unanswered
// probe is Offline; a probe that could not be sent at all (resolution,
// socket, permission) is an ErrProbe, never Offline.
type IcmpProber struct {
	Timeout time.Duration
}

func (p *IcmpProber) Probe(ctx context.Context, hostname string) (models.OnlineStatus, error) {
	pinger, err := probing.NewPinger(hostname)
	if err != nil {
		return models.StatusUnknown, probeErrorf("resolve %q: %v", hostname, err)
	}

	pinger.Count = 1
	pinger.Timeout = p.Timeout
	pinger.SetPrivileged(false)

	if err := pinger.RunWithContext(ctx); err != nil {
		return models.StatusUnknown, probeErrorf("send echo to %q: %v", hostname, err)
	}

	if pinger.Statistics().PacketsRecv > 0 {
		return models.StatusOnline, nil
	}
	return models.StatusOffline, nil
}

// ProbeHost runs the reachability probe for a hostname, stamps the current
// time and records the outcome against every asset carrying that display
// name. No storage transaction is held while the probe waits on the network.
func (i *Inventory) ProbeHost(ctx context.Context, hostname string) (*ProbeResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvProbe),
	)

	if strings.TrimSpace(hostname) == "" {
		return nil, validationErrorf("hostname is required")
	}

	status, err := i.Prober.Probe(ctx, hostname)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := i.Asset.RecordProbeResult(hostname, status, now); err != nil {
		return nil, err
	}

	logger.Info("Probed host",
		zap.String("hostname", hostname),
		zap.String("status", string(status)))

	return &ProbeResult{Status: status, Timestamp: now}, nil
}
