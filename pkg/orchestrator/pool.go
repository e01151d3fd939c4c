package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
)

// Pool runs WorkerCount goroutines that each poll checkstore for the next
// pending check, run it through RunPipeline, and release the claim.
// Grounded on the teacher's pkg/queue.WorkerPool/Worker: claim-next poll
// loop, per-check heartbeat goroutine, periodic orphan detection, and a
// stopCh-based graceful shutdown that lets in-flight checks finish before
// returning.
type Pool struct {
	podID string
	orch  *Orchestrator
	store *checkstore.Store
	cfg   *config.OrchestratorConfig
	log   *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewPool builds a Pool. podID identifies this replica in owner_pod_id,
// so orphan recovery can tell a crashed replica's claims from a live one's.
func NewPool(podID string, orch *Orchestrator, store *checkstore.Store, cfg *config.OrchestratorConfig, logger *slog.Logger) *Pool {
	if cfg == nil {
		cfg = config.DefaultOrchestratorConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		podID:  podID,
		orch:   orch,
		store:  store,
		cfg:    cfg,
		log:    logger,
		stopCh: make(chan struct{}),
	}
}

// Start spawns the configured number of poll workers plus the orphan
// detection loop. Safe to call once; a second call is a no-op.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		p.log.Warn("orchestrator pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return
	}
	p.started = true

	p.log.Info("starting orchestrator worker pool", "pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		id := fmt.Sprintf("%s-worker-%d", p.podID, i)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx, id)
		}()
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()
}

// Stop signals every worker to finish its current check and stop
// polling, then blocks until GracefulShutdownTimeout elapses or they
// all exit, whichever comes first.
func (p *Pool) Stop() {
	p.log.Info("stopping orchestrator worker pool")
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info("orchestrator worker pool stopped gracefully")
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		p.log.Warn("orchestrator worker pool shutdown timed out, checks may be left claimed for orphan recovery")
	}
}

func (p *Pool) run(ctx context.Context, workerID string) {
	log := p.log.With("worker_id", workerID)
	log.Info("orchestrator worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("orchestrator worker shutting down")
			return
		case <-ctx.Done():
			log.Info("context cancelled, orchestrator worker shutting down")
			return
		default:
			if err := p.pollAndProcess(ctx, workerID); err != nil {
				if checkerr.Is(err, checkerr.NotFound) || errors.Is(err, errAtCapacity) {
					p.sleep(p.pollInterval())
					continue
				}
				log.Error("error processing claimed check", "error", err)
				p.sleep(time.Second)
			}
		}
	}
}

// errAtCapacity signals that MaxConcurrentChecks is already reached; the
// worker should back off rather than claim another check this tick.
var errAtCapacity = checkerr.New(checkerr.QuotaExhausted, "orchestrator at max concurrent checks")

func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

func (p *Pool) pollInterval() time.Duration {
	if p.cfg.PollIntervalJitter <= 0 {
		return p.cfg.PollInterval
	}
	jitter := time.Duration(rand.Int64N(int64(p.cfg.PollIntervalJitter)))
	return p.cfg.PollInterval + jitter
}

// pollAndProcess checks global capacity, claims a check, and drives it
// through RunPipeline under a per-check timeout with a heartbeat
// goroutine keeping the claim alive.
func (p *Pool) pollAndProcess(ctx context.Context, workerID string) error {
	active, err := p.store.CountActive(ctx)
	if err != nil {
		return err
	}
	if active >= p.cfg.MaxConcurrentChecks {
		return errAtCapacity
	}

	row, err := p.store.ClaimNext(ctx, p.podID)
	if err != nil {
		return err
	}

	log := p.log.With("check_id", row.ID, "worker_id", workerID)
	log.Info("check claimed")

	checkCtx, cancel := context.WithTimeout(ctx, p.cfg.CheckTimeout)
	defer cancel()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(checkCtx)
	go p.runHeartbeat(heartbeatCtx, row.ID)

	p.orch.RunPipeline(checkCtx, row)

	cancelHeartbeat()

	// RunPipeline always leaves the check in a terminal generationStatus
	// (completed or an error-* status), so the claim is released purely
	// for bookkeeping — ClaimNext's own WHERE clause already excludes
	// non-pending rows regardless of ownership.
	if err := p.store.ReleaseClaim(context.Background(), row.ID); err != nil {
		log.Warn("failed to release check claim", "error", err)
	}

	log.Info("check processing complete")
	return nil
}

func (p *Pool) runHeartbeat(ctx context.Context, checkID string) {
	interval := p.cfg.OrphanThreshold / 3
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.store.Heartbeat(ctx, checkID); err != nil {
				p.log.Warn("heartbeat failed", "check_id", checkID, "error", err)
			}
		}
	}
}

// runOrphanDetection periodically releases checks whose claim has gone
// stale (owning worker crashed or its pod was killed) back to the pool.
// Every replica runs this independently; release is idempotent.
func (p *Pool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndReleaseOrphans(ctx); err != nil {
				p.log.Error("orphan detection failed", "error", err)
			}
		}
	}
}

func (p *Pool) detectAndReleaseOrphans(ctx context.Context) error {
	cutoff := time.Now().Add(-p.cfg.OrphanThreshold)
	orphans, err := p.store.ListOrphaned(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		return nil
	}

	p.log.Warn("detected orphaned checks", "count", len(orphans))
	for _, row := range orphans {
		if err := p.store.ReleaseClaim(ctx, row.ID); err != nil {
			p.log.Error("failed to release orphaned check", "check_id", row.ID, "error", err)
			continue
		}
		p.log.Warn("orphaned check released back to pool", "check_id", row.ID, "owner_pod_id", row.OwnerPodID)
	}
	return nil
}
