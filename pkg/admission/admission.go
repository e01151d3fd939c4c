// Package admission is Consumer Admission (C7): a per-API-key token
// bucket with scheduled refill, ACL enforcement, and atomic call
// counters. Grounded on the teacher's per-key serialization idiom in
// pkg/mcp/client.go (a sync.Map of per-key *sync.Mutex, rather than one
// global lock) and pkg/services/session_service.go's UpdateOneID/
// ent.IsNotFound translation for the persistence side.
package admission

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/checkmate-dev/checkmate/ent"
	"github.com/checkmate-dev/checkmate/ent/consumer"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/ids"
	"github.com/checkmate-dev/checkmate/pkg/models"
)

// ErrConsumerExists is returned by Create when req.Name is already taken.
// checkerr.Kind's closed taxonomy has no 409 member, so the API layer
// detects this sentinel directly via errors.Is rather than through a Kind.
var ErrConsumerExists = errors.New("consumer already exists")

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const apiKeyLength = 32

// GenerateAPIKey returns a 32-character base62 string drawn from a
// cryptographic RNG, spec.md §4.7.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", checkerr.Wrap(checkerr.InternalError, "generate api key", err)
	}
	out := make([]byte, apiKeyLength)
	for i, b := range buf {
		out[i] = base62Alphabet[int(b)%len(base62Alphabet)]
	}
	return string(out), nil
}

// Gate is the C7 admission surface: per-key token-bucket rate limiting,
// ACL checks, and call-count bookkeeping.
type Gate struct {
	client *ent.Client
	cfg    *config.AdmissionConfig

	keyLocks sync.Map // consumer name -> *sync.Mutex, generalized from the teacher's per-server reinitMu
}

// New builds a Gate.
func New(client *ent.Client, cfg *config.AdmissionConfig) *Gate {
	return &Gate{client: client, cfg: cfg}
}

func (g *Gate) lockFor(name string) *sync.Mutex {
	muI, _ := g.keyLocks.LoadOrStore(name, &sync.Mutex{})
	return muI.(*sync.Mutex)
}

// Decision is the outcome of Admit.
type Decision struct {
	Admitted     bool
	RetryAfter   time.Duration
	ConsumerName string
}

// Admit checks the ACL, then the token bucket, for one request against
// api, keyed by apiKey. It refills the bucket for elapsed time before
// evaluating admission, so a scheduled background tick is an optimization
// rather than a correctness requirement.
func (g *Gate) Admit(ctx context.Context, apiKey, api string) (Decision, error) {
	row, err := g.client.Consumer.Query().Where(consumer.APIKeyEQ(apiKey)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Decision{}, checkerr.New(checkerr.Unauthorized, "unknown api key")
		}
		return Decision{}, checkerr.Wrap(checkerr.InternalError, "look up consumer by api key", err)
	}
	if !row.IsActive {
		return Decision{}, checkerr.New(checkerr.Unauthorized, "consumer is deactivated")
	}

	allowed := false
	for _, a := range row.AllowedApis {
		if a == api {
			allowed = true
			break
		}
	}
	if !allowed {
		return Decision{}, checkerr.New(checkerr.Forbidden, fmt.Sprintf("consumer %q may not call %q", row.Name, api))
	}

	mu := g.lockFor(row.Name)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	tokens := refill(row.Tokens, row.LastRefillAt, now, row.Capacity, row.MillisecondsPerRequest)

	if tokens < 1 {
		retryAfter := time.Duration(row.MillisecondsPerRequest) * time.Millisecond
		if err := g.persistTokens(ctx, row.ID, tokens, now); err != nil {
			return Decision{}, err
		}
		return Decision{Admitted: false, RetryAfter: retryAfter, ConsumerName: row.Name}, nil
	}

	tokens--
	if err := g.persistTokens(ctx, row.ID, tokens, now); err != nil {
		return Decision{}, err
	}
	return Decision{Admitted: true, ConsumerName: row.Name}, nil
}

// refill adds floor(elapsed / millisecondsPerRequest) tokens, clamped at
// capacity, per spec.md §4.7's scheduled-tick formula applied lazily at
// admission time rather than only on a background ticker.
func refill(tokens float64, lastRefillAt *time.Time, now time.Time, capacity, millisecondsPerRequest int) float64 {
	if lastRefillAt == nil || millisecondsPerRequest <= 0 {
		return math.Min(tokens, float64(capacity))
	}
	elapsedMs := now.Sub(*lastRefillAt).Milliseconds()
	added := math.Floor(float64(elapsedMs) / float64(millisecondsPerRequest))
	if added <= 0 {
		return tokens
	}
	return math.Min(tokens+added, float64(capacity))
}

func (g *Gate) persistTokens(ctx context.Context, id string, tokens float64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err := g.client.Consumer.UpdateOneID(id).SetTokens(tokens).SetLastRefillAt(at).Exec(ctx)
	if err != nil {
		return checkerr.Wrap(checkerr.InternalError, "persist token bucket state", err)
	}
	return nil
}

// RecordCall increments the lifetime and monthly call counters for api,
// only when the downstream response was not a 5xx (spec.md §4.7: upstream
// outages must not burn quota).
func (g *Gate) RecordCall(ctx context.Context, consumerName, api string, statusCode int, at time.Time) error {
	if statusCode >= 500 {
		return nil
	}

	mu := g.lockFor(consumerName)
	mu.Lock()
	defer mu.Unlock()

	row, err := g.client.Consumer.Query().Where(consumer.NameEQ(consumerName)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return checkerr.New(checkerr.NotFound, "unknown consumer")
		}
		return checkerr.Wrap(checkerr.InternalError, "look up consumer for call recording", err)
	}

	counters := make(map[string]int64, len(row.CallCounters)+2)
	for k, v := range row.CallCounters {
		counters[k] = v
	}
	counters["totalCalls-"+api]++
	counters[fmt.Sprintf("totalCalls-%s-%s", at.Format("2006-01"), api)]++

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := g.client.Consumer.UpdateOneID(row.ID).SetCallCounters(counters).Exec(ctx); err != nil {
		return checkerr.Wrap(checkerr.InternalError, "persist call counters", err)
	}
	return nil
}

// Create registers a new consumer, enforcing name uniqueness.
func (g *Gate) Create(ctx context.Context, req models.CreateConsumerRequest) (models.CreateConsumerResult, error) {
	apiKey, err := GenerateAPIKey()
	if err != nil {
		return models.CreateConsumerResult{}, err
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = g.cfg.DefaultCapacity
	}
	msPerRequest := req.MillisecondsPerRequest
	if msPerRequest == 0 {
		msPerRequest = g.cfg.DefaultMillisecondsPerRequest
	}
	msForUpdates := req.MillisecondsForUpdates
	if msForUpdates == 0 {
		msForUpdates = g.cfg.DefaultMillisecondsForUpdates
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := g.client.Consumer.Query().Where(consumer.NameEQ(req.Name)).Exist(ctx)
	if err != nil {
		return models.CreateConsumerResult{}, checkerr.Wrap(checkerr.InternalError, "check consumer name uniqueness", err)
	}
	if exists {
		return models.CreateConsumerResult{}, fmt.Errorf("%w: %q", ErrConsumerExists, req.Name)
	}

	_, err = g.client.Consumer.Create().
		SetID(ids.New()).
		SetName(req.Name).
		SetAPIKey(apiKey).
		SetAllowedApis(req.AllowedAPIs).
		SetCapacity(capacity).
		SetMillisecondsPerRequest(msPerRequest).
		SetMillisecondsForUpdates(msForUpdates).
		SetTokens(float64(capacity)).
		Save(ctx)
	if err != nil {
		return models.CreateConsumerResult{}, checkerr.Wrap(checkerr.InternalError, "create consumer", err)
	}

	return models.CreateConsumerResult{Name: req.Name, APIKey: apiKey}, nil
}

// Deactivate marks a consumer inactive rather than deleting its row, so
// historical submissions keep a valid consumerName reference.
func (g *Gate) Deactivate(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	n, err := g.client.Consumer.Update().Where(consumer.NameEQ(name)).SetIsActive(false).Save(ctx)
	if err != nil {
		return checkerr.Wrap(checkerr.InternalError, "deactivate consumer", err)
	}
	if n == 0 {
		return checkerr.New(checkerr.NotFound, "unknown consumer")
	}
	return nil
}

// UpdateAllowedAPIs replaces a consumer's ACL.
func (g *Gate) UpdateAllowedAPIs(ctx context.Context, name string, allowedAPIs []string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	n, err := g.client.Consumer.Update().Where(consumer.NameEQ(name)).SetAllowedApis(allowedAPIs).Save(ctx)
	if err != nil {
		return checkerr.Wrap(checkerr.InternalError, "update consumer allowed apis", err)
	}
	if n == 0 {
		return checkerr.New(checkerr.NotFound, "unknown consumer")
	}
	return nil
}

// Get returns a consumer's public view.
func (g *Gate) Get(ctx context.Context, name string) (models.ConsumerView, error) {
	row, err := g.client.Consumer.Query().Where(consumer.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.ConsumerView{}, checkerr.New(checkerr.NotFound, "unknown consumer")
		}
		return models.ConsumerView{}, checkerr.Wrap(checkerr.InternalError, "look up consumer", err)
	}
	return toView(row), nil
}

// List returns every consumer's public view.
func (g *Gate) List(ctx context.Context) ([]models.ConsumerView, error) {
	rows, err := g.client.Consumer.Query().All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "list consumers", err)
	}
	out := make([]models.ConsumerView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toView(row))
	}
	return out, nil
}

// RunRefillLoop ticks every consumer's bucket forward on a fixed
// interval until ctx is cancelled. Admit already refills lazily at
// request time; this background tick exists so idle consumers recover
// capacity even between requests, the same "best-effort background
// executor" shape as the teacher's pkg/queue scheduled cleanups. A
// failed tick is passed to onErr (when non-nil) and never stops the loop.
func (g *Gate) RunRefillLoop(ctx context.Context, interval time.Duration, onErr func(error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := g.refillAll(ctx); err != nil && onErr != nil {
				onErr(err)
			}
		}
	}
}

func (g *Gate) refillAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := g.client.Consumer.Query().Where(consumer.IsActiveEQ(true)).All(ctx)
	if err != nil {
		return checkerr.Wrap(checkerr.InternalError, "list consumers for refill tick", err)
	}

	now := time.Now()
	for _, row := range rows {
		mu := g.lockFor(row.Name)
		mu.Lock()
		tokens := refill(row.Tokens, row.LastRefillAt, now, row.Capacity, row.MillisecondsPerRequest)
		if tokens != row.Tokens {
			_ = g.persistTokens(ctx, row.ID, tokens, now)
		}
		mu.Unlock()
	}
	return nil
}

func toView(row *ent.Consumer) models.ConsumerView {
	return models.ConsumerView{
		Name:        row.Name,
		AllowedAPIs: row.AllowedApis,
		IsActive:    row.IsActive,
		Capacity:    row.Capacity,
		Tokens:      row.Tokens,
	}
}
