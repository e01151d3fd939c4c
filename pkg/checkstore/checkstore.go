// Package checkstore is the Check Store Adapter (C3): typed operations
// over the generated ent client for the checks table, the single-writer
// authority every orchestrator instance goes through. Modeled on the
// teacher's pkg/services/session_service.go (UpdateOneID builder chains,
// context.WithTimeout-guarded writes, ent.IsNotFound translation).
package checkstore

import (
	"context"
	"math"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/checkmate-dev/checkmate/ent"
	"github.com/checkmate-dev/checkmate/ent/check"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/checktypes"
)

// WriteTimeout bounds every individual store write, matching the teacher's
// session_service.go pattern of a short background-context deadline around
// critical single-row writes.
const WriteTimeout = 5 * time.Second

// Store is the Check Store Adapter.
type Store struct {
	client *ent.Client
}

// New builds a Store around an already-connected ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// NewCheckInput carries everything the orchestrator knows before the
// pipeline starts (C6 step 3): hashes are precomputed by C1, embeddings are
// filled in asynchronously after insert.
type NewCheckInput struct {
	ID          string
	Type        check.Type
	Text        *string
	ImageURL    *string
	Caption     *string
	Timestamp   time.Time
	TextHash    *string
	CaptionHash *string
	ImageHash   *string
	PDQVector   []int
}

// Insert creates a new Check row with the reserved id, returning it.
func (s *Store) Insert(ctx context.Context, in NewCheckInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	builder := s.client.Check.Create().
		SetID(in.ID).
		SetType(in.Type).
		SetTimestamp(in.Timestamp).
		SetCrowdsourcedCategory("unsure").
		SetGenerationStatus(check.GenerationStatusPending)

	if in.Text != nil {
		builder = builder.SetNillableText(in.Text)
	}
	if in.ImageURL != nil {
		builder = builder.SetNillableImageURL(in.ImageURL)
	}
	if in.Caption != nil {
		builder = builder.SetNillableCaption(in.Caption)
	}
	if in.TextHash != nil {
		builder = builder.SetNillableTextHash(in.TextHash)
	}
	if in.CaptionHash != nil {
		builder = builder.SetNillableCaptionHash(in.CaptionHash)
	}
	if in.ImageHash != nil {
		builder = builder.SetNillableImageHash(in.ImageHash)
	}
	if in.PDQVector != nil {
		builder = builder.SetPdqEmbedding(in.PDQVector)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return "", checkerr.Wrap(checkerr.InternalError, "insert check", err)
	}
	return row.ID, nil
}

// FindByID loads a check by its opaque id.
func (s *Store) FindByID(ctx context.Context, id string) (*ent.Check, error) {
	row, err := s.client.Check.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, checkerr.New(checkerr.NotFound, "check not found: "+id)
		}
		return nil, checkerr.Wrap(checkerr.InternalError, "find check by id", err)
	}
	return row, nil
}

// FindByTextHash performs the exact-match text lookup (C2 text-only path).
// Returns nil, nil on a clean miss.
func (s *Store) FindByTextHash(ctx context.Context, hash string) (*ent.Check, error) {
	row, err := s.client.Check.Query().
		Where(check.TextHashEQ(hash)).
		Order(ent.Asc(check.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, checkerr.Wrap(checkerr.InternalError, "find check by text hash", err)
	}
	return row, nil
}

// FindByImageHash performs the exact image-hash lookup. When captionHash is
// nil, per spec.md §4.2 the lookup is constrained to checks with no caption
// (the image-only path); when set, both hashes must match (the combined
// image+caption path, per the Open Question resolution in DESIGN.md).
func (s *Store) FindByImageHash(ctx context.Context, imageHash string, captionHash *string) (*ent.Check, error) {
	q := s.client.Check.Query().Where(check.ImageHashEQ(imageHash))
	if captionHash != nil {
		q = q.Where(check.CaptionHashEQ(*captionHash))
	} else {
		q = q.Where(check.CaptionIsNil())
	}

	row, err := q.Order(ent.Asc(check.FieldTimestamp)).First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, checkerr.Wrap(checkerr.InternalError, "find check by image hash", err)
	}
	return row, nil
}

// ErrNoPendingChecks is returned by ClaimNext when no pending check is
// available to claim.
var ErrNoPendingChecks = checkerr.New(checkerr.NotFound, "no pending checks available")

// ClaimNext atomically claims the oldest pending check for podID using
// SELECT ... FOR UPDATE SKIP LOCKED, so concurrent orchestrator workers
// (same pod or different replicas) never claim the same row twice.
// Grounded on the teacher's pkg/queue/worker.go claimNextSession.
func (s *Store) ClaimNext(ctx context.Context, podID string) (*ent.Check, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "begin claim tx", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.Check.Query().
		Where(
			check.GenerationStatusEQ(check.GenerationStatusPending),
			check.OwnerPodIDIsNil(),
		).
		Order(ent.Asc(check.FieldTimestamp)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoPendingChecks
		}
		return nil, checkerr.Wrap(checkerr.InternalError, "query pending check", err)
	}

	now := time.Now()
	row, err = row.Update().
		SetOwnerPodID(podID).
		SetClaimedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "claim check", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "commit claim", err)
	}
	return row, nil
}

// Heartbeat refreshes the claim's last_heartbeat_at, signalling to orphan
// detection that the owning worker is still alive.
func (s *Store) Heartbeat(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := s.client.Check.UpdateOneID(id).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx); err != nil {
		return checkerr.Wrap(checkerr.InternalError, "heartbeat check", err)
	}
	return nil
}

// ListOrphaned returns pending, claimed checks whose last heartbeat is
// older than cutoff: the owning worker is presumed dead (crashed pod,
// killed process) and the check should be released back to the pool.
func (s *Store) ListOrphaned(ctx context.Context, cutoff time.Time) ([]*ent.Check, error) {
	rows, err := s.client.Check.Query().
		Where(
			check.GenerationStatusEQ(check.GenerationStatusPending),
			check.OwnerPodIDNotNil(),
			check.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "list orphaned checks", err)
	}
	return rows, nil
}

// ReleaseClaim clears ownership so a pending check can be reclaimed by any
// worker; used both after a successful/failed run and during orphan
// recovery.
func (s *Store) ReleaseClaim(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := s.client.Check.UpdateOneID(id).
		ClearOwnerPodID().
		ClearClaimedAt().
		ClearLastHeartbeatAt().
		Exec(ctx); err != nil {
		return checkerr.Wrap(checkerr.InternalError, "release check claim", err)
	}
	return nil
}

// CountActive returns how many checks are currently claimed by some worker
// (any replica), the number the orchestrator's worker pool compares against
// OrchestratorConfig.MaxConcurrentChecks before claiming another.
func (s *Store) CountActive(ctx context.Context) (int, error) {
	n, err := s.client.Check.Query().
		Where(check.GenerationStatusEQ(check.GenerationStatusPending), check.OwnerPodIDNotNil()).
		Count(ctx)
	if err != nil {
		return 0, checkerr.Wrap(checkerr.InternalError, "count active checks", err)
	}
	return n, nil
}

// Partial is a sparse set of field updates applied atomically by
// UpdateFields / UpdateFieldsWithBeforeImage. Every field is optional;
// unset fields are left untouched (ent's SetNillable* idiom).
type Partial struct {
	GenerationStatus      *check.GenerationStatus
	LongformResponse      *checktypes.LongformResponse
	ShortformResponse      *checktypes.ShortformResponse
	HumanResponse          *checktypes.HumanResponse
	Title                  *string
	Slug                   *string
	MachineCategory        *string
	CrowdsourcedCategory   *string
	IsControversial        *bool
	IsAccessBlocked        *bool
	IsVideo                *bool
	IsExpired              *bool
	IsHumanAssessed        *bool
	IsVoteTriggered        *bool
	IsApprovedForPublishing *bool
	PollID                 *string
	NotificationID         *string
	CommunityNoteNotificationID *string
	ApprovedBy             *string
	TextEmbedding          []float64
	CaptionEmbedding       []float64
}

func (s *Store) apply(builder *ent.CheckUpdateOne, p Partial) *ent.CheckUpdateOne {
	now := time.Now()
	builder = builder.SetUpdatedAt(now)

	if p.GenerationStatus != nil {
		builder = builder.SetGenerationStatus(*p.GenerationStatus)
	}
	if p.LongformResponse != nil {
		builder = builder.SetLongformResponse(p.LongformResponse)
	}
	if p.ShortformResponse != nil {
		builder = builder.SetShortformResponse(p.ShortformResponse)
	}
	if p.HumanResponse != nil {
		builder = builder.SetHumanResponse(p.HumanResponse)
	}
	builder = builder.SetNillableTitle(p.Title)
	builder = builder.SetNillableSlug(p.Slug)
	builder = builder.SetNillableMachineCategory(p.MachineCategory)
	if p.CrowdsourcedCategory != nil {
		builder = builder.SetCrowdsourcedCategory(*p.CrowdsourcedCategory)
	}
	if p.IsControversial != nil {
		builder = builder.SetIsControversial(*p.IsControversial)
	}
	if p.IsAccessBlocked != nil {
		builder = builder.SetIsAccessBlocked(*p.IsAccessBlocked)
	}
	if p.IsVideo != nil {
		builder = builder.SetIsVideo(*p.IsVideo)
	}
	if p.IsExpired != nil {
		builder = builder.SetIsExpired(*p.IsExpired)
	}
	if p.IsHumanAssessed != nil {
		builder = builder.SetIsHumanAssessed(*p.IsHumanAssessed)
	}
	if p.IsVoteTriggered != nil {
		builder = builder.SetIsVoteTriggered(*p.IsVoteTriggered)
	}
	if p.IsApprovedForPublishing != nil {
		builder = builder.SetIsApprovedForPublishing(*p.IsApprovedForPublishing)
	}
	builder = builder.SetNillablePollID(p.PollID)
	builder = builder.SetNillableNotificationID(p.NotificationID)
	builder = builder.SetNillableCommunityNoteNotificationID(p.CommunityNoteNotificationID)
	builder = builder.SetNillableApprovedBy(p.ApprovedBy)
	if p.TextEmbedding != nil {
		builder = builder.SetTextEmbedding(p.TextEmbedding)
	}
	if p.CaptionEmbedding != nil {
		builder = builder.SetCaptionEmbedding(p.CaptionEmbedding)
	}
	return builder
}

// UpdateFields applies a sparse update atomically, idempotent under retry
// because every field set here is set-semantics (last-writer-wins on a
// single column, never an increment).
func (s *Store) UpdateFields(ctx context.Context, id string, p Partial) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	builder := s.apply(s.client.Check.UpdateOneID(id), p)
	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return checkerr.New(checkerr.NotFound, "check not found: "+id)
		}
		return checkerr.Wrap(checkerr.InternalError, "update check fields", err)
	}
	return nil
}

// BeforeImageDelta reports the transitions the Assessment Reconciler (C10)
// cares about between a Check's pre- and post-update state.
type BeforeImageDelta struct {
	BecameHumanAssessed bool
	BecameDownvoted     bool
	CategoryChanged     bool
	PreviousCategory    string
}

// UpdateFieldsWithBeforeImage performs an atomic read-modify-write,
// returning the deltas the reconciler needs without a lost-update race:
// the read and write happen inside one transaction so a concurrent writer
// cannot interleave between "read old state" and "write new state".
func (s *Store) UpdateFieldsWithBeforeImage(ctx context.Context, id string, p Partial) (BeforeImageDelta, error) {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return BeforeImageDelta{}, checkerr.Wrap(checkerr.InternalError, "begin before-image tx", err)
	}

	before, err := tx.Check.Get(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return BeforeImageDelta{}, checkerr.New(checkerr.NotFound, "check not found: "+id)
		}
		return BeforeImageDelta{}, checkerr.Wrap(checkerr.InternalError, "read before-image", err)
	}

	var shortformBefore checktypes.ShortformResponse
	if before.ShortformResponse != nil {
		shortformBefore = *before.ShortformResponse
	}

	builder := s.apply(tx.Check.UpdateOneID(id), p)
	if err := builder.Exec(ctx); err != nil {
		_ = tx.Rollback()
		return BeforeImageDelta{}, checkerr.Wrap(checkerr.InternalError, "apply before-image update", err)
	}

	if err := tx.Commit(); err != nil {
		return BeforeImageDelta{}, checkerr.Wrap(checkerr.InternalError, "commit before-image tx", err)
	}

	delta := BeforeImageDelta{
		PreviousCategory: before.CrowdsourcedCategory,
	}
	if p.IsHumanAssessed != nil && *p.IsHumanAssessed && !before.IsHumanAssessed {
		delta.BecameHumanAssessed = true
	}
	if p.ShortformResponse != nil && p.ShortformResponse.Downvoted && !shortformBefore.Downvoted {
		delta.BecameDownvoted = true
	}
	if p.CrowdsourcedCategory != nil && *p.CrowdsourcedCategory != before.CrowdsourcedCategory {
		delta.CategoryChanged = true
	}
	return delta, nil
}

// Candidate is one vector-search hit, shared across the three embedding
// indexes; Score is populated by every search (for the PDQ binary index it
// is the cosine over the bit vectors). Distance is not set by any search.
type Candidate struct {
	ID        string
	Score     float64
	Distance  int
	Timestamp time.Time
	ImageHash string
	Caption   *string
}

// SearchOpts narrows a vector search to checks usable as a match target.
type SearchOpts struct {
	RequireHumanAssessed bool
	OnlyCaptioned        bool
}

func (s *Store) baseQuery(opts SearchOpts) *ent.CheckQuery {
	q := s.client.Check.Query().Where(check.IsExpired(false))
	if opts.RequireHumanAssessed {
		q = q.Where(check.IsHumanAssessed(true))
	}
	return q
}

// FindSimilarTextEmbedding performs cosine-similarity search over the
// text-embedding-index (spec.md §6), returning up to k candidates ordered
// by descending score. Cosine similarity is computed in application code
// over candidateLimit rows fetched from Postgres rather than delegated to
// a vector extension: the retrieval pack carries no pgvector/Milvus client,
// and ent's generated query builder has no vector-distance operator, so
// this is the smallest addition that honors the C3 contract (dimension
// validation, score-ordered candidates, earliest-timestamp tie-break)
// without inventing a dependency the pack never shows.
func (s *Store) FindSimilarTextEmbedding(ctx context.Context, v []float64, k, candidateLimit int, opts SearchOpts) ([]Candidate, error) {
	if len(v) != 384 {
		return nil, checkerr.New(checkerr.InvalidFingerprint, "text embedding must have 384 dimensions")
	}
	rows, err := s.baseQuery(opts).
		Where(check.TextEmbeddingNotNil()).
		Limit(candidateLimit).
		All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "text embedding search", err)
	}
	return topByScore(rows, v, func(r *ent.Check) []float64 { return r.TextEmbedding }, k), nil
}

// FindSimilarCaptionEmbedding mirrors FindSimilarTextEmbedding over the
// caption-embedding-index.
func (s *Store) FindSimilarCaptionEmbedding(ctx context.Context, v []float64, k, candidateLimit int, opts SearchOpts) ([]Candidate, error) {
	if len(v) != 384 {
		return nil, checkerr.New(checkerr.InvalidFingerprint, "caption embedding must have 384 dimensions")
	}
	rows, err := s.baseQuery(opts).
		Where(check.CaptionEmbeddingNotNil()).
		Limit(candidateLimit).
		All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "caption embedding search", err)
	}
	return topByScore(rows, v, func(r *ent.Check) []float64 { return r.CaptionEmbedding }, k), nil
}

// FindSimilarImageEmbedding performs the pdq-embedding-index search. Per
// spec.md §9's design note, the 256-dim binary vector search approximates
// but does not equal Hamming distance, so each candidate carries the
// row's stored ImageHash for C2 to re-verify the Hamming distance itself.
func (s *Store) FindSimilarImageEmbedding(ctx context.Context, v []int, k, candidateLimit int, onlyCaptioned bool) ([]Candidate, error) {
	if len(v) != 256 {
		return nil, checkerr.New(checkerr.InvalidFingerprint, "pdq embedding must have 256 dimensions")
	}
	q := s.client.Check.Query().
		Where(check.IsExpired(false), check.PdqEmbeddingNotNil())
	if onlyCaptioned {
		q = q.Where(check.CaptionNotNil())
	} else {
		q = q.Where(check.CaptionIsNil())
	}
	rows, err := q.Limit(candidateLimit).All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "pdq embedding search", err)
	}

	scored := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		scored = append(scored, Candidate{
			ID:        r.ID,
			Score:     cosine(toFloat(v), toFloat(r.PdqEmbedding)),
			Timestamp: r.Timestamp,
			ImageHash: derefOr(r.ImageHash, ""),
			Caption:   r.Caption,
		})
	}
	sortByScoreThenTimestamp(scored)
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

func topByScore(rows []*ent.Check, query []float64, get func(*ent.Check) []float64, k int) []Candidate {
	scored := make([]Candidate, 0, len(rows))
	for _, r := range rows {
		scored = append(scored, Candidate{
			ID:        r.ID,
			Score:     cosine(query, get(r)),
			Timestamp: r.Timestamp,
			ImageHash: derefOr(r.ImageHash, ""),
			Caption:   r.Caption,
		})
	}
	sortByScoreThenTimestamp(scored)
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

func sortByScoreThenTimestamp(c []Candidate) {
	// Insertion sort is fine: candidateLimit is bounded (tens of rows) and
	// this runs once per submission, not in a hot loop.
	for i := 1; i < len(c); i++ {
		j := i
		for j > 0 && less(c[j], c[j-1]) {
			c[j], c[j-1] = c[j-1], c[j]
			j--
		}
	}
}

// less orders by descending score, earliest timestamp breaking ties
// (spec.md §4.2's tie-break rule).
func less(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Timestamp.Before(b.Timestamp)
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (sqrt(na) * sqrt(nb))
}

func sqrt(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

func toFloat(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
