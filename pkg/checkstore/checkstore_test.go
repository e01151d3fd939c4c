package checkstore

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/checkmate-dev/checkmate/ent"
	"github.com/checkmate-dev/checkmate/ent/check"
	"github.com/checkmate-dev/checkmate/pkg/checktypes"
)

// newTestStore spins up a throwaway Postgres container, schema-migrates it
// via ent's auto-migration, and returns a Store bound to it — mirroring
// pkg/database's newTestClient helper.
func newTestStore(t *testing.T) *Store {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	t.Cleanup(func() { _ = entClient.Close() })

	return New(entClient)
}

func mustStr(s string) *string { return &s }

func TestInsertAndFindByID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, NewCheckInput{
		ID:        "check-1",
		Type:      check.TypeText,
		Text:      mustStr("Donald Trump is the president"),
		Timestamp: time.Now(),
		TextHash:  mustStr("deadbeef"),
	})
	require.NoError(t, err)
	assert.Equal(t, "check-1", id)

	row, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", *row.TextHash)
	assert.Equal(t, check.GenerationStatusPending, row.GenerationStatus)
	assert.Equal(t, "unsure", row.CrowdsourcedCategory)
}

func TestFindByID_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindByID(context.Background(), "does-not-exist")
	require.Error(t, err)
}

// TestFindByTextHash_ExactMatch covers S1: a prior check with the same text
// hash is returned by exact lookup, never requiring a vector search.
func TestFindByTextHash_ExactMatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{
		ID: "check-1", Type: check.TypeText,
		Text: mustStr("Donald Trump is the president"), Timestamp: time.Now(),
		TextHash: mustStr("hash-a"),
	})
	require.NoError(t, err)

	found, err := s.FindByTextHash(ctx, "hash-a")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "check-1", found.ID)

	miss, err := s.FindByTextHash(ctx, "hash-b")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

// TestFindByImageHash covers the image-only (S3, captionHash=nil) and
// image+caption (S4, captionHash set) exact-lookup paths: the Open Question
// resolution in DESIGN.md says both hashes must match when a caption hash is
// supplied, and an image-only lookup must ignore checks that carry a caption.
func TestFindByImageHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{
		ID: "img-only", Type: check.TypeImage,
		ImageURL: mustStr("https://example.com/a.jpg"), Timestamp: time.Now(),
		ImageHash: mustStr(sixtyFourHex("a")),
	})
	require.NoError(t, err)

	_, err = s.Insert(ctx, NewCheckInput{
		ID: "img-caption", Type: check.TypeImage,
		ImageURL: mustStr("https://example.com/b.jpg"), Caption: mustStr("scam alert"), Timestamp: time.Now(),
		ImageHash: mustStr(sixtyFourHex("b")), CaptionHash: mustStr("caption-hash-b"),
	})
	require.NoError(t, err)

	found, err := s.FindByImageHash(ctx, sixtyFourHex("a"), nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "img-only", found.ID)

	missBecauseCaptioned, err := s.FindByImageHash(ctx, sixtyFourHex("b"), nil)
	require.NoError(t, err)
	assert.Nil(t, missBecauseCaptioned)

	found, err = s.FindByImageHash(ctx, sixtyFourHex("b"), mustStr("caption-hash-b"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "img-caption", found.ID)

	missBecauseWrongCaption, err := s.FindByImageHash(ctx, sixtyFourHex("b"), mustStr("some-other-hash"))
	require.NoError(t, err)
	assert.Nil(t, missBecauseWrongCaption)
}

func sixtyFourHex(seed string) string {
	out := make([]byte, 64)
	for i := range out {
		out[i] = seed[0]
	}
	return string(out)
}

func TestUpdateFields_SparseUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{ID: "check-1", Type: check.TypeText, Text: mustStr("x"), Timestamp: time.Now()})
	require.NoError(t, err)

	title := "A fact-check"
	completed := check.GenerationStatusCompleted
	require.NoError(t, s.UpdateFields(ctx, "check-1", Partial{Title: &title, GenerationStatus: &completed}))

	row, err := s.FindByID(ctx, "check-1")
	require.NoError(t, err)
	assert.Equal(t, "A fact-check", *row.Title)
	assert.Equal(t, check.GenerationStatusCompleted, row.GenerationStatus)
	// a field never set in the partial is left untouched
	assert.Nil(t, row.Slug)
}

func TestUpdateFields_NotFound(t *testing.T) {
	s := newTestStore(t)
	title := "x"
	err := s.UpdateFields(context.Background(), "ghost", Partial{Title: &title})
	require.Error(t, err)
}

// TestUpdateFieldsWithBeforeImage_Deltas exercises the three transitions the
// Assessment Reconciler (C10) watches for, spec.md §4.9.
func TestUpdateFieldsWithBeforeImage_Deltas(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{ID: "check-1", Type: check.TypeText, Text: mustStr("x"), Timestamp: time.Now()})
	require.NoError(t, err)

	assessed := true
	category := "scam"
	delta, err := s.UpdateFieldsWithBeforeImage(ctx, "check-1", Partial{
		IsHumanAssessed:      &assessed,
		CrowdsourcedCategory: &category,
	})
	require.NoError(t, err)
	assert.True(t, delta.BecameHumanAssessed)
	assert.True(t, delta.CategoryChanged)
	assert.Equal(t, "unsure", delta.PreviousCategory)

	// applying the identical assessment again must not re-report a flip
	delta2, err := s.UpdateFieldsWithBeforeImage(ctx, "check-1", Partial{IsHumanAssessed: &assessed})
	require.NoError(t, err)
	assert.False(t, delta2.BecameHumanAssessed)

	downvotedShortform := checktypes.ShortformResponse{En: "note", Downvoted: true}
	delta3, err := s.UpdateFieldsWithBeforeImage(ctx, "check-1", Partial{ShortformResponse: &downvotedShortform})
	require.NoError(t, err)
	assert.True(t, delta3.BecameDownvoted)
}

func TestClaimNext_SingleWriter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{ID: "check-1", Type: check.TypeText, Text: mustStr("x"), Timestamp: time.Now()})
	require.NoError(t, err)

	claimed, err := s.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)
	assert.Equal(t, "check-1", claimed.ID)
	assert.Equal(t, "pod-a", *claimed.OwnerPodID)

	_, err = s.ClaimNext(ctx, "pod-b")
	assert.ErrorIs(t, err, ErrNoPendingChecks)

	require.NoError(t, s.ReleaseClaim(ctx, "check-1"))
	claimedAgain, err := s.ClaimNext(ctx, "pod-b")
	require.NoError(t, err)
	assert.Equal(t, "pod-b", *claimedAgain.OwnerPodID)
}

func TestListOrphaned(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{ID: "check-1", Type: check.TypeText, Text: mustStr("x"), Timestamp: time.Now()})
	require.NoError(t, err)
	_, err = s.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)

	none, err := s.ListOrphaned(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)

	orphaned, err := s.ListOrphaned(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, orphaned, 1)
	assert.Equal(t, "check-1", orphaned[0].ID)
}

// TestFindSimilarTextEmbedding_ScoreOrderingAndTieBreak covers S2 (top
// vector score above threshold) and spec.md §4.2's earliest-timestamp
// tie-break among equal scores.
func TestFindSimilarTextEmbedding_ScoreOrderingAndTieBreak(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	earlier := time.Now().Add(-time.Hour)
	later := time.Now()

	vecA := make([]float64, 384)
	vecA[0] = 1
	vecB := append([]float64{}, vecA...) // identical vector -> identical cosine score

	_, err := s.Insert(ctx, NewCheckInput{ID: "later", Type: check.TypeText, Text: mustStr("a"), Timestamp: later})
	require.NoError(t, err)
	require.NoError(t, s.UpdateFields(ctx, "later", Partial{TextEmbedding: vecB}))

	_, err = s.Insert(ctx, NewCheckInput{ID: "earlier", Type: check.TypeText, Text: mustStr("b"), Timestamp: earlier})
	require.NoError(t, err)
	require.NoError(t, s.UpdateFields(ctx, "earlier", Partial{TextEmbedding: vecA}))

	candidates, err := s.FindSimilarTextEmbedding(ctx, vecA, 5, 50, SearchOpts{})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.InDelta(t, 1.0, candidates[0].Score, 1e-9)
	assert.Equal(t, "earlier", candidates[0].ID, "equal scores break ties toward the earliest timestamp")
}

func TestFindSimilarTextEmbedding_DimensionValidation(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindSimilarTextEmbedding(context.Background(), make([]float64, 10), 5, 50, SearchOpts{})
	require.Error(t, err)
}

func TestFindSimilarImageEmbedding_HammingReverification(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, NewCheckInput{
		ID: "img-1", Type: check.TypeImage, ImageURL: mustStr("https://example.com/a.jpg"),
		Timestamp: time.Now(), ImageHash: mustStr(sixtyFourHex("a")),
	})
	require.NoError(t, err)

	vec := make([]int, 256)
	for i := range vec {
		vec[i] = 1
	}
	// Partial has no PDQ field (it's write-once at Insert per spec.md
	// invariant 2), so a second check carries the vector to exercise search.
	_, err = s.Insert(ctx, NewCheckInput{
		ID: "img-2", Type: check.TypeImage, ImageURL: mustStr("https://example.com/b.jpg"),
		Timestamp: time.Now(), ImageHash: mustStr(sixtyFourHex("b")), PDQVector: vec,
	})
	require.NoError(t, err)

	candidates, err := s.FindSimilarImageEmbedding(ctx, vec, 5, 50, false)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "img-2", candidates[0].ID)
	assert.Equal(t, sixtyFourHex("b"), candidates[0].ImageHash)
}
