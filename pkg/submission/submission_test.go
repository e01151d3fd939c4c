package submission

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
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/models"
)

// newTestStore mirrors pkg/checkstore's testcontainers-backed helper.
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

func sampleSubmission(requestID string) models.Submission {
	return models.Submission{
		RequestID:    requestID,
		Timestamp:    time.Now(),
		SourceType:   models.SourceAPI,
		ConsumerName: "some-partner",
		Type:         models.SubmissionText,
		Text:         "Donald Trump is the president",
		CheckStatus:  models.CheckStatusPending,
	}
}

// TestInsertBeforeCheckExists covers C6 step 1: the submission row must be
// auditable before any Check id is known, so Insert accepts an empty
// CheckID.
func TestInsertBeforeCheckExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub := sampleSubmission("req-1")
	require.NoError(t, s.Insert(ctx, sub))

	found, err := s.FindByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "some-partner", found.ConsumerName)
	assert.Equal(t, "pending", string(found.CheckStatus))
	assert.Nil(t, found.CheckID)
}

func TestLinkCheck(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, sampleSubmission("req-1")))
	require.NoError(t, s.LinkCheck(ctx, "req-1", "check-1", models.CheckStatusCompleted))

	found, err := s.FindByID(ctx, "req-1")
	require.NoError(t, err)
	require.NotNil(t, found.CheckID)
	assert.Equal(t, "check-1", *found.CheckID)
	assert.Equal(t, "completed", string(found.CheckStatus))
}

func TestLinkCheck_NotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.LinkCheck(context.Background(), "ghost", "check-1", models.CheckStatusCompleted)
	require.Error(t, err)
	assert.Equal(t, checkerr.NotFound, checkerr.KindOf(err))
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, sampleSubmission("req-1")))
	require.NoError(t, s.UpdateStatus(ctx, "req-1", models.CheckStatusError))

	found, err := s.FindByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "error", string(found.CheckStatus))
}

// TestListByCheckID_NewestFirst covers the many-submissions-one-check
// relationship spec.md §3 describes: several requests can resolve to the
// same cached check.
func TestListByCheckID_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := sampleSubmission("req-older")
	older.Timestamp = time.Now().Add(-time.Hour)
	newer := sampleSubmission("req-newer")
	newer.Timestamp = time.Now()

	require.NoError(t, s.Insert(ctx, older))
	require.NoError(t, s.Insert(ctx, newer))
	require.NoError(t, s.LinkCheck(ctx, "req-older", "check-1", models.CheckStatusCompleted))
	require.NoError(t, s.LinkCheck(ctx, "req-newer", "check-1", models.CheckStatusCompleted))

	require.NoError(t, s.Insert(ctx, sampleSubmission("req-unrelated")))

	rows, err := s.ListByCheckID(ctx, "check-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "req-newer", rows[0].ID)
	assert.Equal(t, "req-older", rows[1].ID)
}
