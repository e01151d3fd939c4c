// Package submission is the Submission Ledger (C8): a durable,
// append-mostly audit record of every inbound request, independent of
// whatever Check row it ultimately resolves to. Modeled on
// pkg/checkstore's typed ent-client wrapper (context.WithTimeout-guarded
// writes, ent.IsNotFound translation).
package submission

import (
	"context"
	"time"

	"github.com/checkmate-dev/checkmate/ent"
	entsubmission "github.com/checkmate-dev/checkmate/ent/submission"
	"github.com/checkmate-dev/checkmate/pkg/checkerr"
	"github.com/checkmate-dev/checkmate/pkg/models"
)

// WriteTimeout bounds every individual ledger write.
const WriteTimeout = 5 * time.Second

// Store is the Submission Ledger adapter.
type Store struct {
	client *ent.Client
}

// New builds a Store around an already-connected ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// Insert records a newly-received submission before any pipeline work
// begins, so every request is auditable even if the process crashes
// before a Check row exists (C6 step 1).
func (s *Store) Insert(ctx context.Context, sub models.Submission) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	builder := s.client.Submission.Create().
		SetID(sub.RequestID).
		SetTimestamp(sub.Timestamp).
		SetSourceType(entsubmission.SourceType(sub.SourceType)).
		SetConsumerName(sub.ConsumerName).
		SetType(entsubmission.Type(sub.Type)).
		SetCheckStatus(entsubmission.CheckStatus(sub.CheckStatus))

	if sub.Text != "" {
		builder = builder.SetText(sub.Text)
	}
	if sub.ImageURL != "" {
		builder = builder.SetImageURL(sub.ImageURL)
	}
	if sub.Caption != "" {
		builder = builder.SetCaption(sub.Caption)
	}
	if sub.CheckID != "" {
		builder = builder.SetCheckID(sub.CheckID)
	}

	if err := builder.Exec(ctx); err != nil {
		return checkerr.Wrap(checkerr.InternalError, "insert submission", err)
	}
	return nil
}

// LinkCheck associates a submission with the Check it resolved to,
// either because a duplicate was found (status immediately completed)
// or because a new Check was reserved (status stays pending until the
// pipeline finishes).
func (s *Store) LinkCheck(ctx context.Context, requestID, checkID string, status models.CheckStatus) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := s.client.Submission.UpdateOneID(requestID).
		SetCheckID(checkID).
		SetCheckStatus(entsubmission.CheckStatus(status)).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return checkerr.New(checkerr.NotFound, "submission not found: "+requestID)
		}
		return checkerr.Wrap(checkerr.InternalError, "link submission to check", err)
	}
	return nil
}

// UpdateStatus records the terminal check_status (completed/error) for a
// submission once the pipeline finishes processing its check.
func (s *Store) UpdateStatus(ctx context.Context, requestID string, status models.CheckStatus) error {
	ctx, cancel := context.WithTimeout(ctx, WriteTimeout)
	defer cancel()

	if err := s.client.Submission.UpdateOneID(requestID).
		SetCheckStatus(entsubmission.CheckStatus(status)).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return checkerr.New(checkerr.NotFound, "submission not found: "+requestID)
		}
		return checkerr.Wrap(checkerr.InternalError, "update submission status", err)
	}
	return nil
}

// FindByID loads a submission by its opaque request id.
func (s *Store) FindByID(ctx context.Context, requestID string) (*ent.Submission, error) {
	row, err := s.client.Submission.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, checkerr.New(checkerr.NotFound, "submission not found: "+requestID)
		}
		return nil, checkerr.Wrap(checkerr.InternalError, "find submission by id", err)
	}
	return row, nil
}

// ListByCheckID returns every submission that resolved to the given
// check, newest first, used to answer "who else asked about this".
func (s *Store) ListByCheckID(ctx context.Context, checkID string) ([]*ent.Submission, error) {
	rows, err := s.client.Submission.Query().
		Where(entsubmission.CheckIDEQ(checkID)).
		Order(ent.Desc(entsubmission.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, checkerr.Wrap(checkerr.InternalError, "list submissions by check id", err)
	}
	return rows, nil
}
