package readstore

import (
	"context"

	"campus-reserve/internal/infra"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"
	"campus-reserve/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ClaimPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// ClaimPendingJobs flips due rows to processing and returns them in one
// statement, so a batch belongs to exactly one dispatcher.
func (s *NotificationReadStore) ClaimPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ClaimPendingNotificationJobs(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationJobView(row)
	}
	return result, nil
}

func toNotificationJobView(row sqlc.NotificationJobs) *queries.NotificationJobView {
	return &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		Attempts:  row.Attempts,
		Status:    row.Status,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
