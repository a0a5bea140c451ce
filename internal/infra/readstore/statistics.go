package readstore

import (
	"context"
	"time"

	"campus-reserve/internal/infra"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/pgconv"
	"campus-reserve/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type StatisticsQueries interface {
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountReservationsByStatusRow, error)
	CountReservationsSince(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
	ListMostReservedEquipment(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListMostReservedEquipmentRow, error)
}

type StatisticsReadStore struct {
	queries StatisticsQueries
	db      sqlc.DBTX
}

func NewStatisticsReadStore(queries StatisticsQueries, db sqlc.DBTX) *StatisticsReadStore {
	return &StatisticsReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *StatisticsReadStore) Collect(ctx context.Context, topLimit int32, now time.Time) (*queries.StatisticsView, error) {
	byStatus, err := s.queries.CountReservationsByStatus(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by status", err)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	today, err := s.queries.CountReservationsSince(ctx, s.db, pgconv.TimeToPgtype(dayStart))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count today's reservations", err)
	}
	week, err := s.queries.CountReservationsSince(ctx, s.db, pgconv.TimeToPgtype(now.AddDate(0, 0, -7)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count this week's reservations", err)
	}
	month, err := s.queries.CountReservationsSince(ctx, s.db, pgconv.TimeToPgtype(now.AddDate(0, -1, 0)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count this month's reservations", err)
	}

	top, err := s.queries.ListMostReservedEquipment(ctx, s.db, topLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list most reserved equipment", err)
	}

	view := &queries.StatisticsView{
		ByStatus:         make(map[string]int64, len(byStatus)),
		CreatedToday:     today,
		CreatedThisWeek:  week,
		CreatedThisMonth: month,
		TopEquipment:     make([]queries.TopEquipmentView, len(top)),
		GeneratedAt:      now,
	}
	for _, row := range byStatus {
		view.ByStatus[row.Status] = row.Count
	}
	for i, row := range top {
		view.TopEquipment[i] = queries.TopEquipmentView{
			EquipmentID:      row.ID,
			Name:             row.Name,
			Category:         row.Category,
			ReservationCount: row.ReservationCount,
		}
	}
	return view, nil
}
