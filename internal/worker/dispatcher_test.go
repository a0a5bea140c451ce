//go:build unit

package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"campus-reserve/internal/infra/broadcast"
	"campus-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeJobSource struct {
	jobs []*queries.NotificationJobView
	err  error
}

func (f *fakeJobSource) ClaimPendingJobs(_ context.Context, _ int32) ([]*queries.NotificationJobView, error) {
	return f.jobs, f.err
}

type fakeJobSink struct {
	done     []uuid.UUID
	failed   map[uuid.UUID]string
	requeued map[uuid.UUID]string
}

func newFakeJobSink() *fakeJobSink {
	return &fakeJobSink{
		failed:   make(map[uuid.UUID]string),
		requeued: make(map[uuid.UUID]string),
	}
}

func (f *fakeJobSink) MarkDone(_ context.Context, jobID uuid.UUID) error {
	f.done = append(f.done, jobID)
	return nil
}

func (f *fakeJobSink) MarkFailed(_ context.Context, jobID uuid.UUID, reason string) error {
	f.failed[jobID] = reason
	return nil
}

func (f *fakeJobSink) Requeue(_ context.Context, jobID uuid.UUID, reason string) error {
	f.requeued[jobID] = reason
	return nil
}

type fakePublisher struct {
	events []broadcast.Event
}

func (f *fakePublisher) Publish(_ context.Context, event broadcast.Event) {
	f.events = append(f.events, event)
}

type DispatcherTestSuite struct {
	suite.Suite
	source    *fakeJobSource
	sink      *fakeJobSink
	publisher *fakePublisher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.source = &fakeJobSource{}
	s.sink = newFakeJobSink()
	s.publisher = &fakePublisher{}
}

func (s *DispatcherTestSuite) dispatcher() *Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher(s.source, s.sink, s.publisher, logger)
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func broadcastJob(t *testing.T, event broadcast.Event, attempts int32) *queries.NotificationJobView {
	t.Helper()
	payload, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return &queries.NotificationJobView{
		ID:       uuid.New(),
		Kind:     KindBroadcast,
		Topic:    "reservation_approved",
		Payload:  payload,
		RunAt:    time.Now(),
		Attempts: attempts,
		Status:   "processing",
	}
}

func (s *DispatcherTestSuite) TestDrainOnce() {
	s.Run("broadcast job is published and marked done", func() {
		s.SetupTest()
		event := broadcast.Event{
			ReservationID: uuid.New(),
			Code:          "RES-7K2M9QXZ",
			UserID:        uuid.New(),
			Status:        "approved",
			OccurredAt:    time.Now().UTC().Truncate(time.Second),
		}
		job := broadcastJob(s.T(), event, 0)
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Require().Len(s.publisher.events, 1)
		s.Equal(event.ReservationID, s.publisher.events[0].ReservationID)
		s.Equal(event.Status, s.publisher.events[0].Status)
		s.Equal([]uuid.UUID{job.ID}, s.sink.done)
		s.Empty(s.sink.requeued)
	})

	s.Run("zero occurred_at falls back to run_at", func() {
		s.SetupTest()
		job := broadcastJob(s.T(), broadcast.Event{Code: "RES-AAAA0001", Status: "issued"}, 0)
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Require().Len(s.publisher.events, 1)
		s.Equal(job.RunAt, s.publisher.events[0].OccurredAt)
	})

	s.Run("email job is marked done without publishing", func() {
		s.SetupTest()
		job := &queries.NotificationJobView{
			ID:      uuid.New(),
			Kind:    KindEmail,
			Topic:   "reservation_approved",
			Payload: []byte(`{"code":"RES-7K2M9QXZ"}`),
			RunAt:   time.Now(),
		}
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Empty(s.publisher.events)
		s.Equal([]uuid.UUID{job.ID}, s.sink.done)
	})

	s.Run("malformed payload is requeued", func() {
		s.SetupTest()
		job := &queries.NotificationJobView{
			ID:      uuid.New(),
			Kind:    KindBroadcast,
			Payload: []byte(`not-json`),
			RunAt:   time.Now(),
		}
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Empty(s.sink.done)
		s.Contains(s.sink.requeued, job.ID)
	})

	s.Run("exhausted attempts mark the job failed", func() {
		s.SetupTest()
		job := &queries.NotificationJobView{
			ID:       uuid.New(),
			Kind:     KindBroadcast,
			Payload:  []byte(`not-json`),
			RunAt:    time.Now(),
			Attempts: maxAttempts - 1,
		}
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Empty(s.sink.requeued)
		s.Contains(s.sink.failed, job.ID)
	})

	s.Run("every staged wire kind is delivered", func() {
		// Commands stage outbox rows as broadcast plus email; neither may
		// fall through to the unknown-kind branch.
		for _, kind := range []string{KindBroadcast, KindEmail} {
			s.SetupTest()
			job := &queries.NotificationJobView{
				ID:      uuid.New(),
				Kind:    kind,
				Topic:   "reservation_approved",
				Payload: []byte(`{"code":"RES-7K2M9QXZ","status":"approved"}`),
				RunAt:   time.Now(),
			}
			s.source.jobs = []*queries.NotificationJobView{job}

			s.dispatcher().drainOnce(context.Background())

			s.Equal([]uuid.UUID{job.ID}, s.sink.done, kind)
			s.Empty(s.sink.requeued, kind)
			s.Empty(s.sink.failed, kind)
			if kind == KindBroadcast {
				s.Len(s.publisher.events, 1)
			}
		}
	})

	s.Run("unknown kind is dropped without retry", func() {
		s.SetupTest()
		job := &queries.NotificationJobView{
			ID:    uuid.New(),
			Kind:  "carrier-pigeon",
			RunAt: time.Now(),
		}
		s.source.jobs = []*queries.NotificationJobView{job}

		s.dispatcher().drainOnce(context.Background())

		s.Equal([]uuid.UUID{job.ID}, s.sink.done)
		s.Empty(s.sink.requeued)
		s.Empty(s.sink.failed)
	})
}
