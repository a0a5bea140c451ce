//go:build unit

package commands

import (
	"bytes"
	"context"
	"slices"
	"testing"
	"time"

	"campus-reserve/internal/domain/equipment"
	"campus-reserve/internal/domain/reservation"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/infra"
	"campus-reserve/internal/infra/broadcast"
	sqlc "campus-reserve/internal/infra/sqlc/generated"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/usecase/queries"
	"campus-reserve/internal/usecase/shared"
	queriesmock "campus-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// In-memory stand-ins for the transaction scope. The unit of work runs the
// callback directly; every repository call is recorded for assertions.

type stagedJob struct {
	kind    string
	topic   string
	payload []byte
}

type fakeNotificationRepo struct {
	jobs []stagedJob
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, _ time.Time) error {
	f.jobs = append(f.jobs, stagedJob{kind: kind, topic: topic, payload: payload})
	return nil
}

type fakeReservationRepo struct {
	createErrs  []error
	createCalls int
	created     []*reservation.Reservation
	byID        *reservation.Reservation
	byCode      *reservation.Reservation
	saves       int
}

func (f *fakeReservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return uuid.Nil, err
		}
	}
	f.created = append(f.created, res)
	return res.ID(), nil
}

func (f *fakeReservationRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) (*reservation.Reservation, error) {
	if f.byID == nil {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return f.byID, nil
}

func (f *fakeReservationRepo) FindByCodeForUpdate(_ context.Context, _ sqlc.DBTX, _ string) (*reservation.Reservation, error) {
	if f.byCode == nil {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return f.byCode, nil
}

func (f *fakeReservationRepo) SaveState(_ context.Context, _ sqlc.DBTX, _ *reservation.Reservation) error {
	f.saves++
	return nil
}

type fakeEquipmentRepo struct {
	byID      map[uuid.UUID]*equipment.Equipment
	reserved  map[uuid.UUID]int64
	lockOrder []uuid.UUID
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{
		byID:     make(map[uuid.UUID]*equipment.Equipment),
		reserved: make(map[uuid.UUID]int64),
	}
}

func (f *fakeEquipmentRepo) Create(_ context.Context, _ sqlc.DBTX, _ *equipment.Equipment) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fakeEquipmentRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*equipment.Equipment, error) {
	f.lockOrder = append(f.lockOrder, id)
	eq, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return eq, nil
}

func (f *fakeEquipmentRepo) Update(_ context.Context, _ sqlc.DBTX, _ *equipment.Equipment) error {
	return nil
}

func (f *fakeEquipmentRepo) Delete(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) error {
	return nil
}

func (f *fakeEquipmentRepo) CountActiveItems(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeEquipmentRepo) SumOverlappingQuantity(_ context.Context, _ sqlc.DBTX, equipmentID uuid.UUID, _ reservation.TimeSlot) (int64, error) {
	return f.reserved[equipmentID], nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(_ context.Context, _ sqlc.DBTX, _ sqlc.CreateUserParams) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (fakeUserRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeTx struct {
	res   *fakeReservationRepo
	eq    *fakeEquipmentRepo
	notes *fakeNotificationRepo
}

func (f *fakeTx) Reservations() shared.ReservationRepository   { return f.res }
func (f *fakeTx) Equipment() shared.EquipmentRepository        { return f.eq }
func (f *fakeTx) Notifications() shared.NotificationRepository { return f.notes }
func (f *fakeTx) Users() shared.UserRepository                 { return fakeUserRepo{} }
func (f *fakeTx) Reads() shared.CommandReads                   { return nil }
func (f *fakeTx) DB() sqlc.DBTX                                { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return nil }

type fakeEventPublisher struct {
	events []broadcast.Event
}

func (f *fakeEventPublisher) Publish(_ context.Context, event broadcast.Event) {
	f.events = append(f.events, event)
}

type fakeStatsInvalidator struct {
	forgets int
}

func (f *fakeStatsInvalidator) Forget(_ context.Context) {
	f.forgets++
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	resQuery  *queriesmock.MockReservationQueries
	resRepo   *fakeReservationRepo
	eqRepo    *fakeEquipmentRepo
	notes     *fakeNotificationRepo
	publisher *fakeEventPublisher
	stats     *fakeStatsInvalidator
	clock     *clock.MockClock
	commands  ReservationCommands

	userID      uuid.UUID
	equipmentID uuid.UUID
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.resQuery = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.resRepo = &fakeReservationRepo{}
	s.eqRepo = newFakeEquipmentRepo()
	s.notes = &fakeNotificationRepo{}
	s.publisher = &fakeEventPublisher{}
	s.stats = &fakeStatsInvalidator{}
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))

	s.userID = uuid.New()
	eq, err := equipment.NewEquipment("Oscilloscope", "Dual channel 100MHz", "lab", 3, "Storage B-2")
	s.Require().NoError(err)
	s.equipmentID = eq.ID()
	s.eqRepo.byID[s.equipmentID] = eq

	uow := &fakeUoW{tx: &fakeTx{res: s.resRepo, eq: s.eqRepo, notes: s.notes}}
	s.commands = NewReservationCommands(
		uow,
		reservation.NewFactory(s.clock),
		s.resQuery,
		s.publisher,
		s.stats,
		s.clock,
	)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) createReq(qty int) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:      "2026-09-12",
		StartTime: "10:00",
		EndTime:   "12:00",
		Purpose:   "Physics lab experiment session",
		Items: []reqdto.ReservationLineRequest{
			{EquipmentID: s.equipmentID, Quantity: qty},
		},
	}
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	s.Run("stages both wire kinds and publishes after commit", func() {
		s.SetupTest()
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), gomock.Any()).
			Return(&queries.ReservationView{Status: "pending"}, nil)

		view, err := s.commands.Create(context.Background(), s.createReq(2), s.userID)

		s.Require().NoError(err)
		s.Require().NotNil(view)
		s.Require().Len(s.resRepo.created, 1)

		s.Require().Len(s.notes.jobs, 2)
		kinds := map[string]bool{}
		for _, job := range s.notes.jobs {
			kinds[job.kind] = true
			s.Equal(NotifyReservationCreated, job.topic)
		}
		s.True(kinds["broadcast"])
		s.True(kinds["email"])

		s.Len(s.publisher.events, 1)
		s.Equal(1, s.stats.forgets)
	})

	s.Run("quantity conflict aborts without partial writes", func() {
		s.SetupTest()
		s.eqRepo.reserved[s.equipmentID] = 2

		view, err := s.commands.Create(context.Background(), s.createReq(2), s.userID)

		s.Require().ErrorIs(err, ErrQuantityConflict)
		s.Nil(view)
		s.Equal(0, s.resRepo.createCalls)
		s.Empty(s.notes.jobs)
		s.Empty(s.publisher.events)
	})

	s.Run("unknown equipment", func() {
		s.SetupTest()
		req := s.createReq(1)
		req.Items[0].EquipmentID = uuid.New()

		view, err := s.commands.Create(context.Background(), req, s.userID)

		s.Require().ErrorIs(err, ErrEquipmentNotFound)
		s.Nil(view)
	})

	s.Run("code collision retries with a fresh code", func() {
		s.SetupTest()
		s.resRepo.createErrs = []error{
			infra.WrapRepoErr("duplicate code", nil, infra.KindDuplicateKey),
			nil,
		}
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), gomock.Any()).
			Return(&queries.ReservationView{Status: "pending"}, nil)

		view, err := s.commands.Create(context.Background(), s.createReq(1), s.userID)

		s.Require().NoError(err)
		s.Require().NotNil(view)
		s.Equal(2, s.resRepo.createCalls)
		s.Require().Len(s.resRepo.created, 1)
		s.Len(s.notes.jobs, 2)
	})

	s.Run("non-duplicate errors are not retried", func() {
		s.SetupTest()
		s.resRepo.createErrs = []error{
			infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure),
		}

		view, err := s.commands.Create(context.Background(), s.createReq(1), s.userID)

		s.Require().Error(err)
		s.Nil(view)
		s.Equal(1, s.resRepo.createCalls)
		s.Empty(s.publisher.events)
	})

	s.Run("locks equipment in ID order", func() {
		s.SetupTest()
		second, err := equipment.NewEquipment("Function Generator", "20MHz arbitrary waveform", "lab", 2, "Storage B-3")
		s.Require().NoError(err)
		third, err := equipment.NewEquipment("Bench Multimeter", "6.5 digit precision", "lab", 4, "Storage B-1")
		s.Require().NoError(err)
		s.eqRepo.byID[second.ID()] = second
		s.eqRepo.byID[third.ID()] = third
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), gomock.Any()).
			Return(&queries.ReservationView{Status: "pending"}, nil)

		req := s.createReq(1)
		req.Items = append(req.Items,
			reqdto.ReservationLineRequest{EquipmentID: second.ID(), Quantity: 1},
			reqdto.ReservationLineRequest{EquipmentID: third.ID(), Quantity: 1},
		)

		_, err = s.commands.Create(context.Background(), req, s.userID)

		s.Require().NoError(err)
		expected := []uuid.UUID{s.equipmentID, second.ID(), third.ID()}
		slices.SortFunc(expected, func(a, b uuid.UUID) int {
			return bytes.Compare(a[:], b[:])
		})
		s.Equal(expected, s.eqRepo.lockOrder)
	})

	s.Run("date in the past fails validation", func() {
		s.SetupTest()
		req := s.createReq(1)
		req.Date = "2026-08-31"

		view, err := s.commands.Create(context.Background(), req, s.userID)

		s.Require().ErrorIs(err, ErrDomainValidation)
		s.Nil(view)
		s.Equal(0, s.resRepo.createCalls)
	})
}
