//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"campus-reserve/internal/domain/reservation"
	reqdto "campus-reserve/internal/handler/dto/request"
	"campus-reserve/internal/pkg/clock"
	"campus-reserve/internal/pkg/qrtoken"
	"campus-reserve/internal/usecase/queries"
	queriesmock "campus-reserve/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const scanTestCode = "RES-7K2M9QXZ"

type ScanCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	resQuery  *queriesmock.MockReservationQueries
	resRepo   *fakeReservationRepo
	notes     *fakeNotificationRepo
	publisher *fakeEventPublisher
	stats     *fakeStatsInvalidator
	clock     *clock.MockClock
	issuer    *qrtoken.Issuer
	commands  ScanCommands

	staffID uuid.UUID
}

func (s *ScanCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.resQuery = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.resRepo = &fakeReservationRepo{}
	s.notes = &fakeNotificationRepo{}
	s.publisher = &fakeEventPublisher{}
	s.stats = &fakeStatsInvalidator{}
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	s.issuer = qrtoken.NewIssuer("test-qr-secret")
	s.staffID = uuid.New()

	uow := &fakeUoW{tx: &fakeTx{res: s.resRepo, eq: newFakeEquipmentRepo(), notes: s.notes}}
	s.commands = NewScanCommands(uow, s.resQuery, s.publisher, s.stats, s.issuer, s.clock)
}

func (s *ScanCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScanCommandsSuite(t *testing.T) {
	suite.Run(t, new(ScanCommandsTestSuite))
}

// buildReservation walks a fresh reservation up to the wanted status.
func (s *ScanCommandsTestSuite) buildReservation(status reservation.Status) *reservation.Reservation {
	now := s.clock.Now()
	slot, err := reservation.NewTimeSlot(
		now.AddDate(0, 0, 7),
		time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC),
		time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)
	purpose, err := reservation.NewPurpose("Physics lab experiment session")
	s.Require().NoError(err)
	note, err := reservation.NewNote("")
	s.Require().NoError(err)

	factory := reservation.NewFactory(s.clock)
	res, err := factory.New(uuid.New(), scanTestCode, slot, purpose, note, []reservation.Line{
		{EquipmentID: uuid.New(), Quantity: 1},
	})
	s.Require().NoError(err)

	switch status {
	case reservation.StatusPending:
	case reservation.StatusApproved:
		s.Require().NoError(res.Approve(s.staffID, now))
	case reservation.StatusIssued:
		s.Require().NoError(res.Approve(s.staffID, now))
		_, err = res.IssueItems(s.staffID, nil, now)
		s.Require().NoError(err)
	case reservation.StatusCompleted:
		s.Require().NoError(res.Approve(s.staffID, now))
		_, err = res.IssueItems(s.staffID, nil, now)
		s.Require().NoError(err)
		_, err = res.ReturnItems(s.staffID, nil, now)
		s.Require().NoError(err)
	case reservation.StatusRejected:
		s.Require().NoError(res.Reject(s.staffID, nil, now))
	default:
		s.FailNow("unsupported status in builder", status)
	}
	s.Require().Equal(status, res.Status())
	return res
}

func (s *ScanCommandsTestSuite) scanReq() reqdto.ScanRequest {
	payload, err := s.issuer.MintJSON(scanTestCode)
	s.Require().NoError(err)
	return reqdto.ScanRequest{Data: string(payload)}
}

func (s *ScanCommandsTestSuite) TestScan() {
	s.Run("pending is approved and issued in one step", func() {
		s.SetupTest()
		res := s.buildReservation(reservation.StatusPending)
		s.resRepo.byCode = res
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), res.ID()).
			Return(&queries.ReservationView{ID: res.ID(), Status: "issued"}, nil)

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().NoError(err)
		s.Equal(ScanActionIssued, result.Action)
		s.Equal(reservation.StatusIssued, res.Status())
		s.Equal(1, s.resRepo.saves)
		s.Len(s.notes.jobs, 2)
		s.Equal(NotifyItemsIssued, s.notes.jobs[0].topic)
		s.Len(s.publisher.events, 1)
	})

	s.Run("approved is issued", func() {
		s.SetupTest()
		res := s.buildReservation(reservation.StatusApproved)
		s.resRepo.byCode = res
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), res.ID()).
			Return(&queries.ReservationView{ID: res.ID(), Status: "issued"}, nil)

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().NoError(err)
		s.Equal(ScanActionIssued, result.Action)
		s.Equal(reservation.StatusIssued, res.Status())
	})

	s.Run("issued is returned and completes", func() {
		s.SetupTest()
		res := s.buildReservation(reservation.StatusIssued)
		s.resRepo.byCode = res
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), res.ID()).
			Return(&queries.ReservationView{ID: res.ID(), Status: "completed"}, nil)

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().NoError(err)
		s.Equal(ScanActionReturned, result.Action)
		s.Equal(reservation.StatusCompleted, res.Status())
		s.Equal(NotifyItemsReturned, s.notes.jobs[0].topic)
	})

	s.Run("completed reports without touching state", func() {
		s.SetupTest()
		res := s.buildReservation(reservation.StatusCompleted)
		s.resRepo.byCode = res
		s.resQuery.EXPECT().
			GetByIDSystem(gomock.Any(), res.ID()).
			Return(&queries.ReservationView{ID: res.ID(), Status: "completed"}, nil)

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().NoError(err)
		s.Equal(ScanActionAlreadyCompleted, result.Action)
		s.Equal(0, s.resRepo.saves)
		s.Empty(s.notes.jobs)
		s.Empty(s.publisher.events)
	})

	s.Run("rejected is not actionable", func() {
		s.SetupTest()
		s.resRepo.byCode = s.buildReservation(reservation.StatusRejected)

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().ErrorIs(err, ErrScanNotActionable)
		s.Nil(result)
		s.Equal(0, s.resRepo.saves)
	})

	s.Run("unknown code", func() {
		s.SetupTest()

		result, err := s.commands.Scan(context.Background(), s.scanReq(), s.staffID)

		s.Require().ErrorIs(err, ErrReservationNotFound)
		s.Nil(result)
	})

	s.Run("tampered payload", func() {
		s.SetupTest()
		req := reqdto.ScanRequest{Data: `{"code":"RES-7K2M9QXZ","sig":"forged"}`}

		result, err := s.commands.Scan(context.Background(), req, s.staffID)

		s.Require().ErrorIs(err, ErrInvalidQRToken)
		s.Nil(result)
	})
}
