package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/event"
	mEvent "github.com/x-xyz/goauction/domain/event/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	repo *mEvent.Repo
	im   *impl
	now  time.Time
}

func (s *testsuite) SetupTest() {
	s.repo = &mEvent.Repo{}
	s.im = New(s.repo).(*impl)
	s.now = time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	s.im.now = func() time.Time { return s.now }
}

func (s *testsuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestEventUsecase(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (s *testsuite) TestEmit() {
	var inserted *event.Event
	s.repo.On("Insert", mockCtx, mock.AnythingOfType("*event.Event")).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*event.Event)
	}).Return(nil).Once()

	err := s.im.Emit(mockCtx, domain.Address("0xABC"), "BidPlaced", event.Args{"amount": "1"})
	s.Require().NoError(err)
	s.Require().NotNil(inserted)
	s.NotEmpty(inserted.Id)
	s.Equal(domain.Address("0xabc"), inserted.Contract)
	s.Equal("BidPlaced", inserted.Name)
	s.Equal(event.Args{"amount": "1"}, inserted.Args)
	s.Equal(s.now, inserted.CreatedAt)
}

func (s *testsuite) TestEmitFailed() {
	errInsert := errors.New("insert failed")
	s.repo.On("Insert", mockCtx, mock.Anything).Return(errInsert).Once()

	s.Equal(errInsert, s.im.Emit(mockCtx, "0x1", "x", nil))
}

func (s *testsuite) TestEmitUniqueIds() {
	ids := map[string]bool{}
	s.repo.On("Insert", mockCtx, mock.Anything).Run(func(args mock.Arguments) {
		ids[args.Get(1).(*event.Event).Id] = true
	}).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.im.Emit(mockCtx, "0x1", "x", nil))
	}
	s.Len(ids, 3)
}

func (s *testsuite) TestFindAll() {
	events := []*event.Event{{Id: "1"}}
	s.repo.On("FindAll", mockCtx, mock.Anything).Return(events, nil).Once()

	res, err := s.im.FindAll(mockCtx, event.WithName("x"))
	s.NoError(err)
	s.Equal(events, res)
}
