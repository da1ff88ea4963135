package featured_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/featured"
	"github.com/daltekdz/daltekdz_bot/internal/featured/mocks"
	"github.com/daltekdz/daltekdz_bot/internal/kv"
	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/pkg/clock"
)

type FeaturedServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	notifier *mocks.MockNotifier
	stores   *mocks.MockStoreLookup
	store    *kv.MemoryStore
	clock    *clock.MockClock
	service  *featured.Service
	sent     []*model.Notification
}

func (s *FeaturedServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.notifier = mocks.NewMockNotifier(s.ctrl)
	s.stores = mocks.NewMockStoreLookup(s.ctrl)
	s.store = kv.NewMemoryStore()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	s.sent = nil

	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n *model.Notification) { s.sent = append(s.sent, n) }).
		AnyTimes()

	for id, name := range map[int64]string{1: "X", 2: "Salon Yasmine", 3: "Barber Oran"} {
		s.stores.EXPECT().GetByID(gomock.Any(), id).
			Return(&model.Store{ID: id, Name: name}, nil).AnyTimes()
	}
	s.stores.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil).AnyTimes()

	s.service = featured.NewService(
		featured.NewKVRepository(s.store),
		s.stores,
		s.notifier,
		s.clock,
		zap.NewNop(),
	)
}

func TestFeaturedServiceSuite(t *testing.T) {
	suite.Run(t, new(FeaturedServiceTestSuite))
}

func (s *FeaturedServiceTestSuite) kinds() []model.NotificationKind {
	out := make([]model.NotificationKind, 0, len(s.sent))
	for _, n := range s.sent {
		out = append(out, n.Kind)
	}
	return out
}

func (s *FeaturedServiceTestSuite) TestAdd_DaysRemainingEqualsDuration() {
	for _, days := range featured.AllowedDurations {
		entry, err := s.service.Add(s.ctx, 1, days)
		s.Require().NoError(err)

		s.True(entry.IsActive)
		s.Equal(s.clock.Now(), entry.StartDate)
		s.Equal(days, featured.DaysRemaining(entry.EndDate, s.clock.Now()))
	}
}

func (s *FeaturedServiceTestSuite) TestAdd_Validation() {
	_, err := s.service.Add(s.ctx, 1, 10)
	s.ErrorIs(err, featured.ErrInvalidDuration)

	_, err = s.service.Add(s.ctx, 99, 7)
	s.ErrorIs(err, featured.ErrStoreNotFound)

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
	s.Empty(s.sent)
}

func (s *FeaturedServiceTestSuite) TestAdd_SameStoreTwiceIsAllowed() {
	_, err := s.service.Add(s.ctx, 1, 7)
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, 1, 30)
	s.Require().NoError(err)

	active, err := s.service.Active(s.ctx)
	s.Require().NoError(err)
	s.Len(active, 2)
}

func (s *FeaturedServiceTestSuite) TestSweep_ExpiresOnce() {
	entry, err := s.service.Add(s.ctx, 1, 7)
	s.Require().NoError(err)

	s.clock.Add(7*24*time.Hour + time.Minute)

	expired, err := s.service.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(expired, 1)
	s.Equal(entry.ID, expired[0].ID)
	s.False(expired[0].IsActive)

	expired, err = s.service.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Empty(expired)

	s.Equal([]model.NotificationKind{
		model.NotificationFeaturedAdded,
		model.NotificationFeaturedExpired,
	}, s.kinds())

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.False(list[0].IsActive)
	s.Zero(list[0].DaysRemaining)
}

func (s *FeaturedServiceTestSuite) TestSweep_NotExpiredAtExactEnd() {
	_, err := s.service.Add(s.ctx, 1, 7)
	s.Require().NoError(err)

	s.clock.Add(7 * 24 * time.Hour)

	expired, err := s.service.Sweep(s.ctx)
	s.Require().NoError(err)
	s.Empty(expired)
}

func (s *FeaturedServiceTestSuite) TestExtend_ReactivatesExpired() {
	entry, err := s.service.Add(s.ctx, 2, 7)
	s.Require().NoError(err)

	s.clock.Add(10 * 24 * time.Hour)
	_, err = s.service.Sweep(s.ctx)
	s.Require().NoError(err)

	extended, err := s.service.Extend(s.ctx, entry.ID, 15)
	s.Require().NoError(err)

	s.True(extended.IsActive)
	s.Equal(s.clock.Now(), extended.StartDate)
	s.Equal(15, featured.DaysRemaining(extended.EndDate, s.clock.Now()))
	s.Equal(model.NotificationFeaturedExtended, s.sent[len(s.sent)-1].Kind)
}

func (s *FeaturedServiceTestSuite) TestExtend_Errors() {
	_, err := s.service.Extend(s.ctx, uuid.New(), 7)
	s.ErrorIs(err, featured.ErrNotFound)

	entry, err := s.service.Add(s.ctx, 1, 7)
	s.Require().NoError(err)
	_, err = s.service.Extend(s.ctx, entry.ID, 3)
	s.ErrorIs(err, featured.ErrInvalidDuration)
}

func (s *FeaturedServiceTestSuite) TestRemove_BeforeExpiry() {
	entry, err := s.service.Add(s.ctx, 1, 15)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Remove(s.ctx, entry.ID))

	active, err := s.service.Active(s.ctx)
	s.Require().NoError(err)
	for _, e := range active {
		s.NotEqual("X", e.StoreName)
	}

	last := s.sent[len(s.sent)-1]
	s.Equal(model.NotificationFeaturedRemoved, last.Kind)
	s.Equal("X", last.Payload["store_name"])

	s.ErrorIs(s.service.Remove(s.ctx, entry.ID), featured.ErrNotFound)
}

func (s *FeaturedServiceTestSuite) TestReorder() {
	a, _ := s.service.Add(s.ctx, 1, 7)
	b, _ := s.service.Add(s.ctx, 2, 7)
	c, _ := s.service.Add(s.ctx, 3, 7)

	s.Require().NoError(s.service.Reorder(s.ctx, 0, 1))
	s.Equal([]uuid.UUID{b.ID, a.ID, c.ID}, s.ids())

	s.Require().NoError(s.service.Reorder(s.ctx, 2, -1))
	s.Equal([]uuid.UUID{b.ID, c.ID, a.ID}, s.ids())

	// Выход за границы ничего не меняет
	s.Require().NoError(s.service.Reorder(s.ctx, 0, -1))
	s.Require().NoError(s.service.Reorder(s.ctx, 2, 1))
	s.Require().NoError(s.service.Reorder(s.ctx, 7, 1))
	s.Equal([]uuid.UUID{b.ID, c.ID, a.ID}, s.ids())

	s.ErrorIs(s.service.Reorder(s.ctx, 0, 2), featured.ErrInvalidDirection)
}

func (s *FeaturedServiceTestSuite) TestPersistence_RoundTrip() {
	_, err := s.service.Add(s.ctx, 1, 7)
	s.Require().NoError(err)
	_, err = s.service.Add(s.ctx, 2, 30)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Reorder(s.ctx, 1, -1))

	entries, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	want := make([]model.FeaturedStore, 0, len(entries))
	for _, e := range entries {
		want = append(want, e.FeaturedStore)
	}

	// Перезагрузка из того же хранилища новым репозиторием
	reloaded, err := featured.NewKVRepository(s.store).Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(want, reloaded))

	// Сохранение и повторная загрузка воспроизводят список
	repo := featured.NewKVRepository(kv.NewMemoryStore())
	s.Require().NoError(repo.Save(s.ctx, reloaded))
	again, err := repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(cmp.Diff(reloaded, again))
}

func (s *FeaturedServiceTestSuite) ids() []uuid.UUID {
	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	out := make([]uuid.UUID, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}
