package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/daltekdz/daltekdz_bot/internal/model"
	"github.com/daltekdz/daltekdz_bot/internal/notification"
	"github.com/daltekdz/daltekdz_bot/internal/notification/mocks"
	"github.com/daltekdz/daltekdz_bot/internal/wizard"
)

const (
	adminChat = int64(-1001)
	storeChat = int64(-2002)
)

type NotificationTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	repo      *mocks.MockRepository
	messenger *mocks.MockMessenger
}

func (s *NotificationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockRepository(s.ctrl)
	s.messenger = mocks.NewMockMessenger(s.ctrl)
}

func TestNotificationSuite(t *testing.T) {
	suite.Run(t, new(NotificationTestSuite))
}

func (s *NotificationTestSuite) TestNotify_PersistsThenPushes() {
	svc := notification.NewService(s.repo, s.messenger, adminChat, zap.NewNop())
	n := &model.Notification{Kind: model.NotificationFeaturedExpired, Title: "Mise en avant expirée", Message: "X <b>"}

	gomock.InOrder(
		s.repo.EXPECT().Create(gomock.Any(), n).Return(nil),
		s.messenger.EXPECT().SendText(gomock.Any(), adminChat, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ int64, text string, _ models.ReplyMarkup) error {
				s.Contains(text, "Mise en avant expirée")
				s.Contains(text, "X &lt;b&gt;")
				return nil
			}),
	)

	svc.Notify(s.ctx, n)
}

func (s *NotificationTestSuite) TestNotify_FailuresAreSwallowed() {
	svc := notification.NewService(s.repo, s.messenger, adminChat, zap.NewNop())

	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	s.messenger.EXPECT().SendText(gomock.Any(), adminChat, gomock.Any(), nil).Return(errors.New("telegram down"))

	s.NotPanics(func() {
		svc.Notify(s.ctx, &model.Notification{Kind: model.NotificationBookingCreated})
	})
}

func (s *NotificationTestSuite) TestNotify_NoAdminChat() {
	svc := notification.NewService(s.repo, s.messenger, 0, zap.NewNop())

	s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc.Notify(s.ctx, &model.Notification{Kind: model.NotificationFeaturedAdded})
}

func (s *NotificationTestSuite) TestListAndMarkRead() {
	svc := notification.NewService(s.repo, nil, 0, zap.NewNop())

	s.repo.EXPECT().List(gomock.Any(), notification.DefaultListLimit).
		Return([]*model.Notification{{ID: 1}}, nil)
	list, err := svc.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(list, 1)

	s.repo.EXPECT().MarkRead(gomock.Any(), int64(1)).Return(true, nil)
	s.NoError(svc.MarkRead(s.ctx, 1))

	s.repo.EXPECT().MarkRead(gomock.Any(), int64(2)).Return(false, nil)
	s.ErrorIs(svc.MarkRead(s.ctx, 2), notification.ErrNotFound)
}

func (s *NotificationTestSuite) TestShareBooking_SendsLinkAndQR() {
	chat := notification.NewChatNotifier(s.messenger, "0551234567", storeChat, zap.NewNop())
	summary := wizard.Summary{
		ServiceName: "Coupe masculine classique",
		Price:       800,
		Duration:    30,
		StaffName:   model.AnyStaffName,
		Date:        "2025-03-10",
		Time:        "10:30",
		Customer:    model.Customer{Name: "Ali", Email: "ali@example.dz", Phone: "0551234567"},
	}

	gomock.InOrder(
		s.messenger.EXPECT().SendText(gomock.Any(), storeChat, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, text string, markup models.ReplyMarkup) error {
				s.Contains(text, "Coupe masculine classique")
				kb, ok := markup.(*models.InlineKeyboardMarkup)
				s.Require().True(ok)
				s.Contains(kb.InlineKeyboard[0][0].URL, "https://wa.me/213551234567?text=")
				return nil
			}),
		s.messenger.EXPECT().SendPhoto(gomock.Any(), storeChat, "booking.png", gomock.Any(), gomock.Any()).Return(nil),
	)

	s.NoError(chat.ShareBooking(s.ctx, summary))
}

func (s *NotificationTestSuite) TestShareBooking_Errors() {
	unconfigured := notification.NewChatNotifier(s.messenger, "0551234567", 0, zap.NewNop())
	s.ErrorIs(unconfigured.ShareBooking(s.ctx, wizard.Summary{}), notification.ErrNoStoreChat)

	chat := notification.NewChatNotifier(s.messenger, "0551234567", storeChat, zap.NewNop())
	sendErr := errors.New("bot blocked")
	s.messenger.EXPECT().SendText(gomock.Any(), storeChat, gomock.Any(), gomock.Any()).Return(sendErr)
	s.messenger.EXPECT().SendPhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.ErrorIs(chat.ShareBooking(s.ctx, wizard.Summary{ServiceName: "Manucure"}), sendErr)
}

func (s *NotificationTestSuite) TestBookingLink_WorksWithoutStoreChat() {
	unconfigured := notification.NewChatNotifier(s.messenger, "0551234567", 0, zap.NewNop())

	link := unconfigured.BookingLink(wizard.Summary{ServiceName: "Manucure", Date: "2025-03-10", Time: "10:30"})

	s.Contains(link, "https://wa.me/213551234567?text=")
	s.Contains(link, "Manucure")
}
