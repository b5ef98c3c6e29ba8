package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/denmor86/dispatch-board/internal/config"
	"github.com/denmor86/dispatch-board/internal/events"
	"github.com/denmor86/dispatch-board/internal/logger"
	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/denmor86/dispatch-board/internal/storage"
	"github.com/denmor86/dispatch-board/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// stubPrompter - заглушка подтверждающего диалога
type stubPrompter struct {
	settlement *models.SettlementData
	reason     string
	confirmed  bool
	err        error
}

func (p *stubPrompter) CollectSettlement(_ context.Context, _ models.OrderData) (*models.SettlementData, error) {
	return p.settlement, p.err
}

func (p *stubPrompter) CollectVoidReason(_ context.Context, _ models.OrderData) (string, bool, error) {
	return p.reason, p.confirmed, p.err
}

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	initTestLogger(t)

	pending := &models.OrderData{ID: 1, Status: models.OrderStatusPendingDispatch}
	settlement := &models.SettlementData{ActualPaid: decimal.NewFromInt(200)}

	testCases := []struct {
		TestName      string
		Kind          ActionKind
		Prompter      stubPrompter
		SetupMocks    func(m *mocks.MockOrdersStorage)
		ExpectedError error
	}{
		{
			TestName: "Success. Remind #1",
			Kind:     ActionRemind,
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
				m.EXPECT().Remind(gomock.Any(), int64(1)).Return(nil)
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Error. Remind rejected #2",
			Kind:     ActionRemind,
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
				m.EXPECT().Remind(gomock.Any(), int64(1)).Return(fmt.Errorf("order 1 already reminded: %w", storage.ErrInvalidTransition))
			},
			ExpectedError: storage.ErrInvalidTransition,
		},
		{
			TestName: "Error. Order not found #3",
			Kind:     ActionRemind,
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(nil, fmt.Errorf("order 1: %w", storage.ErrNotFound))
			},
			ExpectedError: storage.ErrNotFound,
		},
		{
			TestName: "Success. Complete with settlement #4",
			Kind:     ActionComplete,
			Prompter: stubPrompter{settlement: settlement},
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
				m.EXPECT().Complete(gomock.Any(), int64(1), *settlement).Return(nil)
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Cancel. Complete without settlement #5",
			Kind:     ActionComplete,
			Prompter: stubPrompter{settlement: nil},
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: ErrActionCancelled,
		},
		{
			TestName: "Success. Void with reason #6",
			Kind:     ActionVoid,
			Prompter: stubPrompter{reason: "duplicate", confirmed: true},
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
				m.EXPECT().Void(gomock.Any(), int64(1), "admin", "duplicate").Return(nil)
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Cancel. Void not confirmed #7",
			Kind:     ActionVoid,
			Prompter: stubPrompter{confirmed: false},
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: ErrActionCancelled,
		},
		{
			TestName: "Success. Detail marks read #8",
			Kind:     ActionDetail,
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
				m.EXPECT().MarkRead(gomock.Any(), int64(1)).Return(nil)
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Error. Unsupported action #9",
			Kind:     ActionKind("escalate"),
			SetupMocks: func(m *mocks.MockOrdersStorage) {
				m.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil)
			},
			ExpectedError: ErrUnsupportedAction,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockStorage := mocks.NewMockOrdersStorage(ctrl)
			tc.SetupMocks(mockStorage)

			prompter := tc.Prompter
			dispatcher := NewDispatcher(mockStorage, &prompter, events.NewBus(), "admin")

			order, err := dispatcher.Dispatch(context.Background(), tc.Kind, 1)

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got '%v'", err)
				}
				if order == nil {
					t.Fatalf("Expected order copy, got nil")
				}
				return
			}
			if !errors.Is(err, tc.ExpectedError) {
				t.Errorf("Expected error '%v', got '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestDispatcher_PublishesEvents(t *testing.T) {
	initTestLogger(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockOrdersStorage(ctrl)

	pending := &models.OrderData{ID: 1, Status: models.OrderStatusPendingDispatch}
	mockStorage.EXPECT().GetOrder(gomock.Any(), int64(1)).Return(pending, nil).Times(2)
	mockStorage.EXPECT().Remind(gomock.Any(), int64(1)).Return(nil)

	bus := events.NewBus()
	feed := bus.Subscribe(1)
	dispatcher := NewDispatcher(mockStorage, &stubPrompter{}, bus, "admin")

	if _, err := dispatcher.Dispatch(context.Background(), ActionRemind, 1); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	select {
	case event := <-feed:
		if event.Kind != events.KindReminded || event.OrderID != 1 {
			t.Errorf("Expected reminded event for order 1, got %+v", event)
		}
		if event.ID == "" {
			t.Errorf("Expected event id to be set")
		}
	default:
		t.Errorf("Expected event on the bus")
	}
}
