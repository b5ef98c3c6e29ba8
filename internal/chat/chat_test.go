package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/dispatch-board/internal/models"
)

func TestManager_OpenAndSend(t *testing.T) {
	manager := NewManager(100, 10)
	order := models.OrderData{ID: 1, CustomerName: "Zhang San", MasterName: "Zhao Liu"}

	session, err := manager.Open(RoleMaster, order)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if session.Contact != "Zhao Liu" {
		t.Errorf("Expected contact 'Zhao Liu', got %q", session.Contact)
	}

	message, err := manager.Send(context.Background(), RoleMaster, 1, "on my way?")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if message.ID == "" {
		t.Errorf("Expected message id to be set")
	}

	history := manager.History(RoleMaster, 1)
	if len(history) != 1 || history[0].Text != "on my way?" {
		t.Errorf("Expected one message in history, got %+v", history)
	}
}

func TestManager_UnknownRole(t *testing.T) {
	manager := NewManager(100, 10)

	if _, err := manager.Open("plumber", models.OrderData{ID: 1}); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got '%v'", err)
	}
	// отправка без открытой сессии тоже отклоняется
	if _, err := manager.Send(context.Background(), RoleCustomer, 1, "hi"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got '%v'", err)
	}
}

func TestManager_RateLimit(t *testing.T) {
	// один залп, пополнения за время теста не происходит
	manager := NewManager(0.001, 1)
	order := models.OrderData{ID: 1, CustomerName: "Zhang San"}
	if _, err := manager.Open(RoleCustomer, order); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	if _, err := manager.Send(context.Background(), RoleCustomer, 1, "first"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	_, err := manager.Send(context.Background(), RoleCustomer, 1, "second")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("Expected ErrRateLimited, got '%v'", err)
	}
	// отклонённое сообщение не попадает в историю
	if history := manager.History(RoleCustomer, 1); len(history) != 1 {
		t.Errorf("Expected one message in history, got %d", len(history))
	}
}
