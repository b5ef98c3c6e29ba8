package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/dispatch-board/internal/models"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Роли собеседников
const (
	RoleCustomer   = "customer"
	RoleMaster     = "master"
	RoleDispatcher = "dispatcher"
)

var (
	ErrUnknownRole = errors.New("unknown chat role")
	ErrRateLimited = errors.New("message rate limit exceeded")
)

// Message - сообщение чата
type Message struct {
	ID   string
	Role string
	Text string
	At   time.Time
}

// Session - канал связи по конкретному заказу
type Session struct {
	OrderID  int64
	Role     string
	Contact  string
	Messages []Message
}

type sessionKey struct {
	role    string
	orderID int64
}

// Manager - сессии каналов связи. Отправка сообщений ограничена общим
// лимитером, переполнение отклоняется без изменения сессии.
type Manager struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	sessions map[sessionKey]*Session
}

// Создание менеджера. perSecond - сообщений в секунду, burst - допустимый залп.
func NewManager(perSecond float64, burst int) *Manager {
	return &Manager{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		sessions: make(map[sessionKey]*Session),
	}
}

// Open - открывает (или возвращает существующую) сессию по заказу
func (m *Manager) Open(role string, order models.OrderData) (*Session, error) {
	contact, err := contactFor(role, order)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := sessionKey{role: role, orderID: order.ID}
	session, ok := m.sessions[key]
	if !ok {
		session = &Session{OrderID: order.ID, Role: role, Contact: contact}
		m.sessions[key] = session
	}
	return session, nil
}

// Send - отправляет сообщение в открытую сессию
func (m *Manager) Send(_ context.Context, role string, orderID int64, text string) (*Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionKey{role: role, orderID: orderID}]
	if !ok {
		return nil, fmt.Errorf("session %s/%d is not open: %w", role, orderID, ErrUnknownRole)
	}
	if !m.limiter.Allow() {
		return nil, ErrRateLimited
	}

	message := Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		At:   time.Now(),
	}
	session.Messages = append(session.Messages, message)
	return &message, nil
}

// History - копия сообщений сессии
func (m *Manager) History(role string, orderID int64) []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionKey{role: role, orderID: orderID}]
	if !ok {
		return nil
	}
	return append([]Message(nil), session.Messages...)
}

func contactFor(role string, order models.OrderData) (string, error) {
	switch role {
	case RoleCustomer:
		return order.CustomerName, nil
	case RoleMaster:
		return order.MasterName, nil
	case RoleDispatcher:
		return order.DispatcherName, nil
	default:
		return "", fmt.Errorf("role %q: %w", role, ErrUnknownRole)
	}
}
