package events

import "testing"

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus()
	feed := bus.Subscribe(2)

	bus.Publish(New(KindReminded, 1))
	bus.Publish(New(KindCompleted, 2))

	first := <-feed
	if first.Kind != KindReminded || first.OrderID != 1 || first.ID == "" {
		t.Errorf("Expected reminded event for order 1, got %+v", first)
	}
	second := <-feed
	if second.Kind != KindCompleted || second.OrderID != 2 {
		t.Errorf("Expected completed event for order 2, got %+v", second)
	}
	if first.ID == second.ID {
		t.Errorf("Expected unique event ids")
	}
}

func TestBus_DropsOnFullBuffer(t *testing.T) {
	bus := NewBus()
	feed := bus.Subscribe(1)

	// публикация никогда не блокируется, лишнее событие теряется
	bus.Publish(New(KindReminded, 1))
	bus.Publish(New(KindReminded, 2))

	event := <-feed
	if event.OrderID != 1 {
		t.Errorf("Expected first event to survive, got order %d", event.OrderID)
	}
	select {
	case extra := <-feed:
		t.Errorf("Expected no extra event, got %+v", extra)
	default:
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	feed := bus.Subscribe(1)
	bus.Close()

	if _, ok := <-feed; ok {
		t.Errorf("Expected closed channel")
	}
	// публикация после закрытия безопасна
	bus.Publish(New(KindVoided, 1))
}
