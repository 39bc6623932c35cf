package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	sub := b.Subscribe(NavNamespace, 10)
	defer sub.Cancel()

	b.Publish(Event{Kind: "nav.screen_changed", Timestamp: time.Now(), Payload: "chats"})

	select {
	case evt := <-sub.C():
		if evt.Kind != "nav.screen_changed" {
			t.Errorf("got kind %q, want nav.screen_changed", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	sub := b.Subscribe(CallNamespace, 10)
	defer sub.Cancel()

	b.Publish(Event{Kind: "nav.screen_changed"})
	b.Publish(Event{Kind: "call.started"})

	select {
	case evt := <-sub.C():
		if evt.Kind != "call.started" {
			t.Errorf("got kind %q, want call.started", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-sub.C():
		t.Errorf("unexpected event: %v", evt)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := New()
	sub := b.Subscribe(NavNamespace, 10)
	sub.Cancel()
	sub.Cancel()

	b.Publish(Event{Kind: "nav.screen_changed"})

	if _, ok := <-sub.C(); ok {
		t.Error("received event after cancel")
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	sub := b.Subscribe("call.", 1)
	defer sub.Cancel()

	b.Publish(Event{Kind: "call.tick", Payload: 1})
	b.Publish(Event{Kind: "call.tick", Payload: 2})

	evt := <-sub.C()
	if evt.Payload != 1 {
		t.Errorf("got payload %v, want 1", evt.Payload)
	}
	select {
	case evt := <-sub.C():
		t.Errorf("second event should have been dropped, got %v", evt)
	default:
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	b := New()
	sub := b.Subscribe("", 1)
	b.Close()
	sub.Cancel()

	if _, ok := <-sub.C(); ok {
		t.Error("channel still open after Close")
	}

	late := b.Subscribe("", 1)
	if _, ok := <-late.C(); ok {
		t.Error("subscription on closed bus should be closed")
	}
	b.Publish(Event{Kind: "nav.logged_out"})
}
