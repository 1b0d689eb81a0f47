package events

import "testing"

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

func TestEmitOrderAndUnsubscribe(t *testing.T) {
	em := NewEventManager()

	var got []string
	unsubA := em.Subscribe("ping", func(Event) { got = append(got, "a") })
	em.Subscribe("ping", func(Event) { got = append(got, "b") })

	em.Emit(pingEvent{n: 1})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("handlers ran as %v, want [a b]", got)
	}

	unsubA()
	got = nil
	em.Emit(pingEvent{n: 2})
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("after unsubscribe handlers ran as %v, want [b]", got)
	}
}

func TestEmitWithoutSubscribers(t *testing.T) {
	em := NewEventManager()
	if em.HasSubscribers("ping") {
		t.Fatal("HasSubscribers() = true on empty manager")
	}
	em.Emit(pingEvent{})

	unsub := em.Subscribe("ping", func(Event) {})
	unsub()
	unsub()
	if em.HasSubscribers("ping") {
		t.Error("HasSubscribers() = true after unsubscribe")
	}
}
