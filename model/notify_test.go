package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nodebase/model"
)

func TestNotifyPropertyChanged(t *testing.T) {
	l := &leaf{}
	var got []string
	var senders []model.Node
	l.OnPropertyChanged(func(ev *model.PropertyChangedEvent) {
		got = append(got, ev.Property)
		senders = append(senders, ev.Sender)
	})
	l.SetValue("x")
	if diff := cmp.Diff([]string{"Value"}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
	if len(senders) != 1 || senders[0] != model.Node(l) {
		t.Errorf("sender = %v, want the leaf", senders)
	}
	l.SetValue("x")
	if len(got) != 1 {
		t.Errorf("setting the same value notified: %v", got)
	}
}

func TestNotifyOrderAndUnsubscribe(t *testing.T) {
	l := &leaf{}
	var got []string
	subA := l.OnPropertyChanged(func(ev *model.PropertyChangedEvent) { got = append(got, "a:"+ev.Property) })
	l.OnPropertyChanged(func(ev *model.PropertyChangedEvent) { got = append(got, "b:"+ev.Property) })
	l.NotifyPropertyChanged(l, "X")
	subA.Unsubscribe()
	subA.Unsubscribe()
	l.NotifyPropertyChanged(l, "Y")
	want := []string{"a:X", "b:X", "b:Y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifyUnsubscribeDuringNotify(t *testing.T) {
	l := &leaf{}
	var got []string
	var subA *model.Subscription
	subA = l.OnPropertyChanged(func(ev *model.PropertyChangedEvent) {
		got = append(got, "a")
		subA.Unsubscribe()
	})
	l.OnPropertyChanged(func(ev *model.PropertyChangedEvent) { got = append(got, "b") })
	l.NotifyPropertyChanged(l, "X")
	l.NotifyPropertyChanged(l, "X")
	if diff := cmp.Diff([]string{"a", "b", "b"}, got); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifyNoSubscribers(t *testing.T) {
	l := &leaf{}
	if l.HasPropertyChangedHandlers() {
		t.Fatal("new node has handlers")
	}
	allocs := testing.AllocsPerRun(100, func() {
		l.NotifyPropertyChanged(l, "Value")
	})
	if allocs != 0 {
		t.Errorf("NotifyPropertyChanged with no subscribers allocated %v times", allocs)
	}
	sub := l.OnPropertyChanged(func(*model.PropertyChangedEvent) {})
	sub.Unsubscribe()
	if l.HasPropertyChangedHandlers() {
		t.Error("handler still registered after Unsubscribe")
	}
}

func TestNotifyPanicPropagates(t *testing.T) {
	l := &leaf{}
	l.OnPropertyChanged(func(*model.PropertyChangedEvent) { panic("boom") })
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	l.SetValue("x")
	t.Error("handler panic was swallowed")
}

func TestSubscriptionsNotCopied(t *testing.T) {
	l := &leaf{}
	count := 0
	l.OnPropertyChanged(func(*model.PropertyChangedEvent) { count++ })
	c, err := model.Copy(l)
	if err != nil {
		t.Fatal(err)
	}
	c.SetValue("y")
	if count != 0 || c.HasPropertyChangedHandlers() {
		t.Error("subscription was copied")
	}
	l.SetValue("z")
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}
