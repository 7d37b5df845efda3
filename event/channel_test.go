package event

import (
	"testing"
)

func TestPublishOrder(t *testing.T) {
	var c Channel[int]
	var got []string

	c.Subscribe(func(v int) { got = append(got, "a") })
	c.Subscribe(func(v int) { got = append(got, "b") })
	c.Subscribe(func(v int) { got = append(got, "c") })

	c.Publish(1)

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPublishValue(t *testing.T) {
	var c Channel[string]
	var got string
	c.Subscribe(func(v string) { got = v })

	c.Publish("pong")
	if got != "pong" {
		t.Errorf("got %q, want %q", got, "pong")
	}
}

func TestCancel(t *testing.T) {
	var c Channel[struct{}]
	calls := 0
	cancel := c.Subscribe(func(struct{}) { calls++ })
	keep := 0
	c.Subscribe(func(struct{}) { keep++ })

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	cancel()
	cancel()
	if c.Len() != 1 {
		t.Fatalf("Len after cancel = %d, want 1", c.Len())
	}

	c.Publish(struct{}{})
	if calls != 0 {
		t.Errorf("cancelled handler called %d times", calls)
	}
	if keep != 1 {
		t.Errorf("remaining handler called %d times, want 1", keep)
	}
}

func TestCancelDuringPublish(t *testing.T) {
	var c Channel[int]
	var second int
	var cancelSecond func()

	c.Subscribe(func(int) { cancelSecond() })
	cancelSecond = c.Subscribe(func(v int) { second += v })

	c.Publish(1)
	if second != 1 {
		t.Errorf("snapshot should still deliver to second handler, got %d", second)
	}

	c.Publish(1)
	if second != 1 {
		t.Errorf("cancelled handler received second publish, got %d", second)
	}
}

func TestZeroValue(t *testing.T) {
	var c Channel[float64]
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
	c.Publish(1.5)
}
