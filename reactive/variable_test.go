package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableSet(t *testing.T) {
	tests := []struct {
		name    string
		initial int
		set     int
		changed bool
	}{
		{name: "new value", initial: 1, set: 2, changed: true},
		{name: "same value", initial: 1, set: 1, changed: false},
		{name: "zero value", initial: 5, set: 0, changed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVariable(tt.initial)
			calls := 0
			v.Changes(nil, func(int) { calls++ })

			got := v.Set(tt.set)
			assert.Equal(t, tt.changed, got)
			assert.Equal(t, tt.set, v.Current())
			if tt.changed {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls)
			}
		})
	}
}

func TestVariableNotifiesInOrder(t *testing.T) {
	v := NewVariable("a")
	var order []string
	v.Changes(nil, func(s string) { order = append(order, "first:"+s) })
	v.Changes(nil, func(s string) { order = append(order, "second:"+s) })

	v.Set("b")

	assert.Equal(t, []string{"first:b", "second:b"}, order)
}

func TestVariableValueStartsWithCurrent(t *testing.T) {
	v := NewVariable(true)
	var seen []bool
	v.Value(nil, func(b bool) { seen = append(seen, b) })
	v.Set(false)

	assert.Equal(t, []bool{true, false}, seen)
}

func TestVariableLifetimeUnsubscribes(t *testing.T) {
	v := NewVariable(0)
	var lt Lifetime
	calls := 0
	v.Changes(&lt, func(int) { calls++ })
	v.Changes(&lt, func(int) { calls++ })
	require.Equal(t, 2, v.Subscribers())

	v.Set(1)
	assert.Equal(t, 2, calls)

	lt.Destroy()
	assert.Zero(t, v.Subscribers())

	v.Set(2)
	assert.Equal(t, 2, calls, "destroyed lifetime must stop notifications")
}

func TestVariableUnsubscribeDuringNotify(t *testing.T) {
	v := NewVariable(0)
	var lt Lifetime
	calls := 0
	v.Changes(nil, func(int) { lt.Destroy() })
	v.Changes(&lt, func(int) { calls++ })

	v.Set(1)
	v.Set(2)

	// The snapshot taken for the first Set still includes the second subscriber.
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, v.Subscribers())
}

func TestVariableObserveStream(t *testing.T) {
	v := NewVariable(10)
	stream := v.Observe()
	require.Equal(t, 10, stream.Value())

	v.Set(15)

	select {
	case <-stream.Changes():
	default:
		t.Fatal("expected stream to report a change")
	}
	assert.Equal(t, 15, stream.Next())
	assert.False(t, stream.HasNext())
}

func TestVariableObserveIgnoresEqualSet(t *testing.T) {
	v := NewVariable("x")
	stream := v.Observe()

	v.Set("x")

	assert.False(t, stream.HasNext())
}
