package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGoPanics(t *testing.T) {
	res := []string{}
	ended := make(chan struct{})

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run")
			panic("refund loop")
		},
		WithName("test"),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered", p.(string))
		}),
		WithAfterEnded(func() {
			close(ended)
		}),
	)
	<-ended

	assert.Equal(t, []string{"run", "after recovered", "refund loop"}, res)
	if assert.NotNil(t, ev) {
		assert.Equal(t, "refund loop", ev.Panic)
		assert.NotEmpty(t, ev.Stack)
	}
}

func TestRecoverableGoReturns(t *testing.T) {
	recovered := false
	ended := make(chan struct{})
	ch := RecoverableGo(func() {},
		WithAfterRecovered(func(interface{}, []byte) {
			recovered = true
		}),
		WithAfterEnded(func() {
			close(ended)
		}),
	)

	ev, ok := <-ch
	<-ended
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.False(t, recovered)
}
