package registry

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	AppendFunc func(ctx context.Context, ev domain.Event) error

	calls struct {
		Append []struct {
			Ev domain.Event
		}
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) Append(ctx context.Context, ev domain.Event) error {
	if mock.AppendFunc == nil {
		panic("eventRepoMock.AppendFunc: method is nil but eventRepo.Append was just called")
	}
	mock.lock.Lock()
	mock.calls.Append = append(mock.calls.Append, struct {
		Ev domain.Event
	}{Ev: ev})
	mock.lock.Unlock()
	return mock.AppendFunc(ctx, ev)
}

func (mock *eventRepoMock) AppendCalls() []struct {
	Ev domain.Event
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Append
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, with no real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
