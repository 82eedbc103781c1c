package exchange

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	GetByIDFunc func(ctx context.Context, id domain.RecordID) (*domain.Record, error)

	calls struct {
		GetByID []struct {
			ID domain.RecordID
		}
	}
	lock sync.RWMutex
}

func (mock *recordRepoMock) GetByID(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	if mock.GetByIDFunc == nil {
		panic("recordRepoMock.GetByIDFunc: method is nil but recordRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID domain.RecordID
	}{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *recordRepoMock) GetByIDCalls() []struct {
	ID domain.RecordID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreditFunc           func(ctx context.Context, account domain.Address, amount int64) error
	DebitFunc            func(ctx context.Context, account domain.Address, amount int64) (bool, error)
	ConsumeAllowanceFunc func(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error)

	calls struct {
		Credit []struct {
			Account domain.Address
			Amount  int64
		}
		Debit []struct {
			Account domain.Address
			Amount  int64
		}
		ConsumeAllowance []struct {
			Owner   domain.Address
			Spender domain.Address
			Amount  int64
		}
	}
	lock sync.RWMutex
}

func (mock *tokenRepoMock) Credit(ctx context.Context, account domain.Address, amount int64) error {
	if mock.CreditFunc == nil {
		panic("tokenRepoMock.CreditFunc: method is nil but tokenRepo.Credit was just called")
	}
	mock.lock.Lock()
	mock.calls.Credit = append(mock.calls.Credit, struct {
		Account domain.Address
		Amount  int64
	}{Account: account, Amount: amount})
	mock.lock.Unlock()
	return mock.CreditFunc(ctx, account, amount)
}

func (mock *tokenRepoMock) CreditCalls() []struct {
	Account domain.Address
	Amount  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Credit
}

func (mock *tokenRepoMock) Debit(ctx context.Context, account domain.Address, amount int64) (bool, error) {
	if mock.DebitFunc == nil {
		panic("tokenRepoMock.DebitFunc: method is nil but tokenRepo.Debit was just called")
	}
	mock.lock.Lock()
	mock.calls.Debit = append(mock.calls.Debit, struct {
		Account domain.Address
		Amount  int64
	}{Account: account, Amount: amount})
	mock.lock.Unlock()
	return mock.DebitFunc(ctx, account, amount)
}

func (mock *tokenRepoMock) DebitCalls() []struct {
	Account domain.Address
	Amount  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Debit
}

func (mock *tokenRepoMock) ConsumeAllowance(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error) {
	if mock.ConsumeAllowanceFunc == nil {
		panic("tokenRepoMock.ConsumeAllowanceFunc: method is nil but tokenRepo.ConsumeAllowance was just called")
	}
	mock.lock.Lock()
	mock.calls.ConsumeAllowance = append(mock.calls.ConsumeAllowance, struct {
		Owner   domain.Address
		Spender domain.Address
		Amount  int64
	}{Owner: owner, Spender: spender, Amount: amount})
	mock.lock.Unlock()
	return mock.ConsumeAllowanceFunc(ctx, owner, spender, amount)
}

func (mock *tokenRepoMock) ConsumeAllowanceCalls() []struct {
	Owner   domain.Address
	Spender domain.Address
	Amount  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ConsumeAllowance
}

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

var _ accessGranter = &accessGranterMock{}

type accessGranterMock struct {
	AuthorizeExchangeGrantFunc func(ctx context.Context, id domain.RecordID, grantee domain.Address) error

	calls struct {
		AuthorizeExchangeGrant []struct {
			ID      domain.RecordID
			Grantee domain.Address
		}
	}
	lock sync.RWMutex
}

func (mock *accessGranterMock) AuthorizeExchangeGrant(ctx context.Context, id domain.RecordID, grantee domain.Address) error {
	if mock.AuthorizeExchangeGrantFunc == nil {
		panic("accessGranterMock.AuthorizeExchangeGrantFunc: method is nil but accessGranter.AuthorizeExchangeGrant was just called")
	}
	mock.lock.Lock()
	mock.calls.AuthorizeExchangeGrant = append(mock.calls.AuthorizeExchangeGrant, struct {
		ID      domain.RecordID
		Grantee domain.Address
	}{ID: id, Grantee: grantee})
	mock.lock.Unlock()
	return mock.AuthorizeExchangeGrantFunc(ctx, id, grantee)
}

func (mock *accessGranterMock) AuthorizeExchangeGrantCalls() []struct {
	ID      domain.RecordID
	Grantee domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.AuthorizeExchangeGrant
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
