package reward

import (
	"context"
	"sync"
	"time"

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

var _ rewardRepo = &rewardRepoMock{}

type rewardRepoMock struct {
	GetFunc          func(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error)
	GetForUpdateFunc func(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error)
	ApplyClaimFunc   func(ctx context.Context, owner domain.Address, steps, reward int64, at time.Time) error

	calls struct {
		Get []struct {
			Owner domain.Address
		}
		GetForUpdate []struct {
			Owner domain.Address
		}
		ApplyClaim []struct {
			Owner  domain.Address
			Steps  int64
			Reward int64
			At     time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *rewardRepoMock) Get(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error) {
	if mock.GetFunc == nil {
		panic("rewardRepoMock.GetFunc: method is nil but rewardRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct {
		Owner domain.Address
	}{Owner: owner})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, owner)
}

func (mock *rewardRepoMock) GetCalls() []struct {
	Owner domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *rewardRepoMock) GetForUpdate(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error) {
	if mock.GetForUpdateFunc == nil {
		panic("rewardRepoMock.GetForUpdateFunc: method is nil but rewardRepo.GetForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, struct {
		Owner domain.Address
	}{Owner: owner})
	mock.lock.Unlock()
	return mock.GetForUpdateFunc(ctx, owner)
}

func (mock *rewardRepoMock) GetForUpdateCalls() []struct {
	Owner domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetForUpdate
}

func (mock *rewardRepoMock) ApplyClaim(ctx context.Context, owner domain.Address, steps, reward int64, at time.Time) error {
	if mock.ApplyClaimFunc == nil {
		panic("rewardRepoMock.ApplyClaimFunc: method is nil but rewardRepo.ApplyClaim was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplyClaim = append(mock.calls.ApplyClaim, struct {
		Owner  domain.Address
		Steps  int64
		Reward int64
		At     time.Time
	}{Owner: owner, Steps: steps, Reward: reward, At: at})
	mock.lock.Unlock()
	return mock.ApplyClaimFunc(ctx, owner, steps, reward, at)
}

func (mock *rewardRepoMock) ApplyClaimCalls() []struct {
	Owner  domain.Address
	Steps  int64
	Reward int64
	At     time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplyClaim
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreditFunc func(ctx context.Context, account domain.Address, amount int64) error
	DebitFunc  func(ctx context.Context, account domain.Address, amount int64) (bool, error)

	calls struct {
		Credit []struct {
			Account domain.Address
			Amount  int64
		}
		Debit []struct {
			Account domain.Address
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
