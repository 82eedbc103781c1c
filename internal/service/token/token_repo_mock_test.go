package token

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	BalanceFunc          func(ctx context.Context, account domain.Address) (int64, error)
	CreditFunc           func(ctx context.Context, account domain.Address, amount int64) error
	DebitFunc            func(ctx context.Context, account domain.Address, amount int64) (bool, error)
	AllowanceFunc        func(ctx context.Context, owner, spender domain.Address) (int64, error)
	SetAllowanceFunc     func(ctx context.Context, owner, spender domain.Address, amount int64) error
	ConsumeAllowanceFunc func(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error)

	calls struct {
		Balance []struct {
			Account domain.Address
		}
		Credit []struct {
			Account domain.Address
			Amount  int64
		}
		Debit []struct {
			Account domain.Address
			Amount  int64
		}
		Allowance []struct {
			Owner   domain.Address
			Spender domain.Address
		}
		SetAllowance []struct {
			Owner   domain.Address
			Spender domain.Address
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

func (mock *tokenRepoMock) Balance(ctx context.Context, account domain.Address) (int64, error) {
	if mock.BalanceFunc == nil {
		panic("tokenRepoMock.BalanceFunc: method is nil but tokenRepo.Balance was just called")
	}
	mock.lock.Lock()
	mock.calls.Balance = append(mock.calls.Balance, struct {
		Account domain.Address
	}{Account: account})
	mock.lock.Unlock()
	return mock.BalanceFunc(ctx, account)
}

func (mock *tokenRepoMock) BalanceCalls() []struct {
	Account domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Balance
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

func (mock *tokenRepoMock) Allowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	if mock.AllowanceFunc == nil {
		panic("tokenRepoMock.AllowanceFunc: method is nil but tokenRepo.Allowance was just called")
	}
	mock.lock.Lock()
	mock.calls.Allowance = append(mock.calls.Allowance, struct {
		Owner   domain.Address
		Spender domain.Address
	}{Owner: owner, Spender: spender})
	mock.lock.Unlock()
	return mock.AllowanceFunc(ctx, owner, spender)
}

func (mock *tokenRepoMock) AllowanceCalls() []struct {
	Owner   domain.Address
	Spender domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Allowance
}

func (mock *tokenRepoMock) SetAllowance(ctx context.Context, owner, spender domain.Address, amount int64) error {
	if mock.SetAllowanceFunc == nil {
		panic("tokenRepoMock.SetAllowanceFunc: method is nil but tokenRepo.SetAllowance was just called")
	}
	mock.lock.Lock()
	mock.calls.SetAllowance = append(mock.calls.SetAllowance, struct {
		Owner   domain.Address
		Spender domain.Address
		Amount  int64
	}{Owner: owner, Spender: spender, Amount: amount})
	mock.lock.Unlock()
	return mock.SetAllowanceFunc(ctx, owner, spender, amount)
}

func (mock *tokenRepoMock) SetAllowanceCalls() []struct {
	Owner   domain.Address
	Spender domain.Address
	Amount  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetAllowance
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
