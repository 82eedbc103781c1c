package rest

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/offchain"
	"github.com/healthchain/healthchain-backend/internal/service/reward"
)

var _ rewardService = &rewardServiceMock{}

type rewardServiceMock struct {
	CanClaimFunc    func(ctx context.Context, owner domain.Address) (*reward.ClaimStatus, error)
	ClaimRewardFunc func(ctx context.Context, caller domain.Address, id domain.RecordID, steps int64) (*reward.ClaimResult, error)

	calls struct {
		ClaimReward []struct {
			Caller domain.Address
			ID     domain.RecordID
			Steps  int64
		}
	}
	lock sync.RWMutex
}

func (mock *rewardServiceMock) CanClaim(ctx context.Context, owner domain.Address) (*reward.ClaimStatus, error) {
	if mock.CanClaimFunc == nil {
		panic("rewardServiceMock.CanClaimFunc: method is nil but rewardService.CanClaim was just called")
	}
	return mock.CanClaimFunc(ctx, owner)
}

func (mock *rewardServiceMock) ClaimReward(ctx context.Context, caller domain.Address, id domain.RecordID, steps int64) (*reward.ClaimResult, error) {
	if mock.ClaimRewardFunc == nil {
		panic("rewardServiceMock.ClaimRewardFunc: method is nil but rewardService.ClaimReward was just called")
	}
	mock.lock.Lock()
	mock.calls.ClaimReward = append(mock.calls.ClaimReward, struct {
		Caller domain.Address
		ID     domain.RecordID
		Steps  int64
	}{Caller: caller, ID: id, Steps: steps})
	mock.lock.Unlock()
	return mock.ClaimRewardFunc(ctx, caller, id, steps)
}

func (mock *rewardServiceMock) ClaimRewardCalls() []struct {
	Caller domain.Address
	ID     domain.RecordID
	Steps  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ClaimReward
}

var _ tokenService = &tokenServiceMock{}

type tokenServiceMock struct {
	BalanceOfFunc    func(ctx context.Context, account domain.Address) (int64, error)
	AllowanceFunc    func(ctx context.Context, owner, spender domain.Address) (int64, error)
	TransferFunc     func(ctx context.Context, from, to domain.Address, amount int64) error
	TransferFromFunc func(ctx context.Context, spender, from, to domain.Address, amount int64) error
	ApproveFunc      func(ctx context.Context, owner, spender domain.Address, amount int64) error

	calls struct {
		Transfer []struct {
			From   domain.Address
			To     domain.Address
			Amount int64
		}
		TransferFrom []struct {
			Spender domain.Address
			From    domain.Address
			To      domain.Address
			Amount  int64
		}
	}
	lock sync.RWMutex
}

func (mock *tokenServiceMock) BalanceOf(ctx context.Context, account domain.Address) (int64, error) {
	if mock.BalanceOfFunc == nil {
		panic("tokenServiceMock.BalanceOfFunc: method is nil but tokenService.BalanceOf was just called")
	}
	return mock.BalanceOfFunc(ctx, account)
}

func (mock *tokenServiceMock) Allowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	if mock.AllowanceFunc == nil {
		panic("tokenServiceMock.AllowanceFunc: method is nil but tokenService.Allowance was just called")
	}
	return mock.AllowanceFunc(ctx, owner, spender)
}

func (mock *tokenServiceMock) Transfer(ctx context.Context, from, to domain.Address, amount int64) error {
	if mock.TransferFunc == nil {
		panic("tokenServiceMock.TransferFunc: method is nil but tokenService.Transfer was just called")
	}
	mock.lock.Lock()
	mock.calls.Transfer = append(mock.calls.Transfer, struct {
		From   domain.Address
		To     domain.Address
		Amount int64
	}{From: from, To: to, Amount: amount})
	mock.lock.Unlock()
	return mock.TransferFunc(ctx, from, to, amount)
}

func (mock *tokenServiceMock) TransferCalls() []struct {
	From   domain.Address
	To     domain.Address
	Amount int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Transfer
}

func (mock *tokenServiceMock) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount int64) error {
	if mock.TransferFromFunc == nil {
		panic("tokenServiceMock.TransferFromFunc: method is nil but tokenService.TransferFrom was just called")
	}
	mock.lock.Lock()
	mock.calls.TransferFrom = append(mock.calls.TransferFrom, struct {
		Spender domain.Address
		From    domain.Address
		To      domain.Address
		Amount  int64
	}{Spender: spender, From: from, To: to, Amount: amount})
	mock.lock.Unlock()
	return mock.TransferFromFunc(ctx, spender, from, to, amount)
}

func (mock *tokenServiceMock) TransferFromCalls() []struct {
	Spender domain.Address
	From    domain.Address
	To      domain.Address
	Amount  int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.TransferFrom
}

func (mock *tokenServiceMock) Approve(ctx context.Context, owner, spender domain.Address, amount int64) error {
	if mock.ApproveFunc == nil {
		panic("tokenServiceMock.ApproveFunc: method is nil but tokenService.Approve was just called")
	}
	return mock.ApproveFunc(ctx, owner, spender, amount)
}

var _ offchainService = &offchainServiceMock{}

type offchainServiceMock struct {
	StoreFunc func(ctx context.Context, owner domain.Address, category string, payload []byte, metadata map[string]string) (*offchain.StoreResult, error)
	FetchFunc func(ctx context.Context, hash domain.ContentHash, caller domain.Address) (*offchain.Blob, error)
}

func (mock *offchainServiceMock) Store(ctx context.Context, owner domain.Address, category string, payload []byte, metadata map[string]string) (*offchain.StoreResult, error) {
	if mock.StoreFunc == nil {
		panic("offchainServiceMock.StoreFunc: method is nil but offchainService.Store was just called")
	}
	return mock.StoreFunc(ctx, owner, category, payload, metadata)
}

func (mock *offchainServiceMock) Fetch(ctx context.Context, hash domain.ContentHash, caller domain.Address) (*offchain.Blob, error) {
	if mock.FetchFunc == nil {
		panic("offchainServiceMock.FetchFunc: method is nil but offchainService.Fetch was just called")
	}
	return mock.FetchFunc(ctx, hash, caller)
}

var _ eventLister = &eventListerMock{}

type eventListerMock struct {
	ListFunc func(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
}

func (mock *eventListerMock) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventListerMock.ListFunc: method is nil but eventLister.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}
