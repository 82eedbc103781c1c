package rest

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/service/registry"
)

var _ registryService = &registryServiceMock{}

type registryServiceMock struct {
	RegisterFunc              func(ctx context.Context, owner domain.Address, input registry.RegisterInput) (*domain.Record, error)
	GetRecordFunc             func(ctx context.Context, id domain.RecordID) (*domain.Record, error)
	ListRecordsByOwnerFunc    func(ctx context.Context, owner domain.Address) ([]*domain.Record, error)
	ListAccessibleRecordsFunc func(ctx context.Context, account domain.Address) ([]*domain.Record, error)
	GrantAccessFunc           func(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error
	RevokeAccessFunc          func(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error
	CanAccessFunc             func(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error)

	calls struct {
		Register []struct {
			Owner domain.Address
			Input registry.RegisterInput
		}
		GrantAccess []struct {
			Caller  domain.Address
			ID      domain.RecordID
			Grantee domain.Address
		}
		RevokeAccess []struct {
			Caller  domain.Address
			ID      domain.RecordID
			Grantee domain.Address
		}
	}
	lock sync.RWMutex
}

func (mock *registryServiceMock) Register(ctx context.Context, owner domain.Address, input registry.RegisterInput) (*domain.Record, error) {
	if mock.RegisterFunc == nil {
		panic("registryServiceMock.RegisterFunc: method is nil but registryService.Register was just called")
	}
	mock.lock.Lock()
	mock.calls.Register = append(mock.calls.Register, struct {
		Owner domain.Address
		Input registry.RegisterInput
	}{Owner: owner, Input: input})
	mock.lock.Unlock()
	return mock.RegisterFunc(ctx, owner, input)
}

func (mock *registryServiceMock) RegisterCalls() []struct {
	Owner domain.Address
	Input registry.RegisterInput
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Register
}

func (mock *registryServiceMock) GetRecord(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	if mock.GetRecordFunc == nil {
		panic("registryServiceMock.GetRecordFunc: method is nil but registryService.GetRecord was just called")
	}
	return mock.GetRecordFunc(ctx, id)
}

func (mock *registryServiceMock) ListRecordsByOwner(ctx context.Context, owner domain.Address) ([]*domain.Record, error) {
	if mock.ListRecordsByOwnerFunc == nil {
		panic("registryServiceMock.ListRecordsByOwnerFunc: method is nil but registryService.ListRecordsByOwner was just called")
	}
	return mock.ListRecordsByOwnerFunc(ctx, owner)
}

func (mock *registryServiceMock) ListAccessibleRecords(ctx context.Context, account domain.Address) ([]*domain.Record, error) {
	if mock.ListAccessibleRecordsFunc == nil {
		panic("registryServiceMock.ListAccessibleRecordsFunc: method is nil but registryService.ListAccessibleRecords was just called")
	}
	return mock.ListAccessibleRecordsFunc(ctx, account)
}

func (mock *registryServiceMock) GrantAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error {
	if mock.GrantAccessFunc == nil {
		panic("registryServiceMock.GrantAccessFunc: method is nil but registryService.GrantAccess was just called")
	}
	mock.lock.Lock()
	mock.calls.GrantAccess = append(mock.calls.GrantAccess, struct {
		Caller  domain.Address
		ID      domain.RecordID
		Grantee domain.Address
	}{Caller: caller, ID: id, Grantee: grantee})
	mock.lock.Unlock()
	return mock.GrantAccessFunc(ctx, caller, id, grantee)
}

func (mock *registryServiceMock) GrantAccessCalls() []struct {
	Caller  domain.Address
	ID      domain.RecordID
	Grantee domain.Address
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GrantAccess
}

func (mock *registryServiceMock) RevokeAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error {
	if mock.RevokeAccessFunc == nil {
		panic("registryServiceMock.RevokeAccessFunc: method is nil but registryService.RevokeAccess was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAccess = append(mock.calls.RevokeAccess, struct {
		Caller  domain.Address
		ID      domain.RecordID
		Grantee domain.Address
	}{Caller: caller, ID: id, Grantee: grantee})
	mock.lock.Unlock()
	return mock.RevokeAccessFunc(ctx, caller, id, grantee)
}

func (mock *registryServiceMock) CanAccess(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error) {
	if mock.CanAccessFunc == nil {
		panic("registryServiceMock.CanAccessFunc: method is nil but registryService.CanAccess was just called")
	}
	return mock.CanAccessFunc(ctx, id, account)
}
