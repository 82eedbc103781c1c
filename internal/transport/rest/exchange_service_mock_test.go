package rest

import (
	"context"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

var _ exchangeService = &exchangeServiceMock{}

type exchangeServiceMock struct {
	CreateListingFunc func(ctx context.Context, caller domain.Address, id domain.RecordID, price int64) (*domain.Listing, error)
	GetListingFunc    func(ctx context.Context, id int64) (*domain.Listing, error)
	ListListingsFunc  func(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	BuyAccessFunc     func(ctx context.Context, buyer domain.Address, listingID int64) error

	calls struct {
		BuyAccess []struct {
			Buyer     domain.Address
			ListingID int64
		}
	}
	lock sync.RWMutex
}

func (mock *exchangeServiceMock) CreateListing(ctx context.Context, caller domain.Address, id domain.RecordID, price int64) (*domain.Listing, error) {
	if mock.CreateListingFunc == nil {
		panic("exchangeServiceMock.CreateListingFunc: method is nil but exchangeService.CreateListing was just called")
	}
	return mock.CreateListingFunc(ctx, caller, id, price)
}

func (mock *exchangeServiceMock) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	if mock.GetListingFunc == nil {
		panic("exchangeServiceMock.GetListingFunc: method is nil but exchangeService.GetListing was just called")
	}
	return mock.GetListingFunc(ctx, id)
}

func (mock *exchangeServiceMock) ListListings(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	if mock.ListListingsFunc == nil {
		panic("exchangeServiceMock.ListListingsFunc: method is nil but exchangeService.ListListings was just called")
	}
	return mock.ListListingsFunc(ctx, filter)
}

func (mock *exchangeServiceMock) BuyAccess(ctx context.Context, buyer domain.Address, listingID int64) error {
	if mock.BuyAccessFunc == nil {
		panic("exchangeServiceMock.BuyAccessFunc: method is nil but exchangeService.BuyAccess was just called")
	}
	mock.lock.Lock()
	mock.calls.BuyAccess = append(mock.calls.BuyAccess, struct {
		Buyer     domain.Address
		ListingID int64
	}{Buyer: buyer, ListingID: listingID})
	mock.lock.Unlock()
	return mock.BuyAccessFunc(ctx, buyer, listingID)
}

func (mock *exchangeServiceMock) BuyAccessCalls() []struct {
	Buyer     domain.Address
	ListingID int64
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BuyAccess
}
