package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Records  *RecordHandler
	Listings *ListingHandler
	Rewards  *RewardHandler
	Token    *TokenHandler
	Offchain *OffchainHandler
	Events   *EventHandler
}

// NewRouter builds the HTTP route table. All API routes live under /api/v1;
// health probes are mounted at the root for orchestrator probes.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/records", h.Records.Register)
	mux.HandleFunc("GET /api/v1/records", h.Records.Mine)
	mux.HandleFunc("GET /api/v1/records/accessible", h.Records.Accessible)
	mux.HandleFunc("GET /api/v1/records/{id}", h.Records.Get)
	mux.HandleFunc("POST /api/v1/records/{id}/grants", h.Records.Grant)
	mux.HandleFunc("DELETE /api/v1/records/{id}/grants/{address}", h.Records.Revoke)
	mux.HandleFunc("GET /api/v1/records/{id}/access/{address}", h.Records.CheckAccess)

	mux.HandleFunc("POST /api/v1/listings", h.Listings.Create)
	mux.HandleFunc("GET /api/v1/listings", h.Listings.List)
	mux.HandleFunc("GET /api/v1/listings/{id}", h.Listings.Get)
	mux.HandleFunc("POST /api/v1/listings/{id}/purchase", h.Listings.Purchase)

	mux.HandleFunc("GET /api/v1/rewards/status", h.Rewards.Status)
	mux.HandleFunc("POST /api/v1/rewards/claims", h.Rewards.Claim)

	mux.HandleFunc("GET /api/v1/token/balance", h.Token.Balance)
	mux.HandleFunc("GET /api/v1/token/allowance", h.Token.GetAllowance)
	mux.HandleFunc("POST /api/v1/token/transfers", h.Token.Transfer)
	mux.HandleFunc("POST /api/v1/token/approvals", h.Token.Approve)

	mux.HandleFunc("POST /api/v1/offchain/data", h.Offchain.Store)
	mux.HandleFunc("GET /api/v1/offchain/data/{hash}", h.Offchain.Fetch)

	mux.HandleFunc("GET /api/v1/events", h.Events.List)

	return mux
}
