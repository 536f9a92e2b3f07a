package wellquery

import (
	"context"

	"texasogwells-backend/lib/scrapers/rrc"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/wellquery")

// Service runs the portal emulation chain for one inbound request:
// acquire a session, submit the query on it, extract the markup. No
// state survives a request, every call re-runs the full chain.
type Service struct {
	client *rrc.Client
}

func NewService(client *rrc.Client) Service {
	return Service{client: client}
}

type SearchResult struct {
	Query  string            `json:"query"`
	Count  int               `json:"count"`
	Leases []rrc.LeaseRecord `json:"leases"`
}

func (s Service) Search(ctx context.Context, query rrc.LeaseQuery) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "service:Search")
	defer span.End()

	session, err := s.client.AcquireSession(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "session acquisition failed")
		return SearchResult{}, err
	}

	leases, err := s.client.SearchLeases(ctx, session, query)
	if err != nil {
		span.SetStatus(codes.Error, "lease search failed")
		return SearchResult{}, err
	}
	if leases == nil {
		leases = []rrc.LeaseRecord{}
	}

	return SearchResult{
		Query:  query.Name,
		Count:  len(leases),
		Leases: leases,
	}, nil
}

type ProductionResult struct {
	Lease    string                 `json:"lease"`
	District string                 `json:"district"`
	Type     rrc.WellType           `json:"type"`
	Count    int                    `json:"count"`
	Data     []rrc.ProductionRecord `json:"data"`
}

func (s Service) Production(ctx context.Context, query rrc.ProductionQuery) (ProductionResult, error) {
	ctx, span := tracer.Start(ctx, "service:Production")
	defer span.End()

	session, err := s.client.AcquireSession(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "session acquisition failed")
		return ProductionResult{}, err
	}

	records, err := s.client.Production(ctx, session, query)
	if err != nil {
		span.SetStatus(codes.Error, "production query failed")
		return ProductionResult{}, err
	}
	if records == nil {
		records = []rrc.ProductionRecord{}
	}

	return ProductionResult{
		Lease:    query.Lease,
		District: query.District,
		Type:     query.WellType,
		Count:    len(records),
		Data:     records,
	}, nil
}
