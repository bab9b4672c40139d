package actions

import (
	"context"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/chainrent/chainrent/internal/domain"
)

// SiteSummary aggregates the headline figures for the marketing key-metrics
// section and the admin dashboard.
type SiteSummary struct {
	Products     int64 `json:"products"`
	Clients      int64 `json:"clients"`
	Testimonials int64 `json:"testimonials"`
	Contacts     int64 `json:"contacts"`

	AverageApy     float64 `json:"average_apy"`
	TotalInvestors int64   `json:"total_investors"`
	AverageRoi     float64 `json:"average_roi"`
	TotalEarnings  float64 `json:"total_earnings"`
}

// SummaryActions derives cross-entity aggregates from the four collections.
type SummaryActions struct {
	products     *ProductActions
	clients      *ClientActions
	testimonials *TestimonialActions
	contacts     *ContactActions
}

func NewSummaryActions(p *ProductActions, c *ClientActions, t *TestimonialActions, ct *ContactActions) *SummaryActions {
	return &SummaryActions{products: p, clients: c, testimonials: t, contacts: ct}
}

// Site fetches the four collections concurrently and aggregates them. Any
// fetch failure fails the whole summary; the per-section public endpoints
// remain independent.
func (a *SummaryActions) Site(ctx context.Context) (*SiteSummary, error) {
	var (
		products     []domain.Product
		clients      []domain.Client
		testimonials int64
		contacts     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, _, err := a.products.List(gctx, 0)
		products = rows
		return err
	})
	g.Go(func() error {
		rows, _, err := a.clients.List(gctx, 0)
		clients = rows
		return err
	})
	g.Go(func() error {
		_, total, err := a.testimonials.List(gctx, 1)
		testimonials = total
		return err
	})
	g.Go(func() error {
		_, total, err := a.contacts.List(gctx, 1)
		contacts = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &SiteSummary{
		Products:     int64(len(products)),
		Clients:      int64(len(clients)),
		Testimonials: testimonials,
		Contacts:     contacts,
	}

	apys := make([]float64, 0, len(products))
	for _, p := range products {
		apys = append(apys, p.Apy)
		summary.TotalInvestors += p.Investors
	}
	if len(apys) > 0 {
		if mean, err := stats.Mean(apys); err == nil {
			summary.AverageApy = mean
		}
	}

	rois := make([]float64, 0, len(clients))
	for _, c := range clients {
		rois = append(rois, c.Roi())
		summary.TotalEarnings += c.Earnings
	}
	if len(rois) > 0 {
		if mean, err := stats.Mean(rois); err == nil {
			summary.AverageRoi = mean
		}
	}

	return summary, nil
}
