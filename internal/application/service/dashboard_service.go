package service

import (
	"context"
	"math"
	"time"

	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/pagination"
)

// DashboardService derives dashboard metrics by reducing over the full
// result sets the repositories return. It performs no queries of its own
// beyond the list operations; every refresh recomputes from scratch.
type DashboardService struct {
	companyRepo  repository.CompanyRepository
	contactRepo  repository.ContactRepository
	leadRepo     repository.LeadRepository
	followUpRepo repository.FollowUpRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	companyRepo repository.CompanyRepository,
	contactRepo repository.ContactRepository,
	leadRepo repository.LeadRepository,
	followUpRepo repository.FollowUpRepository,
) *DashboardService {
	return &DashboardService{
		companyRepo:  companyRepo,
		contactRepo:  contactRepo,
		leadRepo:     leadRepo,
		followUpRepo: followUpRepo,
	}
}

// DashboardMetrics represents the dashboard summary figures
type DashboardMetrics struct {
	TotalCompanies     int     `json:"totalCompanies"`
	TotalContacts      int     `json:"totalContacts"`
	TotalLeads         int     `json:"totalLeads"`
	ActiveLeads        int     `json:"activeLeads"`
	TotalValue         float64 `json:"totalValue"`
	ConversionRate     int     `json:"conversionRate"`
	PendingFollowUps   int     `json:"pendingFollowUps"`
	OverdueFollowUps   int     `json:"overdueFollowUps"`
	CompletedThisMonth int     `json:"completedThisMonth"`
}

// metricsPage returns the list parameters for one page of the full walk.
// The walk stops on the first page shorter than the limit, so counts stay
// correct past pagination.MaxLimit rows.
func metricsPage(offset int) pagination.ListParams {
	return pagination.ListParams{Limit: pagination.MaxLimit, Offset: offset}
}

// GetMetrics computes the dashboard metrics in a single pass over each
// entity list, paging through the repositories until they run dry.
func (s *DashboardService) GetMetrics(ctx context.Context) (*DashboardMetrics, error) {
	metrics := &DashboardMetrics{}

	for offset := 0; ; offset += pagination.MaxLimit {
		companies, err := s.companyRepo.List(ctx, &repository.CompanyFilter{ListParams: metricsPage(offset)})
		if err != nil {
			return nil, err
		}
		metrics.TotalCompanies += len(companies)
		if len(companies) < pagination.MaxLimit {
			break
		}
	}

	for offset := 0; ; offset += pagination.MaxLimit {
		contacts, err := s.contactRepo.List(ctx, &repository.ContactFilter{ListParams: metricsPage(offset)})
		if err != nil {
			return nil, err
		}
		metrics.TotalContacts += len(contacts)
		if len(contacts) < pagination.MaxLimit {
			break
		}
	}

	var won int
	for offset := 0; ; offset += pagination.MaxLimit {
		leads, err := s.leadRepo.List(ctx, &repository.LeadFilter{ListParams: metricsPage(offset)})
		if err != nil {
			return nil, err
		}
		metrics.TotalLeads += len(leads)
		for _, lead := range leads {
			if lead.Status == enum.LeadStatusActive {
				metrics.ActiveLeads++
			}
			if lead.Status == enum.LeadStatusWon {
				won++
			}
			if lead.Value != nil {
				metrics.TotalValue += *lead.Value
			}
		}
		if len(leads) < pagination.MaxLimit {
			break
		}
	}
	// Defined as 0 when there are no leads, avoiding a division by zero.
	if metrics.TotalLeads > 0 {
		metrics.ConversionRate = int(math.Round(float64(won) / float64(metrics.TotalLeads) * 100))
	}

	todayStr := today()
	now := time.Now()
	for offset := 0; ; offset += pagination.MaxLimit {
		followUps, err := s.followUpRepo.List(ctx, &repository.FollowUpFilter{ListParams: metricsPage(offset)})
		if err != nil {
			return nil, err
		}
		for _, followUp := range followUps {
			if followUp.Status == enum.FollowUpStatusPending {
				metrics.PendingFollowUps++
			}
			if followUp.IsOverdue(todayStr) {
				metrics.OverdueFollowUps++
			}
			if followUp.Status == enum.FollowUpStatusCompleted && followUp.CompletedAt != nil &&
				followUp.CompletedAt.Year() == now.Year() && followUp.CompletedAt.Month() == now.Month() {
				metrics.CompletedThisMonth++
			}
		}
		if len(followUps) < pagination.MaxLimit {
			break
		}
	}

	return metrics, nil
}
