package service

import (
	"context"
	"testing"
	"time"

	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/codigofacil/crm-api/internal/domain/enum"
	"github.com/codigofacil/crm-api/internal/domain/repository"
	"github.com/codigofacil/crm-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func newDashboardService(companies []entity.Company, contacts []entity.Contact, leads []entity.Lead, followUps []entity.FollowUp) *DashboardService {
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("List", mock.Anything, mock.Anything).Return(companies, nil)
	contactRepo := new(MockContactRepository)
	contactRepo.On("List", mock.Anything, mock.Anything).Return(contacts, nil)
	leadRepo := new(MockLeadRepository)
	leadRepo.On("List", mock.Anything, mock.Anything).Return(leads, nil)
	followUpRepo := new(MockFollowUpRepository)
	followUpRepo.On("List", mock.Anything, mock.Anything).Return(followUps, nil)
	return NewDashboardService(companyRepo, contactRepo, leadRepo, followUpRepo)
}

func TestGetMetricsEmptyDatabase(t *testing.T) {
	svc := newDashboardService(nil, nil, nil, nil)

	metrics, err := svc.GetMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, metrics.TotalCompanies)
	assert.Equal(t, 0, metrics.TotalLeads)
	assert.Equal(t, 0.0, metrics.TotalValue)
	// No leads means a conversion rate of zero, not a division by zero.
	assert.Equal(t, 0, metrics.ConversionRate)
}

func TestGetMetricsAggregatesLeads(t *testing.T) {
	leads := []entity.Lead{
		{Title: "A", Status: enum.LeadStatusActive, Value: floatPtr(1000)},
		{Title: "B", Status: enum.LeadStatusWon, Value: floatPtr(3500)},
		{Title: "C", Status: enum.LeadStatusLost},
	}
	svc := newDashboardService(
		[]entity.Company{{Name: "Acme"}},
		[]entity.Contact{{FirstName: "Maria"}, {FirstName: "Ana"}},
		leads,
		nil,
	)

	metrics, err := svc.GetMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.TotalCompanies)
	assert.Equal(t, 2, metrics.TotalContacts)
	assert.Equal(t, 3, metrics.TotalLeads)
	assert.Equal(t, 1, metrics.ActiveLeads)
	assert.Equal(t, 4500.0, metrics.TotalValue)
	// 1 won out of 3 leads, rounded.
	assert.Equal(t, 33, metrics.ConversionRate)
}

func TestGetMetricsCountsBeyondOnePage(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("List", mock.Anything, mock.MatchedBy(func(f *repository.CompanyFilter) bool {
		return f.Offset == 0
	})).Return(make([]entity.Company, pagination.MaxLimit), nil).Once()
	companyRepo.On("List", mock.Anything, mock.MatchedBy(func(f *repository.CompanyFilter) bool {
		return f.Offset == pagination.MaxLimit
	})).Return([]entity.Company{{Name: "Pura Vida Tours"}}, nil).Once()

	contactRepo := new(MockContactRepository)
	contactRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	leadRepo := new(MockLeadRepository)
	leadRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	followUpRepo := new(MockFollowUpRepository)
	followUpRepo.On("List", mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewDashboardService(companyRepo, contactRepo, leadRepo, followUpRepo)

	metrics, err := svc.GetMetrics(context.Background())

	assert.NoError(t, err)
	// A full first page must trigger a second fetch rather than stopping
	// the count at the page size.
	assert.Equal(t, pagination.MaxLimit+1, metrics.TotalCompanies)
	companyRepo.AssertExpectations(t)
}

func TestGetMetricsFollowUpCounters(t *testing.T) {
	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)
	todayStr := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	followUps := []entity.FollowUp{
		{Title: "due tomorrow", Status: enum.FollowUpStatusPending, DueDate: tomorrow},
		{Title: "due today", Status: enum.FollowUpStatusPending, DueDate: todayStr},
		{Title: "slipped", Status: enum.FollowUpStatusPending, DueDate: yesterday},
		{Title: "done now", Status: enum.FollowUpStatusCompleted, DueDate: yesterday, CompletedAt: &now},
		{Title: "done long ago", Status: enum.FollowUpStatusCompleted, DueDate: yesterday, CompletedAt: &lastYear},
		{Title: "dropped", Status: enum.FollowUpStatusCancelled, DueDate: yesterday},
	}
	svc := newDashboardService(nil, nil, nil, followUps)

	metrics, err := svc.GetMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, metrics.PendingFollowUps)
	// Due today counts as overdue; due tomorrow does not.
	assert.Equal(t, 2, metrics.OverdueFollowUps)
	assert.Equal(t, 1, metrics.CompletedThisMonth)
}
