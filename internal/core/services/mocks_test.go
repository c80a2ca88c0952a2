package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChartRepository ---
type MockChartRepository struct {
	mock.Mock
}

var _ portsrepo.ChartRepositoryFacade = (*MockChartRepository)(nil)

func (m *MockChartRepository) LoadChartForest(ctx context.Context, system string) (*domain.ChartNode, error) {
	args := m.Called(ctx, system)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartNode), args.Error(1)
}

func (m *MockChartRepository) ListChartSystems(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock AccountBookRepository ---
type MockAccountBookRepository struct {
	mock.Mock
}

var _ portsrepo.AccountBookRepositoryFacade = (*MockAccountBookRepository)(nil)

func (m *MockAccountBookRepository) ListAccountBookNodes(ctx context.Context, companyID string) ([]domain.AccountBookNode, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBookNode), args.Error(1)
}

func (m *MockAccountBookRepository) ListLedgerLineItems(ctx context.Context, companyID string, until time.Time) ([]domain.LedgerLineItem, error) {
	args := m.Called(ctx, companyID, until)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLineItem), args.Error(1)
}

func (m *MockAccountBookRepository) FindAccountBookNodesByIDs(ctx context.Context, companyID string, ids []string) (map[string]domain.AccountBookNode, error) {
	args := m.Called(ctx, companyID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountBookNode), args.Error(1)
}

func (m *MockAccountBookRepository) CountAccountBookNodes(ctx context.Context, companyID string) (int, error) {
	args := m.Called(ctx, companyID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountBookRepository) SaveAccountBookNodes(ctx context.Context, nodes []domain.AccountBookNode) error {
	args := m.Called(ctx, nodes)
	return args.Error(0)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, companyID, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}
