package services

import (
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
	"github.com/SscSPs/accountbook_service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Chart:       NewChartService(repos.ChartRepo, repos.AccountBookRepo, WithDefaultStrategy(cfg.SeedStrategy)),
		AccountBook: NewAccountBookService(repos.AccountBookRepo),
		Journal:     NewJournalService(repos.JournalRepo, repos.AccountBookRepo),
	}
}
