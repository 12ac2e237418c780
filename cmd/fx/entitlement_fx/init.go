package entitlement_fx

import (
	"cinevault/internal/repositories"
	"cinevault/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideEntitlementService)

func provideEntitlementService(accountRepo repositories.AccountRepository, mailService services.IMailService) services.EntitlementServiceInterface {
	return services.NewEntitlementService(accountRepo, mailService)
}
