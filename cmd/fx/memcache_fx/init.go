package memcache_fx

import (
	mem "cinevault/pkg/memcache"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideResetTokenStore)

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
