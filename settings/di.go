package settings

import (
	"log/slog"

	"github.com/0xalexb/settingspy/config"
	"github.com/0xalexb/settingspy/module"

	"go.uber.org/fx"
)

// ModuleName is the name of the Fx module returned by NewModule.
const ModuleName = "settings"

type resolverParams struct {
	fx.In

	Bootstrap *config.Bootstrap
	Logger    *slog.Logger     `optional:"true"`
	Registry  *module.Registry `optional:"true"`
}

// NewModule creates an Fx module providing *Resolver.
// The resolver is built from the *config.Bootstrap in the container, after
// defaults are applied to a copy of it and it is validated; an invalid
// Bootstrap fails with a *config.ConfigurationError. A *slog.Logger and a
// *module.Registry are used when present. opts are applied after the
// bootstrap values and override them.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(opts ...Option) fx.Option {
	return fx.Module(ModuleName,
		fx.Provide(func(params resolverParams) (*Resolver, error) {
			boot := *params.Bootstrap
			boot.SetDefaults()

			if err := boot.Validate(); err != nil {
				return nil, config.NewConfigurationError("validate bootstrap", ModuleName, err)
			}

			resolverOpts := []Option{
				WithCatalogDir(boot.CatalogDir),
				WithModuleID(boot.SettingsModule),
				WithMode(boot.Mode()),
				WithLogger(params.Logger),
				WithRegistry(params.Registry),
			}

			return New(append(resolverOpts, opts...)...)
		}),
	)
}
