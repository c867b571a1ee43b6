package app

import (
	"time"

	"github.com/nfrund/studiosite/internal/config"
	"github.com/nfrund/studiosite/internal/contact"
	"github.com/nfrund/studiosite/internal/domain"
)

// ControllerFactory returns the constructor used by the registry to give
// each visitor a fresh contact controller.
func ControllerFactory(cfg config.Provider, deliverer domain.Deliverer) func() *contact.Controller {
	opts := []contact.Option{
		contact.WithVariant(domain.ParseVariant(cfg.GetContactVariant())),
		contact.WithCooldown(int(cfg.GetContactCooldown() / time.Second)),
		contact.WithStatusTTL(cfg.GetContactStatusTTL()),
	}
	return func() *contact.Controller {
		return contact.NewController(deliverer, opts...)
	}
}
