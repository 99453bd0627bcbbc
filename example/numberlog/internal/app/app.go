// Package app is the composition root of the demo. It owns the single
// Messenger and hands it to every view model.
package app

import (
	"log/slog"

	messenger "github.com/jonoton/go-messenger"
	"github.com/jonoton/go-messenger/example/numberlog/internal/config"
	"github.com/jonoton/go-messenger/example/numberlog/internal/viewmodel"
	"github.com/samber/do/v2"
)

// App holds the long-lived pieces of the demo.
type App struct {
	Injector  *do.RootScope
	Messenger *messenger.Messenger
	Log       *viewmodel.ChangeLog
	Status    *viewmodel.Status
}

// New wires the demo's services.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.Provide(i, newMessenger)
	do.Provide(i, newNumber)
	do.Provide(i, newChangeLog)
	do.Provide(i, newStatus)

	m, err := do.Invoke[*messenger.Messenger](i)
	if err != nil {
		return nil, err
	}
	log, err := do.Invoke[*viewmodel.ChangeLog](i)
	if err != nil {
		return nil, err
	}
	status, err := do.Invoke[*viewmodel.Status](i)
	if err != nil {
		return nil, err
	}

	logger.Debug("app wired", "verify", m.Verifying(), "start", cfg.Start)
	return &App{Injector: i, Messenger: m, Log: log, Status: status}, nil
}

// Number is the number the change log observes.
func (a *App) Number() *viewmodel.Number {
	return a.Log.Number()
}

// Shutdown releases the container.
func (a *App) Shutdown() {
	a.Injector.Shutdown()
}

func newMessenger(i do.Injector) (*messenger.Messenger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	logger := do.MustInvoke[*slog.Logger](i)
	return messenger.New(
		messenger.WithLogger(logger),
		messenger.WithVerification(cfg.Verify),
	), nil
}

func newNumber(i do.Injector) (*viewmodel.Number, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return viewmodel.NewNumber(do.MustInvoke[*messenger.Messenger](i), cfg.Start), nil
}

func newChangeLog(i do.Injector) (*viewmodel.ChangeLog, error) {
	return viewmodel.NewChangeLog(
		do.MustInvoke[*messenger.Messenger](i),
		do.MustInvoke[*viewmodel.Number](i),
	)
}

func newStatus(i do.Injector) (*viewmodel.Status, error) {
	return viewmodel.NewStatus(do.MustInvoke[*messenger.Messenger](i), "status")
}
