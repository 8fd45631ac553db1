package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/hospital_backend/config"
	"github.com/Alijeyrad/hospital_backend/internal/gateway"
	"github.com/Alijeyrad/hospital_backend/internal/notify"
	"github.com/Alijeyrad/hospital_backend/internal/store"
	"github.com/Alijeyrad/hospital_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideNotifier,
		ProvideAlerter,
		ProvideStore,
	),
)

// ProvideNotifier assembles the toast pipeline: every toast is logged and
// broadcast to dashboard clients over Redis pub/sub.
func ProvideNotifier(cfg *config.Config, rdb *redis.Client) notify.Notifier {
	channel := cfg.Redis.ToastChannel
	if channel == "" {
		channel = notify.DefaultToastChannel
	}
	return notify.NewMulti(
		notify.NewLog(slog.Default()),
		notify.NewBroadcaster(rdb, channel, slog.Default()),
	)
}

func ProvideAlerter(cfg *config.Config, emailClient *email.Client) store.Alerter {
	return notify.NewEmailAlerter(
		emailClient,
		cfg.Email.AlertRecipients,
		cfg.Observability.ServiceName,
		slog.Default(),
	)
}

// ProvideStore builds the domain store and runs the initial refresh as part
// of startup, before the HTTP server begins listening.
func ProvideStore(
	lc fx.Lifecycle,
	cfg *config.Config,
	gw *gateway.Client,
	notifier notify.Notifier,
	alerter store.Alerter,
) *store.Store {
	st := store.New(store.Params{
		Gateway:  gw,
		Notifier: notifier,
		Offline:  !cfg.Upstream.Enabled,
		Alerter:  alerter,
		Logger:   slog.Default(),
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return st.Refresh(ctx)
		},
	})
	return st
}
