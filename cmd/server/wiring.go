package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/twmb/franz-go/pkg/kgo"

	jwttoken "estate/internal/jwt_token"
	listingstore "estate/internal/listing/store"
	"estate/internal/notify"
	"estate/internal/platform/config"
	"estate/internal/platform/kafka"
	platformmetrics "estate/internal/platform/metrics"
	"estate/internal/platform/postgres"
	"estate/internal/platform/redis"
	propertyhandler "estate/internal/property/handler"
	propertymetrics "estate/internal/property/metrics"
	"estate/internal/property/service"
	"estate/internal/property/store/binding"
	"estate/internal/property/store/claim"
	"estate/internal/property/store/ledger"
	rolesservice "estate/internal/roles/service"
	rolestore "estate/internal/roles/store"
	"estate/pkg/platform/tx"
)

// stores is one storage backend: Postgres when DATABASE_URL is set, in-memory
// otherwise.
type stores struct {
	claims   service.ClaimStore
	ledger   service.LedgerStore
	bindings service.BindingStore
	listings service.ListingArchiver
	roles    rolesservice.Directory
	runner   tx.Runner
}

type app struct {
	cfg      config.Config
	log      *slog.Logger
	storage  string
	db       *sql.DB
	redis    *redis.Client
	kafka    *kgo.Client
	registry *prometheus.Registry
	notifier *notify.Async
	handler  *propertyhandler.Handler
	jwt      *jwttoken.JWTService
	http     *platformmetrics.Metrics
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log, registry: prometheus.NewRegistry()}
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	st, err := a.openStores(ctx)
	if err != nil {
		return nil, err
	}
	m := propertymetrics.New(a.registry)
	if err := a.openNotifier(ctx, m.NotifyFailures); err != nil {
		a.close(log)
		return nil, err
	}

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithNotifier(a.notifier),
	}
	bindings := service.NewBindingService(st.bindings, st.listings, st.roles, st.runner, opts...)
	claims := service.NewClaimService(st.claims, st.ledger, bindings, st.runner, opts...)
	reviews := service.NewTenantReviewService(claims, st.claims, bindings, opts...)
	roles := rolesservice.New(st.roles, st.bindings, st.runner, rolesservice.WithLogger(log))

	a.handler = propertyhandler.New(claims, bindings, reviews, roles, log)
	a.jwt = jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer)
	a.http = platformmetrics.New(a.registry)
	return a, nil
}

func (a *app) openStores(ctx context.Context) (*stores, error) {
	if a.cfg.Database.URL == "" {
		a.storage = "memory"
		claims, entries, bindings := claim.NewInMemory(), ledger.NewInMemory(), binding.NewInMemory()
		listings, roles := listingstore.NewInMemory(), rolestore.NewInMemory()
		return &stores{
			claims:   claims,
			ledger:   entries,
			bindings: bindings,
			listings: listings,
			roles:    roles,
			runner:   tx.NewInMemoryTx(claims, entries, bindings, listings, roles),
		}, nil
	}

	a.storage = "postgres"
	db, err := postgres.Open(ctx, postgres.Config{
		URL:             a.cfg.Database.URL,
		MaxOpenConns:    a.cfg.Database.MaxOpenConns,
		MaxIdleConns:    a.cfg.Database.MaxIdleConns,
		ConnMaxLifetime: a.cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, db, a.log); err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return &stores{
		claims:   claim.NewPostgres(db),
		ledger:   ledger.NewPostgres(db),
		bindings: binding.NewPostgres(db),
		listings: listingstore.NewPostgres(db),
		roles:    rolestore.NewPostgres(db),
		runner:   tx.NewPostgresTx(db, a.cfg.TxTimeout),
	}, nil
}

// openNotifier fans out to the log and to whichever of Redis and Kafka is
// configured, behind an async hand-off. Delivery failures land in failures.
func (a *app) openNotifier(ctx context.Context, failures *prometheus.CounterVec) error {
	sinks := notify.Multi{notify.NewLog(a.log)}

	rc, err := redis.New(ctx, a.cfg.Redis)
	if err != nil {
		return err
	}
	if rc != nil {
		a.redis = rc
		sinks = append(sinks, notify.NewRedis(rc.Client, a.cfg.Redis.StreamMaxLen))
	}

	kc, err := kafka.NewProducer(a.cfg.Kafka)
	if err != nil {
		return err
	}
	if kc != nil {
		a.kafka = kc
		if err := kafka.EnsureTopic(ctx, kc, a.cfg.Kafka.NotifyTopic, a.cfg.Kafka.Partitions); err != nil {
			return err
		}
		sinks = append(sinks, notify.NewKafka(kc, a.cfg.Kafka.NotifyTopic))
	}

	a.notifier = notify.NewAsync(sinks, a.cfg.NotifyTimeout, a.log, notify.WithFailureCounter(failures))
	return nil
}

func (a *app) health(ctx context.Context) error {
	var errs []error
	if a.db != nil {
		if err := a.db.PingContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("postgres: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Health(ctx); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	if a.kafka != nil {
		if err := kafka.Health(ctx, a.kafka); err != nil {
			errs = append(errs, fmt.Errorf("kafka: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (a *app) close(log *slog.Logger) {
	if a.kafka != nil {
		a.kafka.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Warn("redis close failed", "error", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Warn("postgres close failed", "error", err)
		}
	}
}
