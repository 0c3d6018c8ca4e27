package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/suilance/suilance-ui-api/config"
	"github.com/suilance/suilance-ui-api/internal/adapters/chain"
	"github.com/suilance/suilance-ui-api/internal/adapters/jobstore"
	redisadapter "github.com/suilance/suilance-ui-api/internal/adapters/redis"
	"github.com/suilance/suilance-ui-api/internal/adapters/walletauth"
	"github.com/suilance/suilance-ui-api/internal/core"
	"github.com/suilance/suilance-ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Lifecycle  *service.LifecycleService
	Reputation *service.ReputationService
	Auth       *service.AuthService
	Wallet     *walletauth.Provider
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceAdapters groups the upstream clients backing service ports.
type serviceAdapters struct {
	Jobs     *jobstore.Client
	Records  *jobstore.ReputationClient
	Bridge   *chain.Bridge
	Sessions *redisadapter.SessionStore
}

// buildAdapters constructs the upstream clients; no business rules here.
func buildAdapters(cfg *config.AppConfig, redisClient redis.UniversalClient) (*serviceAdapters, error) {
	jobs, err := jobstore.NewClient(jobstore.ClientOptions{
		BaseURL: cfg.Store.BaseURL,
		Timeout: cfg.Store.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("job store client: %w", err)
	}

	bridge, err := chain.NewBridge(chain.BridgeOptions{
		BaseURL: cfg.Chain.BridgeURL,
		Timeout: cfg.Chain.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("signer bridge client: %w", err)
	}

	return &serviceAdapters{
		Jobs:     jobs,
		Records:  jobs.Reputations(),
		Bridge:   bridge,
		Sessions: redisadapter.NewSessionStore(redisClient),
	}, nil
}

// NewServices wires adapters into the domain services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, fmt.Errorf("service deps and config are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	adapters, err := buildAdapters(deps.Config, deps.RedisClient)
	if err != nil {
		return ServiceContainer{}, err
	}

	reputationSvc := service.NewReputationService(service.ReputationServiceOptions{
		Records: adapters.Records,
	})

	lifecycleSvc := service.NewLifecycleService(service.LifecycleServiceOptions{
		Jobs:       adapters.Jobs,
		Chain:      adapters.Bridge,
		Contract:   core.NewContract(deps.Config.Chain.PackageID),
		Reputation: reputationSvc,
		Logger:     logger,
	})

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Sessions:   adapters.Sessions,
		SessionTTL: deps.Config.Session.TTL,
	})

	wallet := walletauth.NewProvider(walletauth.Config{
		AllowGenerated: deps.Config.Session.AllowGeneratedWallets || deps.Config.IsDev,
	})

	return ServiceContainer{
		Lifecycle:  lifecycleSvc,
		Reputation: reputationSvc,
		Auth:       authSvc,
		Wallet:     wallet,
	}, nil
}
