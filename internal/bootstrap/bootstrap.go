package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"krishi-officer-go/internal/ai"
	"krishi-officer-go/internal/domain/advisory"
	"krishi-officer-go/internal/domain/diagnosis"
	domainimage "krishi-officer-go/internal/domain/image"
	"krishi-officer-go/internal/domain/market"
	"krishi-officer-go/internal/domain/schemes"
	"krishi-officer-go/internal/domain/weather"
	platformconfig "krishi-officer-go/internal/platform/config"
	platformerrors "krishi-officer-go/internal/platform/errors"
	platformlogging "krishi-officer-go/internal/platform/logging"
	httptransport "krishi-officer-go/internal/transport/http"
	httpadvisor "krishi-officer-go/internal/transport/http/advisor"
	httpsystem "krishi-officer-go/internal/transport/http/system"
)

// Options controls how Run loads configuration.
type Options struct {
	ConfigPath string
	DotEnv     bool
}

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	opts       Options
	config     *platformconfig.Config
	configPath string
	logger     *platformlogging.Logger

	aiClient         *ai.Client
	advisoryService  *advisory.Service
	diagnosisService *diagnosis.Service
	weatherService   *weather.Service
	marketService    *market.Service
	schemeService    *schemes.Service
}

// Run starts the full service lifecycle: configuration, logging, AI client,
// domain services, the HTTP server and graceful shutdown.
func Run(ctx context.Context, opts Options) error {
	state := &appState{opts: opts}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
		)
	}

	logBootstrapGraph(steps, logger)

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if _, err := startHTTPServer(state, group, groupCtx); err != nil {
		cancel()
		return err
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.InfoTag("BOOT", "server stopped")
	logger.Close()
	return nil
}

func logBootstrapGraph(steps []initStep, logger *platformlogging.Logger) {
	if logger == nil {
		return
	}
	for _, step := range steps {
		logger.InfoTag("BOOT", "%s", step.Title)
	}
	logger.InfoTag("BOOT", "starting services")
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

// InitGraph declares the ordered initialisation steps and their dependencies.
func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "ai:init-client",
			Title:     "Initialise AI client",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initAIClientStep,
		},
		{
			ID:        "domain:init-services",
			Title:     "Initialise domain services",
			DependsOn: []string{"ai:init-client"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initDomainServicesStep,
		},
		{
			ID:        "schemes:verify",
			Title:     "Verify schemes document",
			DependsOn: []string{"domain:init-services"},
			Kind:      platformerrors.KindStorage,
			Execute:   verifySchemesStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader(state.opts.ConfigPath).
		WithDotEnv(state.opts.DotEnv).
		Load()
	if err != nil {
		return err
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	if state.config == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"logging:init",
			"config not loaded",
		)
	}

	logger, err := platformlogging.New(state.config.Log)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "logging:init", "failed to initialise logging", err)
	}
	state.logger = logger

	logger.InfoTag("BOOT", "logging ready [%s] %s", state.config.Log.Level, state.configPath)
	return nil
}

func initAIClientStep(_ context.Context, state *appState) error {
	if state.config == nil || state.logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"ai:init-client",
			"missing config/logger",
		)
	}

	client, err := ai.New(state.config.AI, state.logger)
	if err != nil {
		return err
	}
	state.aiClient = client
	return nil
}

func initDomainServicesStep(_ context.Context, state *appState) error {
	if state.config == nil || state.logger == nil || state.aiClient == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"domain:init-services",
			"missing config/logger/ai client",
		)
	}

	config := state.config
	logger := state.logger

	pipeline := domainimage.NewPipeline(config.Image, logger)

	state.advisoryService = advisory.NewService(state.aiClient, logger)
	state.diagnosisService = diagnosis.NewService(state.aiClient, pipeline, diagnosis.NewKeywordAnalyzer(), logger)
	state.weatherService = weather.NewService(weather.NewClient(config.Weather, logger), logger)
	state.marketService = market.NewService(market.NewCSVProvider(config.Data.CropPriceFile), logger)
	state.schemeService = schemes.NewService(schemes.NewFileProvider(config.Data.SchemesFile), logger)
	return nil
}

// verifySchemesStep fails startup when the schemes document is unreadable.
func verifySchemesStep(ctx context.Context, state *appState) error {
	if state.schemeService == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"schemes:verify",
			"scheme service not initialised",
		)
	}
	return state.schemeService.Verify(ctx)
}

func startHTTPServer(
	state *appState,
	g *errgroup.Group,
	groupCtx context.Context,
) (*http.Server, error) {
	config := state.config
	logger := state.logger

	httpRouter, err := httptransport.Build(httptransport.Options{
		Config: config,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	router := httpRouter.Engine

	advisorService, err := httpadvisor.NewService(
		logger,
		state.advisoryService,
		state.diagnosisService,
		state.weatherService,
		state.marketService,
		state.schemeService,
	)
	if err != nil {
		return nil, err
	}

	systemService, err := httpsystem.NewService(logger)
	if err != nil {
		return nil, err
	}

	if err := advisorService.Register(groupCtx, &router.RouterGroup); err != nil {
		return nil, err
	}
	if err := systemService.Register(groupCtx, httpRouter.API); err != nil {
		return nil, err
	}

	router.NoRoute(func(c *gin.Context) {
		c.File(config.Web.StaticDir + "/index.html")
	})

	httpServer := &http.Server{
		Addr:    config.Server.IP + ":" + strconv.Itoa(config.Server.Port),
		Handler: router,
	}

	g.Go(func() error {
		logger.InfoTag("HTTP", "server listening on http://%s", httpServer.Addr)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorTag("HTTP", "shutdown failed: %v", err)
			} else {
				logger.InfoTag("HTTP", "server shut down cleanly")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorTag("HTTP", "server failed: %v", err)
			return err
		}
		return nil
	})

	return httpServer, nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.InfoTag("BOOT", "shutdown signal received: %v", context.Cause(ctx))

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.ErrorTag("BOOT", "error during shutdown: %v", err)
			return err
		}
		logger.InfoTag("BOOT", "all services stopped")
	case <-time.After(15 * time.Second):
		timeoutErr := errors.New("shutdown timed out")
		logger.ErrorTag("BOOT", "shutdown timed out, forcing exit")
		return timeoutErr
	}
	return nil
}
