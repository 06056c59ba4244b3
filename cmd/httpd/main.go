package main

import (
	"context"
	"os"

	"github.com/jonesrussell/mail-triage/internal/api"
	"github.com/jonesrussell/mail-triage/internal/classifier"
	"github.com/jonesrussell/mail-triage/internal/config"
	"github.com/jonesrussell/mail-triage/internal/logger"
	"github.com/jonesrussell/mail-triage/internal/telemetry"
	"github.com/jonesrussell/mail-triage/internal/zeroshot"
)

// modelProvider adapts the zeroshot provider to the classifier's
// provider interface.
type modelProvider struct {
	provider *zeroshot.Provider
}

func (m *modelProvider) Client(ctx context.Context) (classifier.ModelClient, error) {
	return m.provider.Client(ctx)
}

func main() {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting mail-triage",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.String("zero_shot_url", cfg.ZeroShot.ServiceURL),
		logger.String("model", cfg.ZeroShot.Model),
	)

	tp := telemetry.NewProvider()

	provider := zeroshot.NewProvider(
		cfg.ZeroShot.ServiceURL,
		classifier.CandidateSentences(),
		cfg.ZeroShot.HypothesisTemplate,
		cfg.ZeroShot.Timeout,
		log,
	)

	triage := classifier.NewService(
		&modelProvider{provider: provider},
		classifier.Config{MinConfidence: cfg.ZeroShot.MinConfidence},
		log,
		tp,
	)

	handler := api.NewHandler(
		triage,
		provider,
		tp,
		log,
		cfg.Service.Name,
		cfg.Service.Version,
		cfg.Service.MaxUploadBytes,
	)

	server := api.NewServer(handler, cfg, log)

	if err := server.RunWithGracefulShutdown(context.Background()); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
