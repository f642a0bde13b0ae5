package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexibuild/lexibuild/application"
	"github.com/lexibuild/lexibuild/internal/config"
	"github.com/lexibuild/lexibuild/internal/infra/database"
	"github.com/lexibuild/lexibuild/internal/service/builder"
	"github.com/lexibuild/lexibuild/internal/service/reporter"
	"github.com/lexibuild/lexibuild/internal/service/scorer"
	pkg "github.com/lexibuild/lexibuild/pkg/logger"
)

func main() {
	config, err := config.LoadConfig("./internal/config/config.yaml")
	if err != nil {
		log.Fatalf("error load config %v", err)
	}

	zaplogger, err := pkg.NewZapLogger(config.Logger)
	if err != nil {
		log.Fatalf("error initialize logger: %v", err)
	}

	if zaplogger != nil {
		defer zaplogger.Sync()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	wiktionaryPath := config.Build.WiktionaryPath
	sources := []builder.Source{
		builder.NewHunspellSource(config.Build.DataDir, zaplogger),
		builder.NewFrequencyListSource(config.Build.DataDir, config.Build.WordfreqTopN, zaplogger),
		builder.NewWiktionarySource(wiktionaryPath, zaplogger),
		builder.NewExtraTextSource(config.Build.DataDir, zaplogger),
	}
	lexiconBuilder := builder.NewBuilder(zaplogger, sources...)

	db, err := database.NewPostgresPool(zaplogger, config.DatabaseConfig)
	if err != nil {
		zaplogger.Error("failed to init DB", "err", err)
		return
	}
	defer db.Pool.Close()

	newReporter := reporter.NewReporter(zaplogger, db, config.Report)
	scorerFactory := scorer.NewFactory(config.Scoring, zaplogger)

	app := application.NewApp(lexiconBuilder, scorerFactory, zaplogger, db, newReporter)

	app.Run(ctx, config.Build.Languages)

	if config.Scoring.Input != "" {
		err := app.ScoreTermsFile(config.Scoring.LangCode, config.Scoring.Input, config.Scoring.Output)
		if err != nil {
			zaplogger.Error("failed to score terms", "err", err)
		}
	}
}
