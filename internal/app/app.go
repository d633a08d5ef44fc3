package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/jeffleon2/draftea-prepaid-service/internal/handlers"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ids"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/metrics"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/payout"
	"github.com/jeffleon2/draftea-prepaid-service/internal/publisher"
	"github.com/jeffleon2/draftea-prepaid-service/internal/repository/memory"
	"github.com/jeffleon2/draftea-prepaid-service/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-prepaid-service/internal/seed"
	"github.com/jeffleon2/draftea-prepaid-service/internal/service"
	"github.com/jeffleon2/draftea-prepaid-service/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	Service   *service.CardService
	handler   *handlers.CardHandler
	consumer  *subscriber.KafkaConsumer
	publisher *publisher.KafkaPublisher
}

// Initialize wires repositories, publisher, payout, service and routes.
// Postgres and Kafka are only used when enabled in the configuration.
func (a *App) Initialize(cfg *config.Config) error {
	a.config = cfg
	cfg.APP.ConfigureLogger()
	metrics.RegisterMetrics()

	journal, err := a.journal()
	if err != nil {
		return err
	}

	var pub service.Publisher = publisher.NewLogPublisher()
	if cfg.Kafka.Enabled {
		brokers := strings.Split(cfg.Kafka.Brokers, ",")
		publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
		a.publisher = publisher.NewKafkaPublisher(brokers, publishTopics, cfg.Kafka.GetRetryConfig())
		pub = a.publisher
	}

	merchants := memory.New[*ledger.Merchant]("merchant")
	repos := service.Repositories{
		Cards:          memory.New[*ledger.PrepaidCard]("card"),
		Authorizations: memory.New[*ledger.AuthorizationRequest]("authorization request"),
		Merchants:      merchants,
		Journal:        journal,
	}
	notifier := payout.NewNotifier(merchants, pub, cfg.Ledger.Currency)
	a.Service = service.NewCardService(repos, ids.NewSequence(), pub, notifier, cfg.Ledger.Currency)
	a.handler = handlers.NewCardHandler(a.Service)

	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.Router.Use(gin.Logger(), gin.Recovery())
	a.RegisterRoutes(a.handler)

	if cfg.APP.IsLocal() {
		if err := seed.SeedLedger(context.Background(), a.Service); err != nil {
			logrus.Warnf("Warning: failed to seed ledger: %v", err)
		}
	}

	if cfg.Kafka.Enabled {
		a.initSubscribers()
	}
	return nil
}

// Run serves HTTP and consumes events until ctx is done.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	if a.consumer != nil {
		a.consumer.Listen(ctx, func(topic string, value []byte) error {
			logrus.WithField("topic", topic).Debugf("📩 Received message → value=%s", string(value))
			return a.handler.HandleEvents(ctx, topic, value)
		})
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Prepaid service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error shutting down http server")
	}
	a.close()
	logrus.Info("Prepaid service stopped")
	return nil
}

func (a *App) journal() (service.JournalRepo, error) {
	if !a.config.DB.Enabled {
		logrus.Info("Database disabled, keeping the journal in memory")
		return memory.NewJournal(), nil
	}

	db, err := a.config.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.LedgerEntry{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return posgrest.New[models.LedgerEntry](db), nil
}

func (a *App) initSubscribers() {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")

	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, a.config.Kafka.ConsumerGroup, a.publisher, a.config.Kafka.GetRetryConfig())
	a.consumer.Permanent = ledger.IsPermanent
}

func (a *App) close() {
	if a.consumer != nil {
		a.consumer.Close()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.WithError(err).Error("Error closing publisher")
		}
	}
}
