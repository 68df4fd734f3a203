package cmd

import (
	"fmt"
	"log/slog"
	"os"

	httpadapter "github.com/ogradyo/restaurant-simulator/internal/adapters/in/http"
	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/amqp"
	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/deliveryhandler"
	"github.com/ogradyo/restaurant-simulator/internal/adapters/out/external"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/messaging"
	"github.com/ogradyo/restaurant-simulator/internal/core/application/processing"
	"github.com/ogradyo/restaurant-simulator/internal/core/domain/model/menu"
	"github.com/ogradyo/restaurant-simulator/internal/jobs"
)

// CompositionRoot wires the catalog, processor, generator, router and
// adapters together. Everything lives in process; the AMQP broker is the
// only optional external dependency.
type CompositionRoot struct {
	catalog    *menu.Catalog
	processor  *processing.Processor
	generator  *messaging.Generator
	router     *messaging.Router
	handler    *deliveryhandler.Handler
	platforms  *external.Manager
	jobManager *jobs.JobManager
	amqpConn   *amqp.Connection
	logger     *slog.Logger
}

func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	catalog, err := menu.NewStandardCatalog()
	if err != nil {
		return nil, fmt.Errorf("build menu catalog: %w", err)
	}
	processor, err := processing.NewProcessor(catalog)
	if err != nil {
		return nil, fmt.Errorf("build order processor: %w", err)
	}

	router, err := messaging.NewRouterBuilder(logger).
		WithPOSSystem().
		WithKitchenDisplay().
		WithDeliveryService().
		WithInventorySystem().
		WithAnalyticsSystem().
		Build()
	if err != nil {
		return nil, fmt.Errorf("build message router: %w", err)
	}

	handler := deliveryhandler.New(config.OutputDir, logger)
	root := &CompositionRoot{
		catalog:   catalog,
		processor: processor,
		generator: messaging.NewGeneratorForRestaurant(config.RestaurantID),
		router:    router,
		handler:   handler,
		platforms: external.NewManager(),
		logger:    logger,
	}

	if config.AmqpURL != "" {
		conn, err := amqp.Connect(config.AmqpURL, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to broker: %w", err)
		}
		root.amqpConn = conn
		handler.AttachQueue(amqp.NewPublisher(conn))
	}
	router.RegisterHandler(handler)

	root.jobManager = jobs.NewJobManager(processor, router, logger)
	return root, nil
}

func (c *CompositionRoot) HTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.processor, c.catalog, c.generator, c.router, c.platforms)
}

// Start launches the async routing worker and the background jobs.
func (c *CompositionRoot) Start(asyncRouting bool) error {
	if asyncRouting {
		if err := c.router.Start(); err != nil {
			return err
		}
	}
	return c.jobManager.StartAll()
}

// Shutdown stops jobs, the routing worker, and the broker connection.
func (c *CompositionRoot) Shutdown() {
	c.jobManager.StopAll()
	c.router.Stop()
	if c.amqpConn != nil {
		c.amqpConn.Close()
	}
}
