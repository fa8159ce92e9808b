package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/adapters/out/backend"
	"logistics/internal/adapters/out/optimizer"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"
)

// CompositionRoot wires the outbound clients into command and query
// handlers. Both backends share one HTTP client so timeouts apply
// uniformly.
type CompositionRoot struct {
	orders    ports.OrderClient
	routes    ports.RouteClient
	couriers  ports.CourierClient
	optimizer ports.OptimizerClient
}

func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	timeout := time.Duration(configs.HTTPClientTimeoutSeconds) * time.Second
	httpClient := &http.Client{Timeout: timeout}

	backendClient, err := backend.NewClient(configs.BackendBaseURL, httpClient)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("persistence backend client: %w", err)
	}
	optimizerClient, err := optimizer.NewClient(configs.OptimizerBaseURL, httpClient)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("optimization backend client: %w", err)
	}

	orders, err := backend.NewOrderClient(backendClient)
	if err != nil {
		return CompositionRoot{}, err
	}
	routes, err := backend.NewRouteClient(backendClient)
	if err != nil {
		return CompositionRoot{}, err
	}
	couriers, err := backend.NewCourierClient(backendClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orders:    orders,
		routes:    routes,
		couriers:  couriers,
		optimizer: optimizerClient,
	}, nil
}

func (c *CompositionRoot) CreateSaveComputedRouteCommandHandler() commands.SaveComputedRouteCommandHandler {
	return commands.NewSaveComputedRouteCommandHandler(c.routes, c.orders)
}

func (c *CompositionRoot) CreateReviseRouteCommandHandler() commands.ReviseRouteCommandHandler {
	return commands.NewReviseRouteCommandHandler(c.routes, c.orders)
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.routes, c.orders)
}

func (c *CompositionRoot) CreateCancelRouteCommandHandler() commands.CancelRouteCommandHandler {
	return commands.NewCancelRouteCommandHandler(c.routes, c.orders)
}

func (c *CompositionRoot) CreateAssignOrdersCommandHandler() commands.AssignOrdersCommandHandler {
	return commands.NewAssignOrdersCommandHandler(c.optimizer)
}

func (c *CompositionRoot) CreateComputeCandidateRouteQueryHandler() queries.ComputeCandidateRouteQueryHandler {
	return queries.NewComputeCandidateRouteQueryHandler(c.orders, c.optimizer)
}

func (c *CompositionRoot) CreateGetSuitableCouriersQueryHandler() queries.GetSuitableCouriersQueryHandler {
	return queries.NewGetSuitableCouriersQueryHandler(c.optimizer)
}

func (c *CompositionRoot) CreateGetOrderZonesQueryHandler() queries.GetOrderZonesQueryHandler {
	return queries.NewGetOrderZonesQueryHandler(c.optimizer)
}

func (c *CompositionRoot) CreateGetCourierStatusQueryHandler() queries.GetCourierStatusQueryHandler {
	return queries.NewGetCourierStatusQueryHandler(c.optimizer)
}

func (c *CompositionRoot) CreateGetCourierStatisticsQueryHandler() queries.GetCourierStatisticsQueryHandler {
	return queries.NewGetCourierStatisticsQueryHandler(c.routes)
}

func (c *CompositionRoot) CreateGetRoutePlanningDataQueryHandler() queries.GetRoutePlanningDataQueryHandler {
	return queries.NewGetRoutePlanningDataQueryHandler(c.orders, c.couriers)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.couriers, c.CreateGetCourierStatisticsQueryHandler(), logger)
}
