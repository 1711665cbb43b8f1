package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"restaurantform/internal/applog"
	"restaurantform/internal/model"
	"restaurantform/internal/state"
)

// RestaurantListResult is the service-level DTO for the restaurant list.
type RestaurantListResult struct {
	Items model.RestaurantList `json:"data"`
	Total int                  `json:"total"`
}

// RestaurantService owns the authoritative restaurant list.
type RestaurantService interface {
	// Append adds d at the end of the list and returns the new list.
	// The previous list value is never modified.
	Append(ctx context.Context, d model.RestaurantDraft) model.RestaurantList

	// List returns the current list.
	List(ctx context.Context) model.RestaurantList

	// Subscribe registers fn to be called with the new list after every append.
	Subscribe(fn func(model.RestaurantList)) state.Unsubscribe
}

// restaurantService is the in-memory implementation of RestaurantService.
type restaurantService struct {
	list   *state.State[model.RestaurantList]
	tracer trace.Tracer
	log    *applog.Logger
}

// NewRestaurantService constructs a RestaurantService with an empty list.
func NewRestaurantService(log *applog.Logger) RestaurantService {
	if log == nil {
		log = applog.Default()
	}
	return &restaurantService{
		list:   state.New(model.RestaurantList{}),
		tracer: otel.Tracer("restaurantform/internal/service"),
		log:    log,
	}
}

func (s *restaurantService) Append(ctx context.Context, d model.RestaurantDraft) model.RestaurantList {
	_, span := s.tracer.Start(ctx, "RestaurantService.Append")
	defer span.End()

	next := s.list.Update(func(l model.RestaurantList) model.RestaurantList {
		return l.Append(d)
	})

	span.SetAttributes(
		attribute.String("restaurant.name", d.Name),
		attribute.Int("restaurant.list_size", len(next)),
	)
	s.log.Info(map[string]any{
		"component": "restaurants",
		"event":     "restaurant_appended",
		"name":      d.Name,
		"cuisine":   d.Cuisine,
		"total":     len(next),
	})
	return next
}

func (s *restaurantService) List(ctx context.Context) model.RestaurantList {
	return s.list.Get()
}

func (s *restaurantService) Subscribe(fn func(model.RestaurantList)) state.Unsubscribe {
	return s.list.Subscribe(fn)
}

// Result wraps a list in the DTO served by the API.
func Result(l model.RestaurantList) *RestaurantListResult {
	if l == nil {
		l = model.RestaurantList{}
	}
	return &RestaurantListResult{Items: l, Total: len(l)}
}
