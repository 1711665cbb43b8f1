package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"restaurantform/internal/form"
	"restaurantform/internal/model"
	"restaurantform/internal/service"
)

// DraftResponse is the JSON view of a draft session.
type DraftResponse struct {
	Session string                `json:"session,omitempty"`
	Status  form.Status           `json:"status"`
	Draft   model.RestaurantDraft `json:"draft"`
}

// FieldChange is a single change event for the session draft.
type FieldChange struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func draftResponse(id string, f *form.AddRestaurant) DraftResponse {
	return DraftResponse{Session: id, Status: f.Status(), Draft: f.Draft()}
}

// ListRestaurants returns every submitted restaurant in submission order.
//
// @Summary List restaurants
// @Produce json
// @Success 200 {object} service.RestaurantListResult
// @Router /api/restaurants [get]
func ListRestaurants(svc service.RestaurantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(service.Result(svc.List(c.UserContext())))
	}
}

// CreateRestaurant submits a complete draft in one request.
// The draft goes through a one-shot form, so it is checked and handed off exactly like a form submission.
//
// @Summary Submit a restaurant
// @Accept json
// @Produce json
// @Param restaurant body model.RestaurantDraft true "restaurant"
// @Success 201 {object} model.RestaurantDraft
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/restaurants [post]
func CreateRestaurant(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.RestaurantDraft
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid restaurant payload")
		}

		f := form.NewAddRestaurant(func(ctx context.Context, d model.RestaurantDraft) {
			deps.Restaurants.Append(ctx, d)
		})
		for _, field := range model.Fields {
			f.OnFieldChange(field, in.Get(field))
		}
		return submit(c, deps, f)
	}
}

// GetDraft returns the caller's session draft. Callers without a session get an empty, clean draft.
//
// @Summary Current draft
// @Produce json
// @Success 200 {object} DraftResponse
// @Router /api/draft [get]
func GetDraft(sessions *form.Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, f := sessionForm(c, sessions)
		if f == nil {
			return c.JSON(DraftResponse{Status: form.StatusClean})
		}
		return c.JSON(draftResponse(id, f))
	}
}

// UpdateDraftField applies one change event to the caller's session draft.
//
// @Summary Change one draft field
// @Accept json
// @Produce json
// @Param change body FieldChange true "change event"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} errorPayload
// @Router /api/draft [patch]
func UpdateDraftField(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in FieldChange
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid change payload")
		}
		field, err := model.ParseField(in.Field)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "UNKNOWN_FIELD", "unknown field")
		}

		id, f := openSessionForm(c, deps.Sessions)
		f.OnFieldChange(field, in.Value)
		deps.Metrics.FieldChanged(field)
		return c.JSON(draftResponse(id, f))
	}
}

// SubmitDraft submits the caller's session draft.
//
// @Summary Submit the current draft
// @Produce json
// @Success 201 {object} model.RestaurantDraft
// @Failure 422 {object} errorPayload
// @Router /api/draft/submit [post]
func SubmitDraft(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, f := openSessionForm(c, deps.Sessions)
		return submit(c, deps, f)
	}
}

func submit(c *fiber.Ctx, deps Dependencies, f *form.AddRestaurant) error {
	d, err := f.SubmitChecked(c.UserContext(), deps.Constraints.Check)
	if err != nil {
		var cerr *form.ConstraintError
		if errors.As(err, &cerr) {
			deps.Metrics.Rejected(constraintFields(cerr))
			return writeConstraintError(c, cerr)
		}
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	return c.Status(fiber.StatusCreated).JSON(d)
}
