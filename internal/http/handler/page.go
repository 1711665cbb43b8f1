package handler

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"restaurantform/internal/form"
	"restaurantform/internal/http/middleware"
	"restaurantform/internal/model"
	"restaurantform/internal/view"
)

// sessionForm returns the form of the caller's draft session without creating one.
func sessionForm(c *fiber.Ctx, sessions *form.Sessions) (string, *form.AddRestaurant) {
	id := c.Cookies(middleware.DraftSessionCookie)
	if f, ok := sessions.Lookup(id); ok {
		return id, f
	}
	return "", nil
}

// openSessionForm returns the caller's form, opening a session and setting the cookie when needed.
func openSessionForm(c *fiber.Ctx, sessions *form.Sessions) (string, *form.AddRestaurant) {
	prev := c.Cookies(middleware.DraftSessionCookie)
	id, f := sessions.Open(prev)
	if id != prev {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.DraftSessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return id, f
}

func renderPage(c *fiber.Ctx, deps Dependencies, status form.Status, d model.RestaurantDraft, errs map[model.Field]string) error {
	var buf bytes.Buffer
	if err := deps.Renderer.Page(&buf, string(status), d, errs, deps.Container.HTML()); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// ShowPage renders the form bound to the session draft followed by the restaurants container.
func ShowPage(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, d := form.StatusClean, model.RestaurantDraft{}
		if _, f := sessionForm(c, deps.Sessions); f != nil {
			status, d = f.Status(), f.Draft()
		}
		return renderPage(c, deps, status, d, nil)
	}
}

// RestaurantsFragment serves the restaurants container on its own.
func RestaurantsFragment(container *view.Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(string(container.HTML()))
	}
}

// SubmitRestaurantForm handles the urlencoded form post.
//
// Every posted value that differs from the session draft is applied as a change
// event and the draft is submitted, all under the form lock. A draft
// passing the input constraints is submitted and the browser is redirected back
// to the page (303), which shows the new entry and an empty form. Otherwise the
// page is rendered again with status 422, the typed values and the messages.
func SubmitRestaurantForm(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var posted model.RestaurantDraft
		for _, field := range model.Fields {
			posted = posted.With(field, c.FormValue(string(field)))
		}

		_, f := openSessionForm(c, deps.Sessions)
		d, changed, err := f.SubmitPosted(c.UserContext(), posted, deps.Constraints.Check)
		for _, field := range changed {
			deps.Metrics.FieldChanged(field)
		}

		var cerr *form.ConstraintError
		switch {
		case errors.As(err, &cerr):
			deps.Metrics.Rejected(constraintFields(cerr))
			c.Status(fiber.StatusUnprocessableEntity)
			return renderPage(c, deps, form.StatusOf(d), d, cerr.Fields)
		case err != nil:
			return err
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

func constraintFields(cerr *form.ConstraintError) []model.Field {
	out := make([]model.Field, 0, len(cerr.Fields))
	for _, f := range model.Fields {
		if _, ok := cerr.Fields[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
