package form

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"restaurantform/internal/model"
)

// ErrConstraintViolation is matched by every *ConstraintError.
var ErrConstraintViolation = errors.New("constraint violation")

// Messages reported for failed constraints. They follow the wording browsers use for native form validation.
const (
	MsgValueMissing   = "Please fill out this field."
	MsgBadNumber      = "Please enter a number."
	MsgRangeUnderflow = "Value must be greater than or equal to %d."
	MsgRangeOverflow  = "Value must be less than or equal to %d."
	MsgStepMismatch   = "Please enter a valid value. The two nearest valid values are %d and %d."
)

// floatPattern matches an HTML "valid floating-point number".
var floatPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

// ConstraintError lists the fields of a draft that fail their input constraints.
type ConstraintError struct {
	Fields map[model.Field]string
}

func (e *ConstraintError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)
	return fmt.Sprintf("constraint violation: %s", strings.Join(keys, ", "))
}

func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// Constraints checks a draft against the constraints declared by the form inputs:
// every field is required and the rating is a whole number between 1 and 5.
type Constraints struct {
	validate *validator.Validate
}

// NewConstraints builds a Constraints checker.
func NewConstraints() *Constraints {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		return ratingProblem(fl.Field().String()) == ""
	})
	return &Constraints{validate: v}
}

// Check returns nil when d satisfies every constraint, otherwise a *ConstraintError.
func (c *Constraints) Check(d model.RestaurantDraft) error {
	err := c.validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("check draft: %w", err)
	}

	out := &ConstraintError{Fields: make(map[model.Field]string, len(verrs))}
	for _, fe := range verrs {
		field, perr := model.ParseField(fe.Field())
		if perr != nil {
			return fmt.Errorf("check draft: %w", perr)
		}
		switch fe.Tag() {
		case "required":
			out.Fields[field] = MsgValueMissing
		case "rating":
			out.Fields[field] = ratingProblem(d.Rating)
		default:
			out.Fields[field] = MsgValueMissing
		}
	}
	return out
}

// ratingProblem returns the message for an unacceptable rating, or "" when s is acceptable.
func ratingProblem(s string) string {
	if !floatPattern.MatchString(s) {
		return MsgBadNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return MsgBadNumber
	}
	if v < model.RatingMin {
		return fmt.Sprintf(MsgRangeUnderflow, model.RatingMin)
	}
	if v > model.RatingMax {
		return fmt.Sprintf(MsgRangeOverflow, model.RatingMax)
	}
	// step="1" counted from min
	if v != math.Trunc(v) {
		lo := int(math.Floor(v))
		return fmt.Sprintf(MsgStepMismatch, lo, lo+1)
	}
	return ""
}
