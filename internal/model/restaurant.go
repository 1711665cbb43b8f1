package model

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when a field name outside the fixed set of form fields is parsed.
var ErrUnknownField = errors.New("unknown field")

// Field names one input of the restaurant form.
type Field string

const (
	FieldName    Field = "name"
	FieldImage   Field = "image"
	FieldAddress Field = "address"
	FieldPhone   Field = "phone"
	FieldCuisine Field = "cuisine"
	FieldRating  Field = "rating"
)

// Fields lists every form field in render order.
var Fields = []Field{FieldName, FieldImage, FieldAddress, FieldPhone, FieldCuisine, FieldRating}

// ParseField converts an external field name (form key, JSON payload) into a Field.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// RestaurantDraft is the in-progress restaurant record held by the form.
// Every value is kept as the raw string the input reported; the zero value is the empty draft.
type RestaurantDraft struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Image   string `json:"image" form:"image" validate:"required"`
	Address string `json:"address" form:"address" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Cuisine string `json:"cuisine" form:"cuisine" validate:"required"`
	Rating  string `json:"rating" form:"rating" validate:"required,rating"`
}

// Get returns the value bound to f.
func (d RestaurantDraft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldImage:
		return d.Image
	case FieldAddress:
		return d.Address
	case FieldPhone:
		return d.Phone
	case FieldCuisine:
		return d.Cuisine
	case FieldRating:
		return d.Rating
	}
	panic(fmt.Sprintf("model: get of unknown field %q", f))
}

// With returns a copy of d with f replaced by v. All other fields are left untouched.
// Passing a Field that is not one of Fields is a programming error and panics;
// external input must go through ParseField first.
func (d RestaurantDraft) With(f Field, v string) RestaurantDraft {
	switch f {
	case FieldName:
		d.Name = v
	case FieldImage:
		d.Image = v
	case FieldAddress:
		d.Address = v
	case FieldPhone:
		d.Phone = v
	case FieldCuisine:
		d.Cuisine = v
	case FieldRating:
		d.Rating = v
	default:
		panic(fmt.Sprintf("model: update of unknown field %q", f))
	}
	return d
}

// IsEmpty reports whether every field still holds its default.
func (d RestaurantDraft) IsEmpty() bool {
	return d == RestaurantDraft{}
}

// RestaurantList is the ordered, append-only sequence of submitted restaurants.
type RestaurantList []RestaurantDraft

// Append returns a new list holding l followed by d.
// The result never shares a backing array with l, so l stays valid for anyone still holding it.
func (l RestaurantList) Append(d RestaurantDraft) RestaurantList {
	out := make(RestaurantList, len(l), len(l)+1)
	copy(out, l)
	return append(out, d)
}
