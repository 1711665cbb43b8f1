package model

// FieldSpec describes how one form field is rendered and which input constraints it declares.
type FieldSpec struct {
	Field     Field
	Label     string
	InputType string
	Required  bool
	Min       string
	Max       string
}

// FieldSpecs holds the six inputs of the restaurant form, in render order.
var FieldSpecs = []FieldSpec{
	{Field: FieldName, Label: "Name:", InputType: "text", Required: true},
	{Field: FieldImage, Label: "Image:", InputType: "text", Required: true},
	{Field: FieldAddress, Label: "Address:", InputType: "text", Required: true},
	{Field: FieldPhone, Label: "Phone:", InputType: "tel", Required: true},
	{Field: FieldCuisine, Label: "Cuisine:", InputType: "text", Required: true},
	{Field: FieldRating, Label: "Rating:", InputType: "number", Required: true, Min: "1", Max: "5"},
}

const (
	// RatingMin is the lowest value the rating input accepts.
	RatingMin = 1
	// RatingMax is the highest value the rating input accepts.
	RatingMax = 5
)
