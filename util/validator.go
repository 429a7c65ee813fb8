package util

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

// Category tags a destination can carry: who the trip is for and what it is
// about. The admin form only offers these, so anything else is rejected.
var travelCategories = map[string]bool{
	"solo":         true,
	"couple":       true,
	"friends":      true,
	"group":        true,
	"family":       true,
	"adventure":    true,
	"fun":          true,
	"nature":       true,
	"architecture": true,
	"historical":   true,
	"pilgrimage":   true,
}

func init() {
	validate = validator.New()
	validate.RegisterValidation("travelcategory", validateTravelCategory)
	validate.RegisterValidation("tripstatus", validateTripStatus)
}

func validateTravelCategory(fl validator.FieldLevel) bool {
	return travelCategories[fl.Field().String()]
}

func validateTripStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "planned", "completed", "cancelled":
		return true
	}
	return false
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
