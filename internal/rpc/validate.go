// Package rpc maps the passport.v1 wire messages to domain types and
// validates incoming requests.
package rpc

import (
	"sync"

	"github.com/go-playground/validator/v10"

	pb "github.com/dmitrijs2005/gopassport/internal/proto"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterStructValidationMapRules(map[string]string{
			"CheckpointId": "required,max=64",
			"Latitude":     "min=-90,max=90",
			"Longitude":    "min=-180,max=180",
			"AccuracyM":    "omitempty,min=0",
			"PartnerCode":  "max=64",
			"PhotoRef":     "max=512",
		}, pb.CheckInRequest{})
		v.RegisterStructValidationMapRules(map[string]string{
			"RouteId": "required,max=64",
		}, pb.ProgressRequest{})
		v.RegisterStructValidationMapRules(map[string]string{
			"ContentType": "omitempty,oneof=image/jpeg image/png image/webp",
		}, pb.PhotoUploadRequest{})
		validate = v
	})
	return validate
}

// Validate checks a request message against the rules registered for its
// type. Messages without rules always pass.
func Validate(req any) error {
	return validatorInstance().Struct(req)
}
