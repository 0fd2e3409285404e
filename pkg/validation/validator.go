package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxWorkers = 256
	MaxTopN    = 10000
	MaxLevels  = 100
)

func init() {
	validate = validator.New()
}

// AnalysisRequest carries the tunable knobs of a full analysis run
type AnalysisRequest struct {
	SampleK    int   `json:"sampleK" validate:"min=0"`
	Workers    int   `json:"workers" validate:"min=0,max=256"`
	TopN       int   `json:"topN" validate:"min=0,max=10000"`
	MaxLevels  int   `json:"maxLevels" validate:"min=0,max=100"`
	Seed       int64 `json:"seed"`
	Normalized bool  `json:"normalized"`
}

// ValidateAnalysisRequest validates the knobs of an analysis run
func ValidateAnalysisRequest(req *AnalysisRequest) error {
	if req == nil {
		return errors.New("analysis request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	// SampleK larger than any realistic graph is a config mistake, but not
	// knowable here; the engine clamps it to the node count.
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
