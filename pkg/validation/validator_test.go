package validation

import (
	"strings"
	"testing"
)

func TestValidateAnalysisRequest_Valid(t *testing.T) {
	req := &AnalysisRequest{
		SampleK:    100,
		Workers:    8,
		TopN:       10,
		MaxLevels:  20,
		Normalized: true,
	}
	if err := ValidateAnalysisRequest(req); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}

func TestValidateAnalysisRequest_Zeroes(t *testing.T) {
	// All-zero knobs mean "use defaults" and must pass
	if err := ValidateAnalysisRequest(&AnalysisRequest{}); err != nil {
		t.Errorf("Zero request should validate, got %v", err)
	}
}

func TestValidateAnalysisRequest_NegativeSampleK(t *testing.T) {
	err := ValidateAnalysisRequest(&AnalysisRequest{SampleK: -1})
	if err == nil {
		t.Fatal("Expected error for negative SampleK")
	}
	if !strings.Contains(err.Error(), "SampleK") {
		t.Errorf("Error should name the field, got %v", err)
	}
}

func TestValidateAnalysisRequest_TooManyWorkers(t *testing.T) {
	if err := ValidateAnalysisRequest(&AnalysisRequest{Workers: 10000}); err == nil {
		t.Error("Expected error for excessive worker count")
	}
}

func TestValidateAnalysisRequest_Nil(t *testing.T) {
	if err := ValidateAnalysisRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}
