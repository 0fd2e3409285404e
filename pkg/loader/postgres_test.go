package loader

import (
	"context"
	"testing"
)

func TestNewPGSource_BadURL(t *testing.T) {
	if _, err := NewPGSource(context.Background(), "://not-a-url", ""); err == nil {
		t.Error("Expected error for unparseable database URL")
	}
}
