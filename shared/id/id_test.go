package id_test

import (
	"adbook/shared/id"
	"strings"
	"testing"
)

func TestNew_Prefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "deal prefix", prefix: "DL"},
		{name: "placement prefix", prefix: "PL"},
		{name: "attachment prefix", prefix: "AT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := id.New(tt.prefix)

			if !strings.HasPrefix(got, tt.prefix+"-") {
				t.Errorf("expected id to start with %q, got %s", tt.prefix+"-", got)
			}

			if parts := strings.Split(got, "-"); len(parts) != 3 {
				t.Errorf("expected id to have 3 segments, got %s", got)
			}
		})
	}
}

func TestNew_NoCollisionWithinMillisecond(t *testing.T) {
	seen := make(map[string]struct{})

	for range 1000 {
		generated := id.New("DL")
		if _, ok := seen[generated]; ok {
			t.Fatalf("duplicate id generated: %s", generated)
		}

		seen[generated] = struct{}{}
	}
}
