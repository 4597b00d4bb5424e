package service

import (
	"testing"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
)

func TestNextProductCode(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
	}{
		{"empty set", nil, "PHN-001"},
		{"single existing", []string{"PHN-001"}, "PHN-002"},
		{"gap in sequence", []string{"PHN-001", "PHN-007"}, "PHN-008"},
		{"other prefixes ignored", []string{"LPT-003", "PHN-002"}, "PHN-003"},
		{"malformed suffix counts as zero", []string{"PHN-abc"}, "PHN-001"},
		{"extra dash counts as zero", []string{"PHN-1-2", "PHN-004"}, "PHN-005"},
		{"rolls past three digits", []string{"PHN-999"}, "PHN-1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]model.Item, 0, len(tt.codes))
			for _, code := range tt.codes {
				items = append(items, model.Item{ProductCode: code})
			}
			if got := nextProductCode("PHN", items); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}
