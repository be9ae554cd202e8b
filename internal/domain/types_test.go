package domain

import "testing"

func TestTotalCost(t *testing.T) {
	tests := []struct {
		name  string
		labor float64
		parts []PartUsage
		want  float64
	}{
		{"labor only", 120, nil, 120},
		{"zero everything", 0, nil, 0},
		{
			"labor plus parts",
			100,
			[]PartUsage{
				{PartID: "p1", Quantity: 2, UnitPrice: 12.5},
				{PartID: "p2", Quantity: 1, UnitPrice: 45},
			},
			170,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalCost(tt.labor, tt.parts); got != tt.want {
				t.Errorf("TotalCost() = %v, want %v", got, tt.want)
			}
		})
	}
}
