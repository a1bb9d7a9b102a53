package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		fee      string
		discount string
		want     string
	}{
		{name: "single fee", fee: "0.10%", discount: "10%", want: "0.09%"},
		{name: "range", fee: "0.10% to 0.20%", discount: "50%", want: "0.05% to 0.10%"},
		{name: "missing fee", fee: "N/A", discount: "10%", want: "N/A"},
		{name: "empty fee", fee: "", discount: "10%", want: ""},
		{name: "no discount", fee: "0.10%", discount: "", want: "0.10%"},
		{name: "unparseable discount", fee: "0.10%", discount: "soon", want: "0.10%"},
		{name: "unparseable fee", fee: "spread", discount: "10%", want: "spread"},
		{name: "unparseable range bound", fee: "0.10% to varies", discount: "10%", want: "0.10% to varies"},
		{name: "discount with text", fee: "0.20%", discount: "Up to 25% off", want: "0.15%"},
		{name: "rounds half away from zero", fee: "0.05%", discount: "10%", want: "0.05%"},
		{name: "zero fee", fee: "0.00% to 0.25%", discount: "20%", want: "0.00% to 0.20%"},
		{name: "exact cents", fee: "0.055%", discount: "10%", want: "0.05%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.fee, tt.discount))
		})
	}
}
