package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type productInput struct {
	Name      string   `json:"name" validate:"required"`
	Quantity  int      `json:"quantity" validate:"min=1"`
	Unit      string   `json:"unit" validate:"required,unit"`
	Timeframe []string `json:"pickupTimeframe" validate:"dive,timeframe"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   productInput
		wantErr []string
	}{
		{
			name:  "valid",
			input: productInput{Name: "Apples", Quantity: 3, Unit: "POUNDS", Timeframe: []string{"MORNING"}},
		},
		{
			name:    "missing name and bad quantity",
			input:   productInput{Quantity: 0, Unit: "POUNDS"},
			wantErr: []string{"name is required", "quantity must be at least 1"},
		},
		{
			name:    "unknown enum values",
			input:   productInput{Name: "Apples", Quantity: 1, Unit: "BUSHELS", Timeframe: []string{"NIGHT"}},
			wantErr: []string{"unit has an invalid unit value", "has an invalid timeframe value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}

			if assert.Error(t, err) {
				for _, want := range tt.wantErr {
					assert.Contains(t, err.Error(), want)
				}
			}
		})
	}
}
