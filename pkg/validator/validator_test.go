package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string  `validate:"required,uuid"`
	Take  int     `validate:"min=0"`
	Ratio float64 `validate:"min=0,max=1"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid",
			in:   sample{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", Take: 1, Ratio: 0.5},
		},
		{
			name:    "bad uuid",
			in:      sample{ID: "nope"},
			wantErr: true,
			wantMsg: "Field: ID, Tag: uuid",
		},
		{
			name:    "several failures",
			in:      sample{Take: -1, Ratio: 2},
			wantErr: true,
			wantMsg: "Field: ID, Tag: required, Param: ; Field: Take, Tag: min, Param: 0; Field: Ratio, Tag: max, Param: 1",
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
