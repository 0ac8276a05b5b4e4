package core

import (
	"errors"
	"testing"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    *Item
		wantErr error
	}{
		{
			name: "valid item",
			item: &Item{Name: "קפה תל אביב", Location: "תל אביב"},
		},
		{
			name: "location only",
			item: &Item{Location: "חיפה"},
		},
		{
			name:    "all text fields empty",
			item:    &Item{Types: Labels{"מסעדה"}},
			wantErr: ErrEmptyItem,
		},
		{
			name:    "nil item",
			item:    nil,
			wantErr: ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateItem() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateItem() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegion(t *testing.T) {
	tests := []struct {
		name    string
		region  *Region
		wantErr error
	}{
		{
			name:   "valid region",
			region: &Region{Name: "מרכז", Settlements: []string{"תל אביב", "רמת גן"}},
		},
		{
			name:   "no settlements is valid",
			region: &Region{Name: "דרום"},
		},
		{
			name:    "empty name",
			region:  &Region{Settlements: []string{"אילת"}},
			wantErr: ErrEmptyRegionName,
		},
		{
			name:    "nil region",
			region:  nil,
			wantErr: ErrInvalidRegion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegion(tt.region)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRegion() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRegion() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
