package validator_test

import (
	"strings"
	"testing"

	"okshouse/shared/validator"
)

type reservationRequest struct {
	Name      string `validate:"required" json:"name"`
	Phone     string `validate:"required" json:"phone"`
	StartDate string `validate:"required,date" json:"start_date"`
	EndDate   string `validate:"required,date" json:"end_date"`
	Duration  int    `validate:"gte=1" json:"duration"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *reservationRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &reservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Duration:  2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &reservationRequest{
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "date with wrong layout",
			data: &reservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "10-09-2026",
				EndDate:   "2026-09-12",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "duration below minimum",
			data: &reservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Duration:  0,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid date",
			field:       "2026-09-10",
			tag:         "date",
			expectError: false,
		},
		{
			name:        "invalid date",
			field:       "next friday",
			tag:         "date",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "confirmed",
			tag:         "oneof=pending confirmed cancelled",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "approved",
			tag:         "oneof=pending confirmed cancelled",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Budi","phone":"08123456789","start_date":"2026-09-10","end_date":"2026-09-12","duration":2}`,
			expectError: false,
		},
		{
			name:        "invalid field value",
			jsonBody:    `{"name":"Budi","phone":"08123456789","start_date":"someday","end_date":"2026-09-12","duration":2}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Budi","phone":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data reservationRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &reservationRequest{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
