package dto_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okshouse/internal/domains/reservation/model"
	"okshouse/internal/domains/reservation/model/dto"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid range", start: "2026-09-10", end: "2026-09-12"},
		{name: "single night", start: "2026-09-10", end: "2026-09-11"},
		{name: "start equals end", start: "2026-09-10", end: "2026-09-10", wantErr: true},
		{name: "inverted range", start: "2026-09-12", end: "2026-09-10", wantErr: true},
		{name: "unparseable start", start: "10-09-2026", end: "2026-09-12", wantErr: true},
		{name: "unparseable end", start: "2026-09-10", end: "next friday", wantErr: true},
		{name: "empty values", start: "", end: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := dto.ParseDateRange(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, start.Before(end))
		})
	}
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:      "Budi",
		Phone:     "08123456789",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		Duration:  2,
	}

	t.Run("without password", func(t *testing.T) {
		reservation, err := req.ToModel("")

		require.NoError(t, err)
		assert.NotEmpty(t, reservation.ID)
		assert.Equal(t, model.StatusPending, reservation.Status)
		assert.False(t, reservation.Password.Valid)
	})

	t.Run("with stored password", func(t *testing.T) {
		reservation, err := req.ToModel("ciphertext")

		require.NoError(t, err)
		assert.True(t, reservation.Password.Valid)
		assert.Equal(t, "ciphertext", reservation.Password.String)
	})

	t.Run("two conversions get distinct ids", func(t *testing.T) {
		first, err := req.ToModel("")
		require.NoError(t, err)

		second, err := req.ToModel("")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestReservationResponse_FromModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:      "Budi",
		Phone:     "08123456789",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		Duration:  2,
	}

	reservation, err := req.ToModel("")
	require.NoError(t, err)

	reservation.Status = model.StatusConfirmed
	reservation.ConfirmedBy = sql.NullString{String: "admin-1", Valid: true}
	reservation.ConfirmedByName = sql.NullString{String: "Ana", Valid: true}

	var res dto.ReservationResponse
	res.FromModel(reservation)

	assert.Equal(t, "2026-09-10", res.StartDate)
	assert.Equal(t, "2026-09-12", res.EndDate)
	assert.Equal(t, model.StatusConfirmed, res.Status)
	// Callers see the admin's name, not the internal id.
	assert.Equal(t, "Ana", res.ConfirmedBy)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	req := dto.CreateReservationRequest{
		Name:      "Budi",
		Phone:     "08123456789",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		Duration:  2,
	}

	first, err := req.ToModel("")
	require.NoError(t, err)

	second, err := req.ToModel("")
	require.NoError(t, err)

	var res dto.GetReservationsResponse
	res.FromModels([]model.Reservation{first, second})

	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Reservations, 2)

	res.FromModels(nil)

	assert.Zero(t, res.TotalData)
	assert.Empty(t, res.Reservations)
}
