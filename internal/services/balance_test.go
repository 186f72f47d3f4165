package services

import (
	"testing"

	"freight-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestCreateBalances(t *testing.T) {
	tests := []struct {
		name      string
		req       models.CreateTripRequest
		wantParty string
		wantOwner string
	}{
		{
			name: "all fields supplied",
			req: models.CreateTripRequest{
				PartyFreight:      decPtr("1000"),
				PartyAdvance:      decPtr("200"),
				MotorOwnerBhada:   decPtr("800"),
				MotorOwnerAdvance: decPtr("300"),
			},
			wantParty: "800",
			wantOwner: "500",
		},
		{
			name:      "absent inputs treated as zero",
			req:       models.CreateTripRequest{},
			wantParty: "0",
			wantOwner: "0",
		},
		{
			name: "advance without freight goes negative",
			req: models.CreateTripRequest{
				PartyAdvance: decPtr("500"),
			},
			wantParty: "-500",
			wantOwner: "0",
		},
		{
			name: "fractional amounts stay exact",
			req: models.CreateTripRequest{
				PartyFreight: decPtr("100.10"),
				PartyAdvance: decPtr("0.01"),
			},
			wantParty: "100.09",
			wantOwner: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			party, owner := CreateBalances(&tt.req)
			assert.True(t, party.Equal(dec(tt.wantParty)), "party balance = %s, want %s", party, tt.wantParty)
			assert.True(t, owner.Equal(dec(tt.wantOwner)), "owner balance = %s, want %s", owner, tt.wantOwner)
		})
	}
}

func TestPartyBalanceAfterUpdate(t *testing.T) {
	stored := &models.Trip{
		PartyFreight: dec("1000"),
		PartyAdvance: dec("200"),
		PartyBalance: dec("800"),
	}

	t.Run("untouched inputs carry the stored balance forward", func(t *testing.T) {
		req := &models.UpdateTripRequest{Status: strPtr(models.StatusCompleted)}
		got := PartyBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("800")))
	})

	t.Run("new freight recomputes against stored advance", func(t *testing.T) {
		req := &models.UpdateTripRequest{PartyFreight: decPtr("1500")}
		got := PartyBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("1300")))
	})

	t.Run("new advance recomputes against stored freight", func(t *testing.T) {
		req := &models.UpdateTripRequest{PartyAdvance: decPtr("600")}
		got := PartyBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("400")))
	})

	t.Run("both supplied", func(t *testing.T) {
		req := &models.UpdateTripRequest{
			PartyFreight: decPtr("2000"),
			PartyAdvance: decPtr("500"),
		}
		got := PartyBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("1500")))
	})
}

func TestOwnerBalanceAfterUpdate(t *testing.T) {
	stored := &models.Trip{
		MotorOwnerBhada:   dec("900"),
		MotorOwnerAdvance: dec("400"),
		MotorOwnerBalance: dec("500"),
	}

	t.Run("untouched inputs carry the stored balance forward", func(t *testing.T) {
		req := &models.UpdateTripRequest{PartyFreight: decPtr("1234")}
		got := OwnerBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("500")))
	})

	t.Run("new bhada recomputes against stored advance", func(t *testing.T) {
		req := &models.UpdateTripRequest{MotorOwnerBhada: decPtr("1100")}
		got := OwnerBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("700")))
	})

	t.Run("new advance recomputes against stored bhada", func(t *testing.T) {
		req := &models.UpdateTripRequest{MotorOwnerAdvance: decPtr("900")}
		got := OwnerBalanceAfterUpdate(stored, req)
		assert.True(t, got.Equal(dec("0")))
	})
}

func strPtr(s string) *string {
	return &s
}
