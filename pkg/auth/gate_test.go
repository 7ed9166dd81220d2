package auth

import (
	"testing"

	"github.com/GlebRadaev/gomarket/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		cap  Capability
		want bool
	}{
		{name: "Buyer can purchase", role: domain.RoleBuyer, cap: CapPurchase, want: true},
		{name: "Buyer cannot sell", role: domain.RoleBuyer, cap: CapSell, want: false},
		{name: "Buyer cannot administer", role: domain.RoleBuyer, cap: CapAdmin, want: false},
		{name: "Seller can purchase", role: domain.RoleSeller, cap: CapPurchase, want: true},
		{name: "Seller can sell", role: domain.RoleSeller, cap: CapSell, want: true},
		{name: "Seller cannot administer", role: domain.RoleSeller, cap: CapAdmin, want: false},
		{name: "Admin can purchase", role: domain.RoleAdmin, cap: CapPurchase, want: true},
		{name: "Admin can sell", role: domain.RoleAdmin, cap: CapSell, want: true},
		{name: "Admin can administer", role: domain.RoleAdmin, cap: CapAdmin, want: true},
		{name: "Unknown role denied", role: domain.Role("moderator"), cap: CapPurchase, want: false},
		{name: "Empty role denied", role: domain.Role(""), cap: CapAdmin, want: false},
		{name: "Unknown capability denied", role: domain.RoleAdmin, cap: Capability(99), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.cap))
		})
	}
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "purchase", CapPurchase.String())
	assert.Equal(t, "sell", CapSell.String())
	assert.Equal(t, "admin", CapAdmin.String())
	assert.Equal(t, "unknown", Capability(99).String())
}
