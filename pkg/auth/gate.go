package auth

import "github.com/GlebRadaev/gomarket/internal/domain"

// Capability names what an operation needs rather than which role performs
// it. Both the route middleware and the engines go through Allowed, so the
// role lattice lives in exactly one place.
type Capability int

const (
	// CapPurchase covers buyer self-service: creating orders, reading own orders.
	CapPurchase Capability = iota
	// CapSell covers seller self-service: submitting products, reading own listings.
	CapSell
	// CapAdmin covers every moderation, settlement and audit operation.
	CapAdmin
)

func (c Capability) String() string {
	switch c {
	case CapPurchase:
		return "purchase"
	case CapSell:
		return "sell"
	case CapAdmin:
		return "admin"
	}
	return "unknown"
}

// Allowed implements the capability lattice: admin passes every check,
// seller passes seller and buyer checks, buyer passes only buyer checks.
func Allowed(role domain.Role, cap Capability) bool {
	switch cap {
	case CapPurchase:
		return role == domain.RoleBuyer || role == domain.RoleSeller || role == domain.RoleAdmin
	case CapSell:
		return role == domain.RoleSeller || role == domain.RoleAdmin
	case CapAdmin:
		return role == domain.RoleAdmin
	}
	return false
}
