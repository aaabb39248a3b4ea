// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a customer account of the bakery.
// The address is stored both as structured fields and as the legacy single-line string
// kept for accounts created before the structured form existed.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's primary contact email, used as the login identifier.
	Name         string    // The user's display name.
	Phone        string    // Contact phone number, also used for WhatsApp deep links.
	Address      string    // Legacy single-line address. Kept in sync with the structured fields.
	CEP          string    // Brazilian postal code (8 digits).
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string // Two-letter state abbreviation, e.g. "SP".
	IsAdmin      bool   // Grants access to the admin issuance and catalog workflows.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
