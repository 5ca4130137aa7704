package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a customer review of a product. Name snapshots the reviewer's
// display name at submission time so later profile renames do not rewrite
// review history. At most one review exists per (user, product) pair.
type Review struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Name      string
	Rating    float64
	Comment   string
	CreatedAt time.Time
}
