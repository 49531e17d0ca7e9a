package models

import "time"

// Course is the root of the ownership hierarchy. CreatorPrincipal is set at
// creation and never changes; it is the only identity allowed to mutate the
// course or anything it owns. Lessons holds owned lesson ids in append order.
type Course struct {
	ID               uint64     `json:"id"`
	CreatorPrincipal string     `json:"creator_principal"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Lessons          []uint64   `json:"lessons"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
