package services

import (
	"courseledger/internal/apperr"
	"courseledger/internal/server/models"
)

// requireCreator is the authorization guard: every mutation reachable from a
// course passes through it before any write. Read-only lookups do not.
func requireCreator(c models.Course, principal string) error {
	if c.CreatorPrincipal != principal {
		return apperr.NotCreator("course", c.ID)
	}
	return nil
}
