// Package services contains the service operations of the record store:
// CRUD for courses and lessons, certificate issuance and verification, and
// user registration. The services own the integrity rules — creator
// authorization, course↔lesson membership, cascading deletion — on top of
// the plain tables in the store.
package services

import (
	"sync"
	"time"

	"courseledger/internal/store"
)

// Services bundles one service per entity kind over a shared Store.
//
// All operations take a single mutex: the integrity design assumes one
// logical operation runs to completion before the next begins, and the lock
// is what provides that under a concurrent HTTP server. Reads take it too,
// so a lesson-list snapshot never interleaves with a cascade.
type Services struct {
	Courses      *CourseService
	Lessons      *LessonService
	Certificates *CertificateService
	Users        *UserService
}

func New(st *store.Store) *Services {
	mu := &sync.Mutex{}
	now := time.Now
	return &Services{
		Courses:      &CourseService{store: st, mu: mu, now: now},
		Lessons:      &LessonService{store: st, mu: mu, now: now},
		Certificates: &CertificateService{store: st, mu: mu, now: now},
		Users:        &UserService{store: st, mu: mu},
	}
}
