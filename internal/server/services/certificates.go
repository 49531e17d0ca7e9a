package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"courseledger/internal/apperr"
	"courseledger/internal/server/models"
	"courseledger/internal/store"
)

type CertificateService struct {
	store *store.Store
	mu    *sync.Mutex
	now   func() time.Time
}

func (s *CertificateService) Get(ctx context.Context, id uint64) (models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cert, ok, err := s.store.Certificates.Get(ctx, id)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("reading certificate: %w", err)
	}
	if !ok {
		return models.Certificate{}, apperr.NotFound("certificate", id)
	}
	return cert, nil
}

// Issue creates a certificate for (userID, courseID) on behalf of the course
// creator, who acts as the issuing authority. userID is not checked against
// the user table and no completion criteria are enforced; both are explicit
// non-goals for now.
func (s *CertificateService) Issue(ctx context.Context, principal string, userID, courseID uint64) (models.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok, err := s.store.Courses.Get(ctx, courseID)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return models.Certificate{}, apperr.NotFound("course", courseID)
	}
	if err := requireCreator(course, principal); err != nil {
		return models.Certificate{}, err
	}

	id, err := s.store.IDs.NextID(ctx)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("allocating certificate id: %w", err)
	}

	cert := models.Certificate{
		ID:        id,
		CourseID:  courseID,
		UserID:    userID,
		IssueDate: s.now(),
	}
	if err := s.store.Certificates.Put(ctx, id, cert); err != nil {
		return models.Certificate{}, fmt.Errorf("writing certificate: %w", err)
	}
	return cert, nil
}

// Verify reports whether certificate certID exists and was issued to userID.
// An unknown certificate id is NotFound, not false.
func (s *CertificateService) Verify(ctx context.Context, userID, certID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cert, ok, err := s.store.Certificates.Get(ctx, certID)
	if err != nil {
		return false, fmt.Errorf("reading certificate: %w", err)
	}
	if !ok {
		return false, apperr.NotFound("certificate", certID)
	}
	return cert.UserID == userID, nil
}
