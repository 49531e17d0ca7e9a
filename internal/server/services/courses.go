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

type CourseService struct {
	store *store.Store
	mu    *sync.Mutex
	now   func() time.Time
}

func (s *CourseService) Get(ctx context.Context, id uint64) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok, err := s.store.Courses.Get(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return models.Course{}, apperr.NotFound("course", id)
	}
	return course, nil
}

// Add creates a course for any caller; the caller principal becomes the
// immutable creator.
func (s *CourseService) Add(ctx context.Context, principal, title, description string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.IDs.NextID(ctx)
	if err != nil {
		return models.Course{}, fmt.Errorf("allocating course id: %w", err)
	}

	course := models.Course{
		ID:               id,
		CreatorPrincipal: principal,
		Title:            title,
		Description:      description,
		Lessons:          []uint64{},
		CreatedAt:        s.now(),
	}
	if err := s.store.Courses.Put(ctx, id, course); err != nil {
		return models.Course{}, fmt.Errorf("writing course: %w", err)
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, principal string, id uint64, title, description string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok, err := s.store.Courses.Get(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return models.Course{}, apperr.NotFound("course", id)
	}
	if err := requireCreator(course, principal); err != nil {
		return models.Course{}, err
	}

	course.Title = title
	course.Description = description
	t := s.now()
	course.UpdatedAt = &t

	if err := s.store.Courses.Put(ctx, id, course); err != nil {
		return models.Course{}, fmt.Errorf("writing course: %w", err)
	}
	return course, nil
}

// Delete removes the course and every lesson it owns. Authorization is
// checked once here, not per lesson. The lesson-id list is snapshotted
// before the cascade starts; per-lesson course rewrites are skipped because
// the course record is removed at the end anyway.
func (s *CourseService) Delete(ctx context.Context, principal string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok, err := s.store.Courses.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return apperr.NotFound("course", id)
	}
	if err := requireCreator(course, principal); err != nil {
		return err
	}

	for _, lessonID := range course.Lessons {
		if _, _, err := s.store.Lessons.Delete(ctx, lessonID); err != nil {
			return apperr.PartialWrite("course", id, fmt.Errorf("deleting lesson %d: %w", lessonID, err))
		}
	}
	if _, _, err := s.store.Courses.Delete(ctx, id); err != nil {
		return apperr.PartialWrite("course", id, err)
	}
	return nil
}
