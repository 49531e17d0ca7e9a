package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"courseledger/internal/apperr"
	"courseledger/internal/server/models"
	"courseledger/internal/store"
)

type LessonService struct {
	store *store.Store
	mu    *sync.Mutex
	now   func() time.Time
}

func (s *LessonService) Get(ctx context.Context, id uint64) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok, err := s.store.Lessons.Get(ctx, id)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("reading lesson: %w", err)
	}
	if !ok {
		return models.Lesson{}, apperr.NotFound("lesson", id)
	}
	return lesson, nil
}

// Add creates a lesson under courseID and records it in the owning course's
// lesson list. The lesson write and the course update are two separate
// writes; a failure between them is reported as PartialWrite, never as
// NotFound, so the caller knows the lesson record may already exist.
func (s *LessonService) Add(ctx context.Context, principal string, courseID uint64, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok, err := s.store.Courses.Get(ctx, courseID)
	if err != nil {
		return fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return apperr.NotFound("course", courseID)
	}
	if err := requireCreator(course, principal); err != nil {
		return err
	}

	id, err := s.store.IDs.NextID(ctx)
	if err != nil {
		return fmt.Errorf("allocating lesson id: %w", err)
	}

	lesson := models.Lesson{
		ID:        id,
		CourseID:  courseID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.Lessons.Put(ctx, id, lesson); err != nil {
		return fmt.Errorf("writing lesson: %w", err)
	}

	// Re-read the owner before touching its list; from here on the lesson
	// record is already durable.
	course, ok, err = s.store.Courses.Get(ctx, courseID)
	if err != nil {
		return apperr.PartialWrite("lesson", id, err)
	}
	if !ok {
		return apperr.PartialWrite("lesson", id, fmt.Errorf("owning course with id=%d no longer exists", courseID))
	}

	if !slices.Contains(course.Lessons, id) {
		course.Lessons = append(course.Lessons, id)
	}
	t := s.now()
	course.UpdatedAt = &t

	if err := s.store.Courses.Put(ctx, courseID, course); err != nil {
		return apperr.PartialWrite("lesson", id, err)
	}
	return nil
}

func (s *LessonService) Update(ctx context.Context, principal string, id uint64, title, content string) (models.Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok, err := s.store.Lessons.Get(ctx, id)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("reading lesson: %w", err)
	}
	if !ok {
		return models.Lesson{}, apperr.NotFound("lesson", id)
	}

	course, ok, err := s.store.Courses.Get(ctx, lesson.CourseID)
	if err != nil {
		return models.Lesson{}, fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return models.Lesson{}, apperr.NotFound("course", lesson.CourseID)
	}
	if err := requireCreator(course, principal); err != nil {
		return models.Lesson{}, err
	}

	lesson.Title = title
	lesson.Content = content
	t := s.now()
	lesson.UpdatedAt = &t

	if err := s.store.Lessons.Put(ctx, id, lesson); err != nil {
		return models.Lesson{}, fmt.Errorf("writing lesson: %w", err)
	}
	return lesson, nil
}

// Delete removes the lesson and takes its id out of the owning course's
// list.
func (s *LessonService) Delete(ctx context.Context, principal string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lesson, ok, err := s.store.Lessons.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("reading lesson: %w", err)
	}
	if !ok {
		return apperr.NotFound("lesson", id)
	}

	course, ok, err := s.store.Courses.Get(ctx, lesson.CourseID)
	if err != nil {
		return fmt.Errorf("reading course: %w", err)
	}
	if !ok {
		return apperr.NotFound("course", lesson.CourseID)
	}
	if err := requireCreator(course, principal); err != nil {
		return err
	}

	if _, _, err := s.store.Lessons.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting lesson: %w", err)
	}

	course, ok, err = s.store.Courses.Get(ctx, lesson.CourseID)
	if err != nil {
		return apperr.PartialWrite("lesson", id, err)
	}
	if !ok {
		return apperr.PartialWrite("lesson", id, fmt.Errorf("owning course with id=%d no longer exists", lesson.CourseID))
	}

	course.Lessons = slices.DeleteFunc(course.Lessons, func(lid uint64) bool { return lid == id })
	t := s.now()
	course.UpdatedAt = &t

	if err := s.store.Courses.Put(ctx, course.ID, course); err != nil {
		return apperr.PartialWrite("lesson", id, err)
	}
	return nil
}
