package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseledger/internal/apperr"
	"courseledger/internal/server/models"
)

func countLessons(t *testing.T, s *Services, courseID uint64) int {
	t.Helper()
	course, err := s.Courses.Get(context.Background(), courseID)
	require.NoError(t, err)
	return len(course.Lessons)
}

func TestAddLesson_AppendsToOwnerExactlyOnce(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "L1", "content"))

	got, err := s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, got.Lessons, 1)
	require.NotNil(t, got.UpdatedAt)

	lesson, err := s.Lessons.Get(ctx, got.Lessons[0])
	require.NoError(t, err)
	assert.Equal(t, course.ID, lesson.CourseID)
	assert.Equal(t, "L1", lesson.Title)
	assert.Equal(t, "content", lesson.Content)
	assert.Nil(t, lesson.UpdatedAt)
}

func TestAddLesson_Preconditions(t *testing.T) {
	ctx := context.Background()
	s, st := newTestServices(t)

	// Unknown course.
	err := s.Lessons.Add(ctx, "anyone", 42, "L", "c")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	// Wrong caller.
	err = s.Lessons.Add(ctx, "mallory", course.ID, "L", "c")
	assert.ErrorIs(t, err, apperr.ErrNotCreator)

	// Neither attempt left a lesson behind.
	var n int
	require.NoError(t, st.Lessons.Iterate(ctx, func(uint64, models.Lesson) bool {
		n++
		return true
	}))
	assert.Zero(t, n)
	assert.Zero(t, countLessons(t, s, course.ID))
}

func TestUpdateLesson_ByCourseCreator(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)
	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "L1", "old"))

	course, err = s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	lessonID := course.Lessons[0]

	_, err = s.Lessons.Update(ctx, "mallory", lessonID, "L1'", "new")
	assert.ErrorIs(t, err, apperr.ErrNotCreator)

	updated, err := s.Lessons.Update(ctx, "alice", lessonID, "L1'", "new")
	require.NoError(t, err)
	assert.Equal(t, "L1'", updated.Title)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, course.ID, updated.CourseID)
	require.NotNil(t, updated.UpdatedAt)

	_, err = s.Lessons.Update(ctx, "alice", 9999, "x", "y")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteLesson_RemovesRecordAndMembership(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)
	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "L1", "c1"))
	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "L2", "c2"))

	course, err = s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, course.Lessons, 2)
	first, second := course.Lessons[0], course.Lessons[1]

	err = s.Lessons.Delete(ctx, "mallory", first)
	assert.ErrorIs(t, err, apperr.ErrNotCreator)

	require.NoError(t, s.Lessons.Delete(ctx, "alice", first))

	_, err = s.Lessons.Get(ctx, first)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	course, err = s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{second}, course.Lessons)

	err = s.Lessons.Delete(ctx, "alice", first)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddLesson_PartialWriteWhenOwnerUpdateFails(t *testing.T) {
	ctx := context.Background()
	s, st := newTestServices(t)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	boom := errors.New("boom")
	flaky := &flakyTable[models.Course]{Table: st.Courses, putErr: boom}
	st.Courses = flaky

	err = s.Lessons.Add(ctx, "alice", course.ID, "L1", "c")
	require.ErrorIs(t, err, apperr.ErrPartialWrite)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)

	// The lesson record was written before the failure; the caller must be
	// able to tell this from "nothing happened".
	var orphans int
	require.NoError(t, st.Lessons.Iterate(ctx, func(uint64, models.Lesson) bool {
		orphans++
		return true
	}))
	assert.Equal(t, 1, orphans)
	assert.Zero(t, countLessons(t, s, course.ID))
}

func TestAddLesson_PartialWriteWhenOwnerVanishes(t *testing.T) {
	ctx := context.Background()
	s, st := newTestServices(t)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	// First Get (the precondition) sees the course, the re-read after the
	// lesson write does not.
	st.Courses = &flakyTable[models.Course]{Table: st.Courses, missFrom: 2}

	err = s.Lessons.Add(ctx, "alice", course.ID, "L1", "c")
	require.ErrorIs(t, err, apperr.ErrPartialWrite)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}
