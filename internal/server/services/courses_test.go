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

func TestAddCourse_SetsCreatorAndFreshID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	seen := map[uint64]bool{}
	for _, caller := range []string{"alice", "bob", "alice"} {
		course, err := s.Courses.Add(ctx, caller, "t", "d")
		require.NoError(t, err)
		assert.Equal(t, caller, course.CreatorPrincipal)
		assert.False(t, seen[course.ID], "id %d reused", course.ID)
		seen[course.ID] = true
		assert.Empty(t, course.Lessons)
		assert.False(t, course.CreatedAt.IsZero())
		assert.Nil(t, course.UpdatedAt)
	}
}

func TestGetCourse_NotFound(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	_, err := s.Courses.Get(ctx, 99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateCourse_ByCreator(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	course, err := s.Courses.Add(ctx, "alice", "old title", "old desc")
	require.NoError(t, err)

	updated, err := s.Courses.Update(ctx, "alice", course.ID, "new title", "new desc")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new desc", updated.Description)
	assert.Equal(t, "alice", updated.CreatorPrincipal)
	assert.Equal(t, course.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	got, err := s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateCourse_NotFoundBeforeNotCreator(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	// Unknown id fails NotFound no matter who calls.
	_, err := s.Courses.Update(ctx, "anyone", 42, "t", "d")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	_, err = s.Courses.Update(ctx, "mallory", course.ID, "t2", "d2")
	assert.ErrorIs(t, err, apperr.ErrNotCreator)

	// Nothing changed.
	got, err := s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestDeleteCourse_NotCreator(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)

	err = s.Courses.Delete(ctx, "mallory", course.ID)
	assert.ErrorIs(t, err, apperr.ErrNotCreator)

	_, err = s.Courses.Get(ctx, course.ID)
	assert.NoError(t, err)
}

func TestDeleteCourse_CascadesToLessons(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t)
	useFixedClock(s)

	course, err := s.Courses.Add(ctx, "alice", "Algebra I", "intro algebra")
	require.NoError(t, err)

	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "Lesson 1", "c1"))
	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "Lesson 2", "c2"))

	course, err = s.Courses.Get(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, course.Lessons, 2)
	assert.Less(t, course.Lessons[0], course.Lessons[1], "lesson ids in creation order")
	lessonIDs := append([]uint64(nil), course.Lessons...)

	require.NoError(t, s.Courses.Delete(ctx, "alice", course.ID))

	_, err = s.Courses.Get(ctx, course.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	for _, id := range lessonIDs {
		_, err = s.Lessons.Get(ctx, id)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	}
}

func TestDeleteCourse_PartialWriteWhenCascadeFails(t *testing.T) {
	ctx := context.Background()
	s, st := newTestServices(t)

	course, err := s.Courses.Add(ctx, "alice", "t", "d")
	require.NoError(t, err)
	require.NoError(t, s.Lessons.Add(ctx, "alice", course.ID, "L1", "c"))

	boom := errors.New("boom")
	st.Lessons = &flakyTable[models.Lesson]{Table: st.Lessons, delErr: boom}

	err = s.Courses.Delete(ctx, "alice", course.ID)
	require.ErrorIs(t, err, apperr.ErrPartialWrite)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperr.ErrNotFound)

	// The course record is still there; the operation did not pretend to
	// finish.
	_, err = s.Courses.Get(ctx, course.ID)
	assert.NoError(t, err)
}
