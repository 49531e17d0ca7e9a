package store

import "courseledger/internal/server/models"

// Store owns the four entity tables and the shared id allocator. It is
// passed explicitly into every service, so nothing in the system touches
// hidden global state and tests can run against an in-memory instance.
type Store struct {
	Courses      Table[models.Course]
	Lessons      Table[models.Lesson]
	Certificates Table[models.Certificate]
	Users        Table[models.User]
	IDs          *Allocator
}

// NewMemory returns a Store backed entirely by in-memory tables.
func NewMemory() *Store {
	return &Store{
		Courses:      NewMemoryTable[models.Course](),
		Lessons:      NewMemoryTable[models.Lesson](),
		Certificates: NewMemoryTable[models.Certificate](),
		Users:        NewMemoryTable[models.User](),
		IDs:          NewAllocator(NewMemoryCell()),
	}
}
