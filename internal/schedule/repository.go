package schedule

import "context"

// Repository defines the storage interface for committed selections.
type Repository interface {
	// Load returns every stored block grouped by day.
	Load(ctx context.Context) (SelectedTimes, error)

	// SaveDay replaces the stored blocks of a day with blocks.
	// An empty set removes the day.
	SaveDay(ctx context.Context, day DayKey, blocks DayBlocks) error

	// DeleteDay removes all stored blocks of a day.
	DeleteDay(ctx context.Context, day DayKey) error

	// Clear removes every stored block.
	Clear(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}
