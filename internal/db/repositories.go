package db

// Repositories provides access to all database repositories
type Repositories struct {
	Overlays *OverlayRepository
}

// NewRepositories creates a new repository collection
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		Overlays: NewOverlayRepository(db),
	}
}
