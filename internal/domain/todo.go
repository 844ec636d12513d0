package domain

// Todo is the domain entity for a single task.
// Does not depend on Gin, Postgres or Redis.
type Todo struct {
	ID        int64
	Todo      string
	Completed bool
	UserID    int64
}
