package dto

// CreateTodoRequest is the JSON body for POST /api/todos.
// A user_id field in the body, if present, is ignored: the owner
// always comes from the verified token.
type CreateTodoRequest struct {
	Todo      string `json:"todo" binding:"required"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest is the JSON body for PUT /api/todos/:id.
// Full replace of the mutable fields; user_id cannot be changed.
type UpdateTodoRequest struct {
	Todo      string `json:"todo" binding:"required"`
	Completed bool   `json:"completed"`
}

// TodoResponse is the JSON shape of a todo row.
type TodoResponse struct {
	ID        int64  `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int64  `json:"user_id"`
}
