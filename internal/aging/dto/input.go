package dto

// SelectionEvent is the payload of a chart click: the display label of the
// category the user wants to inspect.
type SelectionEvent struct {
	Category string `json:"category" binding:"required"`
}
