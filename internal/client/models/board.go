package models

type BoardStatus string

const (
	BoardStatusPublic  BoardStatus = "PUBLIC"
	BoardStatusPrivate BoardStatus = "PRIVATE"
)

// BoardOwner is the author summary embedded in a board.
type BoardOwner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Board struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      BoardStatus `json:"status"`
	User        *BoardOwner `json:"user,omitempty"`
}

// OwnedBy reports whether the board was written by the given identity.
func (b Board) OwnedBy(id *Identity) bool {
	return id != nil && b.User != nil && b.User.ID == id.ID
}

// Author returns the owner's name, or a placeholder when the API omitted it.
func (b Board) Author() string {
	if b.User == nil || b.User.Username == "" {
		return "unknown"
	}
	return b.User.Username
}

// BoardInput is the body of POST /boards and PATCH /boards/{id}. Status is
// only sent on update.
type BoardInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      BoardStatus `json:"status,omitempty"`
}
