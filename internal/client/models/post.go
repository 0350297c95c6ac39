package models

import "time"

type PostAuthor struct {
	Name string `json:"name"`
}

type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PostInput is the body of POST /posts and PUT /posts/{id}.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
