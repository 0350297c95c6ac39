// Package routes names the screens of the client. Paths follow the web
// application the client mirrors so logs and prompts read the same.
package routes

import "strconv"

const (
	Home     = "/"
	Login    = "/login"
	Signup   = "/signup"
	NewBoard = "/boards/new"
	NewPost  = "/posts/new"
)

func Board(id int64) string     { return "/boards/" + strconv.FormatInt(id, 10) }
func EditBoard(id int64) string { return Board(id) + "/edit" }
func Post(id int64) string      { return "/posts/" + strconv.FormatInt(id, 10) }
func EditPost(id int64) string  { return Post(id) + "/edit" }

// Public reports whether path can be shown without a session.
func Public(path string) bool {
	return path == Login || path == Signup
}
