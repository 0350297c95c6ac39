package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/client/routes"
)

// Boards is the home screen: every board visible to the caller.
func (a *App) Boards(ctx context.Context) error {
	if !a.mount(ctx, routes.Home) {
		return nil
	}

	boards, err := a.boards.List(ctx)
	if err != nil {
		return err
	}

	me := a.sessions.Snapshot().User
	name := "…"
	if me != nil {
		name = me.Username
	}
	a.printf("Welcome, %s!\n", name)

	if len(boards) == 0 {
		a.printf("No boards yet. Create one with 'newboard'.\n")
		return nil
	}
	for _, b := range boards {
		mark := ""
		if b.OwnedBy(me) {
			mark = " *"
		}
		a.printf("#%d  %s  [%s] by %s%s\n", b.ID, b.Title, b.Status, b.Author(), mark)
		if b.Description != "" {
			a.printf("      %s\n", firstLine(b.Description))
		}
	}
	return nil
}

func (a *App) Board(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.Board(id)) {
		return nil
	}

	b, err := a.boards.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printBoard(b)
	return nil
}

func (a *App) NewBoard(ctx context.Context) error {
	if !a.mount(ctx, routes.NewBoard) {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	b, err := a.boards.Create(ctx, models.BoardInput{Title: title, Description: description})
	if err != nil {
		return err
	}

	a.printf("Board #%d created.\n", b.ID)
	a.loc.Navigate(routes.Home)
	return nil
}

// EditBoard loads the board and lets every field be changed; an empty answer
// keeps the current value.
func (a *App) EditBoard(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.EditBoard(id)) {
		return nil
	}

	cur, err := a.boards.Get(ctx, id)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", cur.Title), a.out)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, fmt.Sprintf("Status PUBLIC|PRIVATE [%s]", cur.Status), a.out)
	if err != nil {
		return err
	}

	in := models.BoardInput{
		Title:       orDefault(title, cur.Title),
		Description: orDefault(description, cur.Description),
		Status:      models.BoardStatus(strings.ToUpper(orDefault(status, string(cur.Status)))),
	}
	if _, err := a.boards.Update(ctx, id, in); err != nil {
		return err
	}

	a.printf("Board #%d updated.\n", id)
	a.loc.Navigate(routes.Board(id))
	return nil
}

func (a *App) DeleteBoard(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.Board(id)) {
		return nil
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete board #%d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.boards.Delete(ctx, id); err != nil {
		return err
	}

	a.printf("Board #%d deleted.\n", id)
	a.loc.Navigate(routes.Home)
	return nil
}

func (a *App) printBoard(b *models.Board) {
	a.printf("#%d  %s\n", b.ID, b.Title)
	a.printf("by %s  [%s]\n\n", b.Author(), b.Status)
	a.printf("%s\n", b.Description)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
