package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Donghyun-K/board-client/internal/client/models"
	"github.com/Donghyun-K/board-client/internal/client/routes"
)

func (a *App) Post(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.Post(id)) {
		return nil
	}

	p, err := a.posts.Get(ctx, id)
	if err != nil {
		return err
	}

	a.printf("#%d  %s\n", p.ID, p.Title)
	author := p.Author.Name
	if author == "" {
		author = "unknown"
	}
	if p.CreatedAt.IsZero() {
		a.printf("by %s\n\n", author)
	} else {
		a.printf("by %s, %s\n\n", author, p.CreatedAt.Local().Format(time.DateTime))
	}
	a.printf("%s\n", p.Content)
	return nil
}

func (a *App) NewPost(ctx context.Context) error {
	if !a.mount(ctx, routes.NewPost) {
		return nil
	}

	in, err := a.readPost("", "")
	if err != nil {
		return err
	}
	p, err := a.posts.Create(ctx, in)
	if err != nil {
		return err
	}

	a.printf("Post #%d created.\n", p.ID)
	a.loc.Navigate(routes.Post(p.ID))
	return nil
}

func (a *App) EditPost(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.EditPost(id)) {
		return nil
	}

	cur, err := a.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.readPost(cur.Title, cur.Content)
	if err != nil {
		return err
	}
	if _, err := a.posts.Update(ctx, id, in); err != nil {
		return err
	}

	a.printf("Post #%d updated.\n", id)
	a.loc.Navigate(routes.Post(id))
	return nil
}

func (a *App) DeletePost(ctx context.Context, id int64) error {
	if !a.mount(ctx, routes.Post(id)) {
		return nil
	}

	ok, err := confirm(a.reader, fmt.Sprintf("Delete post #%d?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.posts.Delete(ctx, id); err != nil {
		return err
	}

	a.printf("Post #%d deleted.\n", id)
	a.loc.Navigate(routes.Home)
	return nil
}

// readPost prompts for a post body; empty answers keep the given defaults.
func (a *App) readPost(title, content string) (models.PostInput, error) {
	prompt := "Title"
	if title != "" {
		prompt = fmt.Sprintf("Title [%s]", title)
	}
	t, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.PostInput{}, err
	}
	c, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return models.PostInput{}, err
	}
	return models.PostInput{Title: orDefault(t, title), Content: orDefault(c, content)}, nil
}
