package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// ListFeed prints the generated social feed.
func (a *App) ListFeed(ctx context.Context) error {
	posts := a.store.Posts()
	if len(posts) == 0 {
		fmt.Println("The feed is empty. Try 'share'.")
		return nil
	}
	for _, p := range posts {
		heart := " "
		if p.IsLiked {
			heart = "♥"
		}
		fmt.Printf("[%s] %s %d likes %s  (entry %s, %s)\n", p.ID, heart, p.Likes, firstLine(p.Caption), p.EntryID, p.MoodTag)
	}
	return nil
}

// SharePost turns a journal entry into a feed post: the AI generator writes
// the caption and visual prompt using the current content config, then the
// post is saved through the synchronizer.
func (a *App) SharePost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Entry id to share", os.Stdout)
	if err != nil {
		return err
	}

	entry, ok := a.store.Entry(id)
	if !ok {
		fmt.Println("No such entry.")
		return nil
	}

	gen, err := a.generator(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	cfg := a.store.Config()
	content, err := gen.GenerateFeedPost(ctx, entry.Content, entry.Mood, cfg)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	post := models.FeedPost{
		EntryID: entry.ID,
		Caption: content.Caption,
		MoodTag: string(entry.Mood),
	}

	created, err := a.store.CreatePost(ctx, post)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Shared as post %s\n", created.ID)
	fmt.Printf("Caption: %s\n", content.Caption)
	fmt.Printf("Visual: %s\n", content.VisualPrompt)
	return nil
}

// LikePost toggles the like on a post. The counter moves immediately and
// snaps back if the collaborator rejects the change.
func (a *App) LikePost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Post id to like/unlike", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.LikePost(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// DeletePost removes a post; on collaborator failure the feed is refetched.
func (a *App) DeletePost(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Post id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeletePost(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
