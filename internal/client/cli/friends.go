package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mindfulapp/mindful/internal/client/ai"
	"github.com/mindfulapp/mindful/internal/client/models"
)

// ListFriends prints the AI companion roster.
func (a *App) ListFriends(ctx context.Context) error {
	friends := a.store.Friends()
	if len(friends) == 0 {
		fmt.Println("No companions yet. Try 'addfriend'.")
		return nil
	}
	for _, f := range friends {
		fmt.Printf("[%d] %s — %s\n", f.ID, f.Name, firstLine(f.Personality))
	}
	return nil
}

// AddFriend interactively creates an AI companion persona.
func (a *App) AddFriend(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Companion name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}

	personality, err := GetMultiline(a.reader, "Personality (how should they talk?)", os.Stdout)
	if err != nil {
		return err
	}

	background, err := GetMultiline(a.reader, "Background context (optional)", os.Stdout)
	if err != nil {
		return err
	}

	friend := models.FriendProfile{
		Name:        name,
		Personality: personality,
		Context:     background,
	}

	created, err := a.store.CreateFriend(ctx, friend)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Printf("Added companion %d (%s)\n", created.ID, created.Name)
	return nil
}

// DeleteFriend removes a companion.
func (a *App) DeleteFriend(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Companion id to delete", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Println("Companion ids are numeric.")
		return nil
	}

	if err := a.store.DeleteFriend(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// Chat starts an interactive conversation with one companion. The session
// history lives only for the duration of the chat; an empty message ends it.
func (a *App) Chat(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Companion id to chat with", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Println("Companion ids are numeric.")
		return nil
	}

	friend, ok := a.store.Friend(id)
	if !ok {
		fmt.Println("No such companion.")
		return nil
	}

	gen, err := a.generator(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Chatting with %s. Empty message to stop.\n", friend.Name)

	var history []ai.ChatMessage
	for {
		message, err := getSimpleText(a.reader, "You", os.Stdout)
		if err != nil {
			return err
		}
		if message == "" {
			return nil
		}

		reply, err := gen.Chat(ctx, friend, history, message)
		if err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}

		fmt.Printf("%s: %s\n", friend.Name, reply)
		history = append(history,
			ai.ChatMessage{Role: "user", Text: message},
			ai.ChatMessage{Role: "model", Text: reply},
		)
	}
}
