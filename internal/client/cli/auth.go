package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// Register prompts for a username, email and password and creates a new
// account via the collaborator. On success the user still has to log in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, userName, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and obtains a JWT pair from the
// collaborator. On success the session is persisted to the cache and every
// collection is refetched so the mirror starts from server truth.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getSecret("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, userName, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	log.Printf("Login successful")

	tokens := a.api.Tokens()
	if err := a.cache.SaveSession(ctx, userName, tokens.Access(), tokens.Refresh()); err != nil {
		log.Printf("error persisting session: %s", err.Error())
	}

	if err := a.store.RefetchAll(ctx); err != nil {
		log.Printf("initial refetch failed: %s", err.Error())
	}
	return nil
}

// Logout clears the in-memory JWT pair and the persisted session.
func (a *App) Logout(ctx context.Context) error {
	a.api.Tokens().Clear()
	a.userName = ""
	if err := a.cache.ClearSession(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
