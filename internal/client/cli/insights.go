package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Memories asks the collaborator to extract people, events and feelings from
// one entry into the long-term memory graph.
func (a *App) Memories(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Entry id to remember", os.Stdout)
	if err != nil {
		return err
	}

	summary, err := a.api.ProcessEntities(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println(summary.Message)
	fmt.Printf("people: %d, events: %d, feelings: %d\n",
		summary.Entities.People, summary.Entities.Events, summary.Entities.Feelings)
	return nil
}

// SmartFeed prints the collaborator's relevance-ranked task feed.
func (a *App) SmartFeed(ctx context.Context) error {
	result, err := a.api.SmartFeed(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(result.Tasks) == 0 {
		fmt.Println("Nothing ranked right now.")
		return nil
	}
	for _, t := range result.Tasks {
		fmt.Printf("%.2f  %s (%s)\n", t.RelevanceScore, t.Title, t.Priority)
	}
	for k, v := range result.Context {
		fmt.Printf("  %s: %s\n", k, v)
	}
	return nil
}

// Refresh forces an immediate wholesale refetch of every collection.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.store.RefetchAll(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Refreshed.")
	return nil
}
