package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/filex"
)

// ListEntries prints the journal, newest first (collaborator order).
func (a *App) ListEntries(ctx context.Context) error {
	entries := a.store.Entries()
	if len(entries) == 0 {
		fmt.Println("No entries yet. Try 'write'.")
		return nil
	}
	for _, e := range entries {
		marker := ""
		if models.IsTempID(e.ID) {
			marker = " (saving...)"
		}
		fmt.Printf("[%s]%s %s %s\n", e.ID, marker, e.Date.Format("2006-01-02"), e.Mood)
		fmt.Printf("    %s\n", firstLine(e.Content))
		if e.AIReflection != "" {
			fmt.Printf("    reflection: %s\n", firstLine(e.AIReflection))
		}
		if len(e.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(e.Tags, ", "))
		}
		if len(e.Attachments) > 0 {
			names := make([]string, len(e.Attachments))
			for i, att := range e.Attachments {
				names[i] = att.Name
			}
			fmt.Printf("    attachments: %s\n", strings.Join(names, ", "))
		}
	}
	return nil
}

// WriteEntry interactively composes a new journal entry and saves it through
// the synchronizer. The entry shows up in the list immediately under a
// temporary id.
func (a *App) WriteEntry(ctx context.Context) error {
	content, err := GetMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Println("Nothing to save.")
		return nil
	}

	mood, err := getSimpleText(a.reader, "Mood (GREAT/GOOD/NEUTRAL/STRESSED/BAD, default NEUTRAL)", os.Stdout)
	if err != nil {
		return err
	}
	if mood == "" {
		mood = string(models.MoodNeutral)
	}

	tags, err := GetTags(a.reader, os.Stdout)
	if err != nil {
		return err
	}

	attachments := []models.Attachment{}
	path, err := getSimpleText(a.reader, "Attach a file (path, optional)", os.Stdout)
	if err != nil {
		return err
	}
	if path != "" {
		name, mimeType, dataURL, err := filex.EncodeDataURL(path)
		if err != nil {
			log.Printf("Error: %s", err.Error())
			return err
		}
		attachments = append(attachments, models.Attachment{Name: name, MimeType: mimeType, DataURL: dataURL})
	}

	share, err := getSimpleText(a.reader, "Share to feed? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	entry := models.JournalEntry{
		Content:       content,
		Mood:          models.Mood(strings.ToUpper(mood)),
		Tags:          tags,
		Attachments:   attachments,
		IncludeInFeed: strings.EqualFold(share, "y"),
	}

	created, err := a.store.CreateEntry(ctx, entry)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Saved entry %s\n", created.ID)
	return nil
}

// ReflectEntry asks the AI generator for a reflection on one entry and
// attaches it via the synchronizer.
func (a *App) ReflectEntry(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Entry id to reflect on", os.Stdout)
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

	analysis, err := gen.AnalyzeEntry(ctx, entry.Content)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Sentiment: %s\n", analysis.Sentiment)
	fmt.Println(analysis.Reflection)

	if err := a.store.SetEntryReflection(ctx, id, analysis.Reflection); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

// DeleteEntry removes an entry optimistically; if the collaborator rejects
// the delete the journal is refetched wholesale.
func (a *App) DeleteEntry(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Entry id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteEntry(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// ExportAttachments writes an entry's attachments into ./attachments,
// decoding their data URLs back to files.
func (a *App) ExportAttachments(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Entry id to export attachments from", os.Stdout)
	if err != nil {
		return err
	}

	entry, ok := a.store.Entry(id)
	if !ok {
		fmt.Println("No such entry.")
		return nil
	}
	if len(entry.Attachments) == 0 {
		fmt.Println("This entry has no attachments.")
		return nil
	}

	dir, err := filex.EnsureSubDir("attachments")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, att := range entry.Attachments {
		_, data, err := filex.DecodeDataURL(att.DataURL)
		if err != nil {
			log.Printf("Error decoding %s: %s", att.Name, err.Error())
			continue
		}
		dest := filepath.Join(dir, att.Name)
		if err := os.WriteFile(dest, data, 0o660); err != nil {
			log.Printf("Error writing %s: %s", att.Name, err.Error())
			continue
		}
		fmt.Printf("Wrote %s\n", dest)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}
