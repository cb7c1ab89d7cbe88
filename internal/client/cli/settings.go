package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mindfulapp/mindful/internal/client/models"
)

// Settings shows the content-generation config and lets the user change it.
// Config updates go through the synchronizer like any other mutation; the
// Gemini API key is local-only and never sent to the collaborator body.
func (a *App) Settings(ctx context.Context) error {
	cfg := a.store.Config()

	fmt.Printf("Art style:     %s\n", cfg.ArtStyle)
	fmt.Printf("Caption tone:  %s\n", cfg.CaptionTone)
	fmt.Printf("Include audio: %v\n", cfg.IncludeAudio)
	fmt.Printf("Output format: %s\n", cfg.OutputFormat)
	keyState := "not set"
	if a.geminiKey != "" {
		keyState = "set"
	}
	fmt.Printf("Gemini key:    %s\n", keyState)

	choice, err := getSimpleText(a.reader, "Change (style/tone/audio/format/key, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	switch strings.ToLower(choice) {
	case "":
		return nil

	case "style":
		v, err := getSimpleText(a.reader, "New art style", os.Stdout)
		if err != nil {
			return err
		}
		cfg.ArtStyle = v

	case "tone":
		v, err := getSimpleText(a.reader, "New caption tone", os.Stdout)
		if err != nil {
			return err
		}
		cfg.CaptionTone = v

	case "audio":
		v, err := getSimpleText(a.reader, "Include audio? (y/n)", os.Stdout)
		if err != nil {
			return err
		}
		cfg.IncludeAudio = strings.EqualFold(v, "y")

	case "format":
		v, err := getSimpleText(a.reader, "Output format (IMAGE/VIDEO)", os.Stdout)
		if err != nil {
			return err
		}
		cfg.OutputFormat = models.OutputFormat(strings.ToUpper(v))

	case "key":
		key, err := getSecret("Gemini API key", os.Stdout)
		if err != nil {
			return err
		}
		a.setGeminiKey(strings.TrimSpace(string(key)))
		fmt.Println("Key updated.")
		return nil

	default:
		fmt.Println("Unknown setting:", choice)
		return nil
	}

	if err := a.store.UpdateConfig(ctx, cfg); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	fmt.Println("Saved.")
	return nil
}
