// Package ai is the client for the generative-content collaborator (Gemini).
// Requests carry entry content and settings; responses are structured JSON
// decoded after stripping markdown fences. The collaborator is a black box:
// this package owns only prompt construction, transport, and decoding.
package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mindfulapp/mindful/internal/client/models"
	"github.com/mindfulapp/mindful/internal/common"
	"github.com/mindfulapp/mindful/internal/logging"
)

// defaultModel is the generation model used for all operations.
const defaultModel = "gemini-2.0-flash"

// Generator wraps the Gemini client for the app's generation operations.
type Generator struct {
	client *genai.Client
	model  string
	log    logging.Logger
}

// New builds a Generator. An empty apiKey yields ErrMissingAPIKey with an
// actionable message, without touching the network.
func New(ctx context.Context, apiKey string, log logging.Logger) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set it with the settings command or the GEMINI_API_KEY environment variable", common.ErrMissingAPIKey)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	if log == nil {
		log = logging.NewDefault()
	}
	return &Generator{client: client, model: defaultModel, log: log}, nil
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", common.ErrorInternal)
	}
	return text, nil
}

// AnalyzeEntry returns sentiment, a short reflection, and tags for the text.
func (g *Generator) AnalyzeEntry(ctx context.Context, text string) (EntryAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze this journal entry: %q
Return a raw JSON object with:
- sentiment (string)
- reflection (string, 2-3 sentences)
- tags (array of strings)
Do not use markdown.`, text)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return EntryAnalysis{}, err
	}
	var out EntryAnalysis
	if err := decodeModelJSON(raw, &out); err != nil {
		return EntryAnalysis{}, err
	}
	return out, nil
}

// GenerateStudyPlan turns a goal and timeframe into concrete tasks.
func (g *Generator) GenerateStudyPlan(ctx context.Context, goal, timeframe string) (StudyPlan, error) {
	if timeframe == "" {
		timeframe = "next few days"
	}
	prompt := fmt.Sprintf(`Create a concrete list of study tasks for: %q. Timeframe: %s.
Return ONLY a raw JSON object with a 'tasks' key.
Each task object must have: 'title', 'priority' (HIGH/MEDIUM/LOW), 'subject'.
Do not use markdown.`, goal, timeframe)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return StudyPlan{}, err
	}
	var out StudyPlan
	if err := decodeModelJSON(raw, &out); err != nil {
		return StudyPlan{}, err
	}
	return out, nil
}

// GenerateFeedPost produces a visual prompt and caption for an entry, styled
// by the content config.
func (g *Generator) GenerateFeedPost(ctx context.Context, content string, mood models.Mood, cfg models.ContentConfig) (PostContent, error) {
	prompt := fmt.Sprintf(`Analyze this entry. Mood: %s.
Art Style: %s.
Tone: %s.

Return raw JSON with:
- visualPrompt (string for image generation)
- caption (string for social media)
Do not use markdown.
Entry: %q`, mood, cfg.ArtStyle, cfg.CaptionTone, content)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return PostContent{}, err
	}
	var out PostContent
	if err := decodeModelJSON(raw, &out); err != nil {
		return PostContent{}, err
	}
	return out, nil
}

// ExtractEntities pulls people, events, and feelings out of entry text.
func (g *Generator) ExtractEntities(ctx context.Context, text string) (Extraction, error) {
	prompt := `You are an expert Psychologist and Data Scientist. Analyze the following diary entry.
Extract unique entities into JSON format.
For 'People', infer the relationship, sentiment (Positive/Neutral/Negative), and summarize interaction context.
For 'Feelings', rate intensity 1-10 and identify root cause.
For 'Events', categorize them and identify date/time if possible.

Return ONLY a raw JSON object with keys: 'people', 'events', 'feelings'.
Each key should be an array. If no entities of a type are found, return an empty array.
Do not use markdown.

Entry:
` + text

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return Extraction{}, err
	}
	var out Extraction
	if err := decodeModelJSON(raw, &out); err != nil {
		return Extraction{}, err
	}
	out.Normalize()
	return out, nil
}

// Chat sends one message in a friend conversation and returns the reply.
// The friend's persona becomes the system instruction.
func (g *Generator) Chat(ctx context.Context, friend models.FriendProfile, history []ChatMessage, message string) (string, error) {
	system := fmt.Sprintf("You are %s. Personality: %s. Context: %s.",
		friend.Name, friend.Personality, friend.Context)

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleModel)
		if m.Role == "user" {
			role = genai.RoleUser
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("%w: empty model response", common.ErrorInternal)
	}
	return reply, nil
}
