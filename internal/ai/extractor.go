// Package ai extracts player records from freeform text or squad photos
// using a generative-AI completion endpoint.
//
// The model response is untrusted: only the first JSON array found in it is
// parsed, everything else is discarded, and every field of every record is
// normalized onto the Player shape with fixed fallbacks.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dugout-app/backend/internal/career"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

var (
	// ErrNoCredential is returned before any network call when the API key
	// is not configured.
	ErrNoCredential = errors.New("no AI API key is configured, set GEMINI_API_KEY to use the squad importer")

	// ErrService is returned when the completion endpoint fails.
	ErrService = errors.New("the AI service could not be reached")
)

// APIKeyEnv is the environment variable holding the credential for the
// completion endpoint.
const APIKeyEnv = "GEMINI_API_KEY"

const defaultModel = "gemini-2.0-flash"

// Fallback values for missing or implausible fields of extracted records.
const (
	fallbackName        = "Unknown Player"
	fallbackPosition    = "CM"
	fallbackNationality = "Unknown"
	fallbackOverall     = 70
	fallbackValue       = 1_000_000
	fallbackWage        = 10_000

	// fallbackAgeText and fallbackAgeImage differ because text input tends
	// to describe senior squads while photos often include youth players.
	fallbackAgeText  = 25
	fallbackAgeImage = 20

	minAge     = 14
	minOverall = 40
)

const instruction = `Extract every football player from the input. ` +
	`Respond with only a JSON array, one object per player, with the keys ` +
	`"name", "position", "age", "overall", "nationality", "value", "wage". ` +
	`Positions are codes like GK, CB, CM, ST. Values and wages are plain integers in euros.`

// completer is the narrow surface of the genai client that the extractor
// uses. Tests inject fakes through it.
type completer interface {
	Complete(ctx context.Context, parts []*genai.Part) (string, error)
}

// Extractor turns freeform model output into normalized players.
type Extractor struct {
	client completer
}

// NewExtractor builds an Extractor backed by the Gemini API. It fails with
// ErrNoCredential when the API key environment variable is unset.
func NewExtractor(ctx context.Context) (*Extractor, error) {
	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating AI client: %w", err)
	}

	return &Extractor{client: &genaiCompleter{client: client, model: defaultModel}}, nil
}

type genaiCompleter struct {
	client *genai.Client
	model  string
}

func (g *genaiCompleter) Complete(ctx context.Context, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}

	return result.Text(), nil
}

// FromText extracts players from pasted roster text. An empty result with a
// nil error means the model found nothing, which is not a failure.
func (e *Extractor) FromText(ctx context.Context, text string) ([]career.Player, error) {
	return e.extract(ctx, []*genai.Part{
		genai.NewPartFromText(instruction),
		genai.NewPartFromText(text),
	}, fallbackAgeText)
}

// FromImage extracts players from a squad photo or screenshot. The image
// payload is raw bytes with its MIME type.
func (e *Extractor) FromImage(ctx context.Context, data []byte, mimeType string) ([]career.Player, error) {
	return e.extract(ctx, []*genai.Part{
		genai.NewPartFromText(instruction),
		genai.NewPartFromBytes(data, mimeType),
	}, fallbackAgeImage)
}

func (e *Extractor) extract(ctx context.Context, parts []*genai.Part, fallbackAge int) ([]career.Player, error) {
	response, err := e.client.Complete(ctx, parts)
	if err != nil {
		log.Error().Err(err).Msg("AI completion failed")
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}

	extractionCount.Inc()

	records := parseRecords(response)

	players := make([]career.Player, 0, len(records))
	for _, r := range records {
		players = append(players, normalize(r, fallbackAge))
	}

	return players, nil
}

// record is one raw object of the extracted array. Fields are read from a
// generic map so that a single wrong type never discards the whole record,
// only the field.
type record map[string]any

// parseRecords pulls the first JSON array out of the response and parses
// it. Any parse failure degrades to an empty list, the caller reports
// "nothing found" instead of an error. Elements that are not objects are
// skipped.
func parseRecords(response string) []record {
	raw := ExtractArray(response)
	if raw == "" {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		log.Debug().Err(err).Msg("discarding unparseable AI response")
		return nil
	}

	records := make([]record, 0, len(elements))
	for _, e := range elements {
		var r record
		if err := json.Unmarshal(e, &r); err != nil {
			continue
		}
		records = append(records, r)
	}

	return records
}

func (r record) str(key string) string {
	s, _ := r[key].(string)
	return s
}

// num reads a numeric field, tolerating numbers that the model quoted as
// strings.
func (r record) num(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// ExtractArray returns the substring of s from the first '[' to its
// matching ']'. Brackets inside JSON strings are ignored. It returns ""
// when no complete array exists.
func ExtractArray(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start != -1 {
				inString = true
			}
		case '[':
			if start == -1 {
				start = i
			}
			depth++
		case ']':
			if start == -1 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

// normalize maps one raw record onto a Player, substituting fallbacks for
// missing or implausible fields and assigning a fresh ID. IDs from the
// source data are never reused.
func normalize(r record, fallbackAge int) career.Player {
	p := career.Player{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(r.str("name")),
		Position:    strings.ToUpper(strings.TrimSpace(r.str("position"))),
		Nationality: strings.TrimSpace(r.str("nationality")),
		Age:         int(r.num("age")),
		Overall:     int(r.num("overall")),
		Value:       r.num("value"),
		Wage:        r.num("wage"),
	}

	if p.Name == "" {
		p.Name = fallbackName
	}
	if !career.ValidPosition(p.Position) {
		p.Position = fallbackPosition
	}
	if p.Nationality == "" {
		p.Nationality = fallbackNationality
	}
	if p.Age < minAge {
		p.Age = fallbackAge
	}
	if p.Overall < minOverall {
		p.Overall = fallbackOverall
	}
	if p.Value <= 0 {
		p.Value = fallbackValue
	}
	if p.Wage <= 0 {
		p.Wage = fallbackWage
	}

	return p
}
