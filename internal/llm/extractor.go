package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	openai "github.com/sashabaranov/go-openai"
)

// MaxInputRunes bounds the syllabus text sent to the model.
const MaxInputRunes = 8000

const (
	DefaultModel   = "gpt-4.1-nano"
	DefaultTimeout = 30 * time.Second
	temperature    = 0.2
)

const systemPrompt = "You are a helpful assistant that extracts structured data from syllabi."

const promptTemplate = `
You are an assistant that extracts information from a course syllabus.
Given the following syllabus text, extract:

1. Course name (full name of the course)
2. Course code (e.g., CS101, MATH201)
3. Semester (Fall, Spring, Summer)
4. Year (e.g., 2025)
5. Assignment information, including:
   - name
   - dueDate (YYYY-MM-DD format)
   - weight (as a number, 0-100)
   - category (e.g., exam, homework, project)
   - maxPoints (if available)

For any field where the information isn't clearly specified, use null.

Syllabus text:
%TEXT%

Respond ONLY with a JSON object with the following structure:
{
  "courseInfo": {
    "name": "Course Name",
    "code": "CODE101",
    "semester": "Fall",
    "year": 2025,
    "confidence": {
      "name": 0.95,
      "code": 0.98,
      "semester": 0.85,
      "year": 0.9
    }
  },
  "assignments": [
    {
      "name": "Midterm Exam",
      "dueDate": "2025-10-15",
      "weight": 30,
      "category": "exam",
      "maxPoints": 100
    }
  ]
}
`

var (
	ErrMalformedExtraction    = &common.Error{Kind: common.ErrMalformedResponse, Msg: "Could not extract JSON from OpenAI response"}
	ErrInvalidExtractionShape = &common.Error{Kind: common.ErrMalformedResponse, Msg: "Invalid extraction result structure from OpenAI"}
)

// Extractor turns syllabus text into an Extraction with a single completion
// call. It never retries.
type Extractor struct {
	completer Completer
	model     string
	timeout   time.Duration
	logger    logging.Logger
}

func NewExtractor(c Completer, model string, timeout time.Duration, l logging.Logger) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{completer: c, model: model, timeout: timeout, logger: l.With("module", "llm")}
}

// BuildPrompt embeds the first MaxInputRunes runes of text into the prompt.
func BuildPrompt(text string) string {
	return strings.Replace(promptTemplate, "%TEXT%", truncateRunes(text, MaxInputRunes), 1)
}

func (e *Extractor) ExtractSyllabus(ctx context.Context, text string) (*models.Extraction, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.completer.Complete(ctx, ChatRequest{
		Model: e.model,
		Messages: []Message{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(text)},
		},
		Temperature: temperature,
	})
	if err != nil {
		e.logger.Warn(ctx, "completion failed", "error", err)
		return nil, err
	}

	ex, err := ParseExtraction(raw)
	if err != nil {
		e.logger.Warn(ctx, "unusable completion", "error", err, "length", len(raw))
		return nil, err
	}

	e.logger.Debug(ctx, "syllabus extracted", "assignments", len(ex.Assignments))
	return ex, nil
}

// ParseExtraction reads the first balanced JSON object out of raw, which may
// be wrapped in prose or a code fence. Both courseInfo and assignments must
// be present.
func ParseExtraction(raw string) (*models.Extraction, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, common.ErrNoResponse
	}

	span, ok := FirstJSONObject(raw)
	if !ok {
		return nil, ErrMalformedExtraction
	}

	var ex models.Extraction
	if err := json.Unmarshal([]byte(span), &ex); err != nil {
		return nil, common.NewError(common.ErrMalformedResponse, "Failed to parse JSON from OpenAI response: %s", err.Error())
	}

	if ex.CourseInfo == nil || ex.Assignments == nil {
		return nil, ErrInvalidExtractionShape
	}

	return &ex, nil
}

// FirstJSONObject returns the first balanced {...} span of s. Braces inside
// JSON strings, including escaped quotes, do not count.
func FirstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
