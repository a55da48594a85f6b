package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/headhunt/headhunt-helper/internal/models"
)

const (
	// ~187,500 tokens of visible text; anything past this is cut.
	maxVisibleTextChars = 750000

	textMaxLength  = 255
	urlMaxLength   = 1000
	notesMaxLength = 4000

	unknownValue = "Unknown"
)

var (
	scriptRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe     = regexp.MustCompile(`<[^>]*>`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

const extractionPromptTemplate = `Extract job information from the following text content. Return a JSON object with these fields:
- companyName: The name of the company (REQUIRED, String)
- position: The job position/title (REQUIRED, String)
- jobUrl: The URL of the job posting (REQUIRED, String)
- location: The job location (if available, String)
- salary: The salary information (if available, String)
- contactPerson: The contact person's name (if available, String)
- contactEmail: The contact person's email (if available, String)
- notes: A brief summary as a single String (max 200 words). Include:
  * Key qualifications
  * Main responsibilities
  * Notable benefits
  * Important requirements

IMPORTANT: All fields must be returned as String values, not objects or arrays.
If any REQUIRED field cannot be found, set it to "Unknown" rather than null.
Keep the notes field concise and focused on the most important information.
Text Content:
%s`

// ExtractorService turns raw job-posting HTML into a persisted
// application record via a single model call.
type ExtractorService struct {
	llm  Completer
	apps *ApplicationService
}

func NewExtractorService(llm Completer, apps *ApplicationService) *ExtractorService {
	return &ExtractorService{llm: llm, apps: apps}
}

// ExtractAndCreate runs the full pipeline: sanitize -> prompt -> model
// -> parse -> normalize -> persist -> assemble. No record is persisted
// unless every step before the create succeeds.
func (s *ExtractorService) ExtractAndCreate(ctx context.Context, rawHTML string) (map[string]any, error) {
	log.Printf("📄 Starting job extraction, HTML length: %d", len(rawHTML))

	visible := sanitizeHTML(rawHTML)
	prompt := buildPrompt(visible)

	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	fields, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	app, validation := normalizeFields(fields)
	if err := s.apps.Create(app); err != nil {
		return nil, err
	}
	log.Printf("✅ Extracted and created application ID %d", app.ID)

	return assembleResult(fields, app, validation), nil
}

// sanitizeHTML strips script/style/comment blocks (content included)
// and remaining markup from raw HTML, then collapses whitespace. This
// is a plain regex pass, not a DOM parse: malformed markup degrades to
// leftover fragments instead of failing.
func sanitizeHTML(htmlContent string) string {
	cleaned := scriptRe.ReplaceAllString(htmlContent, "")
	cleaned = styleRe.ReplaceAllString(cleaned, "")
	cleaned = commentRe.ReplaceAllString(cleaned, "")
	cleaned = tagRe.ReplaceAllString(cleaned, " ")
	cleaned = spaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > maxVisibleTextChars {
		log.Printf("⚠️ Visible text too long (%d chars), truncating to %d chars", len(runes), maxVisibleTextChars)
		cleaned = string(runes[:maxVisibleTextChars])
	}
	return cleaned
}

// buildPrompt embeds the sanitized text into the fixed extraction
// template. Pure function.
func buildPrompt(visibleText string) string {
	return fmt.Sprintf(extractionPromptTemplate, visibleText)
}

// extractJSON decodes the substring between the first '{' and the last
// '}' (inclusive). Deliberately tolerant of prose framing around the
// object, deliberately blind to multiple or nested top-level objects.
func extractJSON(reply string) (map[string]any, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrUnparseable)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(reply[start:end+1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return fields, nil
}

// stringField reads a field as a JSON string. Absent keys and
// non-string values (null included) report ok=false instead of being
// stringified.
func stringField(fields map[string]any, key string) (string, bool) {
	v, present := fields[key]
	if !present {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

func requiredField(fields map[string]any, key string) string {
	s, ok := stringField(fields, key)
	if !ok || s == "" {
		return unknownValue
	}
	return s
}

func optionalField(fields map[string]any, key string) string {
	s, _ := stringField(fields, key)
	return s
}

// normalizeFields applies defaults and length caps to the decoded field
// map and reports, per required field, whether the final value came
// from the model or from the "Unknown" fallback. Always produces a
// fully-populated candidate record.
func normalizeFields(fields map[string]any) (*models.JobApplication, map[string]bool) {
	companyName := requiredField(fields, "companyName")
	position := requiredField(fields, "position")
	jobURL := requiredField(fields, "jobUrl")

	app := &models.JobApplication{
		CompanyName:   truncateField(companyName, textMaxLength, "companyName"),
		Position:      truncateField(position, textMaxLength, "position"),
		JobURL:        truncateField(jobURL, urlMaxLength, "jobUrl"),
		Status:        models.StatusApplied,
		Location:      truncateField(optionalField(fields, "location"), textMaxLength, "location"),
		Salary:        truncateField(optionalField(fields, "salary"), textMaxLength, "salary"),
		ContactPerson: truncateField(optionalField(fields, "contactPerson"), textMaxLength, "contactPerson"),
		ContactEmail:  truncateField(optionalField(fields, "contactEmail"), textMaxLength, "contactEmail"),
		Notes:         truncateField(optionalField(fields, "notes"), notesMaxLength, "notes"),
	}

	validation := map[string]bool{
		"companyName": companyName != unknownValue,
		"position":    position != unknownValue,
		"jobUrl":      jobURL != unknownValue,
	}
	return app, validation
}

// truncateField drops everything past max. Lossy on purpose; the only
// signal is a log notice.
func truncateField(s string, max int, field string) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	log.Printf("⚠️ Truncating %s from %d to %d characters", field, len(runes), max)
	return string(runes[:max])
}

// assembleResult merges the generated identifier, assigned status and
// creation timestamp plus the per-field validation flags back into the
// extracted field map returned to the caller.
func assembleResult(fields map[string]any, app *models.JobApplication, validation map[string]bool) map[string]any {
	fields["id"] = app.ID
	fields["status"] = app.Status
	fields["appliedTime"] = app.AppliedTime
	fields["validation"] = validation
	return fields
}
