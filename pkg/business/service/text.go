package service

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

type ITextService interface {
	Normalize(input string) string
	Contains(haystack, needle string) bool
	RemoveTags(input string) string
}

// TextService normalizes free text for search matching. Admin-entered
// descriptions may carry markup, so tags are stripped before matching.
type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

// Normalize trims surrounding whitespace and case-folds the input.
func (ts *TextService) Normalize(input string) string {
	// cases.Caser is stateful, so a fresh one per call.
	return cases.Fold().String(strings.TrimSpace(input))
}

// Contains reports whether haystack contains needle after case folding.
func (ts *TextService) Contains(haystack, needle string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

func (ts *TextService) RemoveTags(input string) string {
	re := regexp.MustCompile(`<[^>]*>`)
	return re.ReplaceAllString(html.UnescapeString(input), "")
}
