package scraper

import (
	"context"
	"fmt"
)

// tableSelector is the element whose presence signals that the odds page
// has rendered its data.
const tableSelector = "table"

// PageLoader renders a page and returns its HTML once a selector matches.
// *browser.Session satisfies it; tests substitute fakes.
type PageLoader interface {
	HTML(ctx context.Context, url, waitSelector string) (string, error)
}

// Scraper fetches rendered weekly odds pages
type Scraper struct {
	loader  PageLoader
	baseURL string
}

// New creates a Scraper that loads week pages relative to baseURL through
// the given loader.
func New(loader PageLoader, baseURL string) *Scraper {
	return &Scraper{
		loader:  loader,
		baseURL: baseURL,
	}
}

// WeekURL returns the page URL for a week: the base URL with "-{week}" appended.
func (s *Scraper) WeekURL(week int) string {
	return fmt.Sprintf("%s-%d", s.baseURL, week)
}

// FetchWeek loads a week's odds page and returns its rendered HTML. It
// blocks until a table element appears or the session's page-load timeout
// elapses; a page that never renders a table fails the week.
func (s *Scraper) FetchWeek(ctx context.Context, week int) (string, error) {
	html, err := s.loader.HTML(ctx, s.WeekURL(week), tableSelector)
	if err != nil {
		return "", fmt.Errorf("fetching week %d: %w", week, err)
	}
	return html, nil
}
