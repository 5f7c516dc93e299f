package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/weekwise/weekwise/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContentPage is a static markdown page (about, FAQ) loaded from the
// content directory at startup.
type ContentPage struct {
	Title       string
	Slug        string
	Content     string
	LastUpdated string
}

type ContentService struct {
	contentDir string
	pages      map[string]*ContentPage
}

func NewContentService(contentDir string) *ContentService {
	return &ContentService{
		contentDir: contentDir,
		pages:      make(map[string]*ContentPage),
	}
}

func (s *ContentService) LoadPages() error {
	files, err := os.ReadDir(s.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read content directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		page, err := s.loadPage(slug)
		if err != nil {
			return fmt.Errorf("failed to load page %s: %w", slug, err)
		}

		s.pages[slug] = page
	}

	return nil
}

func (s *ContentService) loadPage(slug string) (*ContentPage, error) {
	filePath := filepath.Join(s.contentDir, slug+".md")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	parser := markdown.NewParser()
	html, meta, err := parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		// Fall back to a title derived from the filename
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	lastUpdated := ""
	info, err := os.Stat(filePath)
	if err == nil {
		lastUpdated = info.ModTime().Format("January 2, 2006")
	}

	return &ContentPage{
		Title:       title,
		Slug:        slug,
		Content:     string(html),
		LastUpdated: lastUpdated,
	}, nil
}

// Page returns a loaded page by slug.
func (s *ContentService) Page(slug string) (*ContentPage, bool) {
	page, ok := s.pages[slug]
	return page, ok
}
