package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

const scrapeFetchTimeout = 10 * time.Second

type SitemapService struct {
	sitemaps repositories.SitemapRepository
	client   *http.Client
}

func NewSitemapService(sitemaps repositories.SitemapRepository) *SitemapService {
	return &SitemapService{
		sitemaps: sitemaps,
		client:   &http.Client{Timeout: scrapeFetchTimeout},
	}
}

type SitemapLinkInput struct {
	URL  string
	Text string
}

// Get returns the caller's sitemap, or nil when none exists; "no sitemap yet"
// is a normal state, not an error.
func (s *SitemapService) Get(ctx context.Context, userID string) (*entities.Sitemap, error) {
	sitemap, err := s.sitemaps.FindByUserID(ctx, userID)
	if err == entities.ErrNotFound {
		return nil, nil
	}
	return sitemap, err
}

func (s *SitemapService) Create(ctx context.Context, userID, baseURL string, links []SitemapLinkInput) (*entities.Sitemap, error) {
	sitemap := entities.NewSitemap(userID, baseURL)
	for i, link := range links {
		sitemap.Links = append(sitemap.Links, entities.NewSitemapLink(sitemap.ID, link.URL, link.Text, i))
	}
	if err := s.sitemaps.Create(ctx, sitemap); err != nil {
		return nil, err
	}
	return sitemap, nil
}

// Update replaces the caller's sitemap wholesale; NotFound when they have
// none (a PUT cannot create one).
func (s *SitemapService) Update(ctx context.Context, userID, baseURL string, links []SitemapLinkInput) (*entities.Sitemap, error) {
	existing, err := s.sitemaps.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing.BaseURL = baseURL
	existing.Links = existing.Links[:0]
	for i, link := range links {
		existing.Links = append(existing.Links, entities.NewSitemapLink(existing.ID, link.URL, link.Text, i))
	}

	if err := s.sitemaps.Replace(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *SitemapService) Delete(ctx context.Context, userID string) error {
	existing, err := s.sitemaps.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.sitemaps.Delete(ctx, existing.ID)
}

// Scrape fetches and/or parses a sitemap XML document and derives readable
// link text from each URL's final path segment.
func (s *SitemapService) Scrape(ctx context.Context, rawURL, xmlBody string) ([]SitemapLinkInput, error) {
	if rawURL == "" && xmlBody == "" {
		return nil, entities.ErrInvalidRequest
	}

	if rawURL != "" && xmlBody == "" {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch sitemap: %w", entities.ErrInvalidRequest)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; SitemapBot/1.0)")

		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch sitemap: %v: %w", err, entities.ErrInvalidRequest)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch sitemap: %s: %w", resp.Status, entities.ErrInvalidRequest)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		if err != nil {
			return nil, err
		}
		xmlBody = string(body)
	}

	urls, err := ParseSitemapXML(xmlBody)
	if err != nil {
		return nil, err
	}

	links := make([]SitemapLinkInput, 0, len(urls))
	for _, u := range urls {
		links = append(links, SitemapLinkInput{URL: u, Text: SlugToTitle(u)})
	}
	return links, nil
}

// ParseSitemapXML extracts every <loc> entry from a sitemap document.
func ParseSitemapXML(body string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(body))
	var urls []string
	var inLoc bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse sitemap: %w", entities.ErrInvalidRequest)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			inLoc = t.Name.Local == "loc"
		case xml.CharData:
			if inLoc {
				if loc := strings.TrimSpace(string(t)); loc != "" {
					urls = append(urls, loc)
				}
			}
		case xml.EndElement:
			inLoc = false
		}
	}

	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs found in sitemap: %w", entities.ErrInvalidRequest)
	}
	return urls, nil
}

// SlugToTitle turns the last path segment of a URL into display text:
// "https://x.com/about-us" becomes "About Us". The root path maps to "Home".
func SlugToTitle(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Page"
	}

	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	slug := "home"
	if len(segments) > 0 {
		slug = segments[len(segments)-1]
	}

	slug = strings.ReplaceAll(slug, "-", " ")
	slug = strings.ReplaceAll(slug, "_", " ")
	words := strings.Fields(slug)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Home"
	}
	return strings.Join(words, " ")
}
