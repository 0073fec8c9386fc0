package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure/db"
)

func newSitemapService(t *testing.T) *SitemapService {
	t.Helper()
	return NewSitemapService(db.NewSitemapRepository(newServiceDB(t)))
}

func TestSitemapLifecycle(t *testing.T) {
	svc := newSitemapService(t)
	ctx := context.Background()

	// No sitemap yet reads as nil, not an error.
	got, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	created, err := svc.Create(ctx, "user-1", "https://example.com", []SitemapLinkInput{
		{URL: "https://example.com/about", Text: "About"},
	})
	require.NoError(t, err)
	require.Len(t, created.Links, 1)

	// One sitemap per user.
	_, err = svc.Create(ctx, "user-1", "https://other.com", nil)
	assert.ErrorIs(t, err, entities.ErrConflict)

	updated, err := svc.Update(ctx, "user-1", "https://example.com", []SitemapLinkInput{
		{URL: "https://example.com/blog", Text: "Blog"},
		{URL: "https://example.com/contact", Text: "Contact"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Links, 2)
	assert.Equal(t, 0, updated.Links[0].Position)
	assert.Equal(t, 1, updated.Links[1].Position)

	require.NoError(t, svc.Delete(ctx, "user-1"))
	got, err = svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSitemapUpdateWithoutExisting(t *testing.T) {
	svc := newSitemapService(t)

	_, err := svc.Update(context.Background(), "user-1", "https://example.com", nil)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "user-1"), entities.ErrNotFound)
}

func TestParseSitemapXML(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/</loc><lastmod>2024-01-01</lastmod></url>
  <url><loc>https://example.com/about-us</loc></url>
  <url><loc>https://example.com/blog/first-post</loc></url>
</urlset>`

	urls, err := ParseSitemapXML(body)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/about-us",
		"https://example.com/blog/first-post",
	}, urls)
}

func TestParseSitemapXMLMalformed(t *testing.T) {
	_, err := ParseSitemapXML("<urlset><url><loc>https://example.com")
	assert.ErrorIs(t, err, entities.ErrInvalidRequest)
}

func TestSlugToTitle(t *testing.T) {
	cases := map[string]string{
		"https://example.com/":                 "Home",
		"https://example.com/about-us":         "About Us",
		"https://example.com/blog/first-post/": "First Post",
		"https://example.com/pricing_plans":    "Pricing Plans",
	}
	for in, want := range cases {
		assert.Equal(t, want, SlugToTitle(in), in)
	}
}

func TestScrapeFromBody(t *testing.T) {
	svc := newSitemapService(t)

	body := `<urlset><url><loc>https://example.com/about-us</loc></url></urlset>`
	links, err := svc.Scrape(context.Background(), "", body)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/about-us", links[0].URL)
	assert.Equal(t, "About Us", links[0].Text)
}
