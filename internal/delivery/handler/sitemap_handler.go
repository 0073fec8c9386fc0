package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/application/services"
)

type SitemapHandler struct {
	sitemaps *services.SitemapService
	log      *zap.Logger
}

func NewSitemapHandler(sitemaps *services.SitemapService, log *zap.Logger) *SitemapHandler {
	return &SitemapHandler{sitemaps: sitemaps, log: log}
}

type sitemapLinkPayload struct {
	URL  string `json:"url" validate:"required"`
	Text string `json:"text"`
}

type sitemapRequest struct {
	BaseURL string               `json:"baseUrl" validate:"required,url"`
	Links   []sitemapLinkPayload `json:"links"`
}

// Scrape accepts either a URL to fetch or a raw XML document to parse.
type scrapeSitemapRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
	XML string `json:"xml"`
}

func linkInputs(payloads []sitemapLinkPayload) []services.SitemapLinkInput {
	inputs := make([]services.SitemapLinkInput, 0, len(payloads))
	for _, p := range payloads {
		inputs = append(inputs, services.SitemapLinkInput{URL: p.URL, Text: p.Text})
	}
	return inputs
}

func (h *SitemapHandler) Get(c echo.Context) error {
	sitemap, err := h.sitemaps.Get(c.Request().Context(), CurrentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"sitemap": sitemap})
}

func (h *SitemapHandler) Create(c echo.Context) error {
	var req sitemapRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	sitemap, err := h.sitemaps.Create(c.Request().Context(), CurrentUserID(c), req.BaseURL, linkInputs(req.Links))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"sitemap": sitemap})
}

func (h *SitemapHandler) Update(c echo.Context) error {
	var req sitemapRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	sitemap, err := h.sitemaps.Update(c.Request().Context(), CurrentUserID(c), req.BaseURL, linkInputs(req.Links))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"sitemap": sitemap})
}

func (h *SitemapHandler) Delete(c echo.Context) error {
	if err := h.sitemaps.Delete(c.Request().Context(), CurrentUserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Scrape fetches a remote sitemap.xml and returns parsed links without
// persisting anything; the client decides whether to save them.
func (h *SitemapHandler) Scrape(c echo.Context) error {
	var req scrapeSitemapRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON body"})
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	links, err := h.sitemaps.Scrape(c.Request().Context(), req.URL, req.XML)
	if err != nil {
		return respondError(c, h.log, err)
	}

	payloads := make([]sitemapLinkPayload, 0, len(links))
	for _, l := range links {
		payloads = append(payloads, sitemapLinkPayload{URL: l.URL, Text: l.Text})
	}
	return c.JSON(http.StatusOK, echo.Map{"url": req.URL, "links": payloads})
}
