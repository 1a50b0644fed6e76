package immoparticuliers

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"

	"github.com/Adam11-11/Projet-Immobilier/config"
	"github.com/Adam11-11/Projet-Immobilier/models"
	"github.com/Adam11-11/Projet-Immobilier/utils"
)

const (
	listingLinkSelector = `a[href^="/annonce-"]`
	userAgent           = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Collector walks the paginated listing index, discovers detail-page links
// and accumulates validated records in discovery order.
type Collector struct {
	cfg    *config.Config
	logger *utils.Logger
	seen   *utils.URLSet

	listings []*models.RawListing
}

// New creates a ready-to-use Collector.
func New(cfg *config.Config, logger *utils.Logger) *Collector {
	return &Collector{
		cfg:      cfg,
		logger:   logger,
		seen:     utils.NewURLSet(),
		listings: make([]*models.RawListing, 0),
	}
}

// Collect visits index pages 1..PagesToScrape of BaseURL sequentially.
// A failed or invalid detail page is logged and skipped; a failed index
// page aborts the run.
func (c *Collector) Collect() ([]*models.RawListing, error) {
	index := colly.NewCollector(colly.UserAgent(userAgent))
	detail := index.Clone()

	var indexErr error

	index.OnHTML(listingLinkSelector, func(e *colly.HTMLElement) {
		absURL := e.Request.AbsoluteURL(e.Attr("href"))
		if absURL == "" {
			return
		}
		if !c.seen.Add(absURL) {
			c.logger.Debug("[immo] Skipping duplicate: %s", absURL)
			return
		}

		c.logger.Debug("[immo] Fetching listing: %s", absURL)
		if err := detail.Visit(absURL); err != nil {
			c.logger.Warn("[immo] Skipping %s: %v", absURL, err)
		}
	})

	index.OnError(func(r *colly.Response, err error) {
		indexErr = fmt.Errorf("index page %s: %w", r.Request.URL, err)
	})

	detail.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			c.logger.Warn("[immo] Skipping %s: unparsable document: %v", r.Request.URL, err)
			return
		}

		listing, err := Extract(doc, r.Request.URL.String())
		if err != nil {
			c.logger.Warn("[immo] Skipping %s: %v", r.Request.URL, err)
			return
		}

		c.listings = append(c.listings, listing)
	})

	detail.OnError(func(r *colly.Response, err error) {
		c.logger.Warn("[immo] Skipping %s: fetch failed: %v", r.Request.URL, err)
	})

	for page := 1; page <= c.cfg.PagesToScrape; page++ {
		pageURL := fmt.Sprintf("%s/%d", c.cfg.BaseURL, page)
		c.logger.Info("[immo] Scraping index page %d/%d", page, c.cfg.PagesToScrape)

		if err := index.Visit(pageURL); err != nil {
			return nil, fmt.Errorf("index page %s: %w", pageURL, err)
		}
		if indexErr != nil {
			return nil, indexErr
		}

		c.logger.Info("[immo] Page %d done — %d listings collected so far", page, len(c.listings))
	}

	c.logger.Info("[immo] Scrape complete — %d unique URLs, %d valid listings",
		c.seen.Size(), len(c.listings))
	return c.listings, nil
}
