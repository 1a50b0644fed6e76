package immoparticuliers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Adam11-11/Projet-Immobilier/models"
)

// Characteristic labels as they appear on the detail page, including the
// site's own misspelling of "salles de bains".
const (
	labelType     = "Type"
	labelSurface  = "Surface"
	labelPieces   = "Nb. de pièces"
	labelChambres = "Nb. de chambres"
	labelSdb      = "Nb. de sales de bains"
	labelDPE      = "Consommation d'énergie (DPE)"
)

// minPrice is a data-quality floor, not a real market bound: listings below
// it are placeholders or broken pages.
const minPrice = 10000

// InvalidListingError signals a listing that fails a business validation
// rule and must be discarded as a whole.
type InvalidListingError struct {
	Reason string
}

func (e *InvalidListingError) Error() string {
	return "invalid listing: " + e.Reason
}

func invalid(format string, args ...any) error {
	return &InvalidListingError{Reason: fmt.Sprintf(format, args...)}
}

// priceCleaner strips the currency sign and every kind of space the site
// uses for thousands grouping.
var priceCleaner = strings.NewReplacer("€", "", " ", "", " ", "", " ", "")

// extractPrice reads the price element and parses it as a whole number of
// euros. Absent, empty, non-numeric or sub-floor prices invalidate the
// listing.
func extractPrice(doc *goquery.Document) (string, error) {
	el := doc.Find(".product-price").First()
	if el.Length() == 0 {
		return "", invalid("price not found")
	}

	text := strings.TrimSpace(el.Text())
	if text == "" {
		return "", invalid("price is empty")
	}

	n, err := strconv.Atoi(priceCleaner.Replace(text))
	if err != nil {
		return "", invalid("price %q is not numeric", text)
	}
	if n < minPrice {
		return "", invalid("price %d below %d, probably a placeholder", n, minPrice)
	}
	return strconv.Itoa(n), nil
}

// extractCity reads the address header and returns the text after the last
// comma. Multi-comma street addresses keep only the final, city part.
func extractCity(doc *goquery.Document) (string, error) {
	header := doc.Find("h2.mt-0").First()
	if header.Length() == 0 {
		return "", invalid("address header not found")
	}

	text := strings.TrimSpace(header.Text())
	idx := strings.LastIndex(text, ", ")
	if idx == -1 {
		return "", invalid("no city in address header %q", text)
	}
	return text[idx+2:], nil
}

// characteristics locates the "Caractéristiques :" section header and
// returns its attribute list, shared by all characteristic extractors.
func characteristics(doc *goquery.Document) (*goquery.Selection, error) {
	var list *goquery.Selection
	doc.Find("p.ad-section-title").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "Caractéristiques :" {
			list = s.NextAllFiltered("ul.list-inline").First()
			return false
		}
		return true
	})

	if list == nil || list.Length() == 0 {
		return nil, invalid("characteristics section not found")
	}
	return list, nil
}

// characteristicByLabel scans the list for an item containing label and
// returns the trimmed text of its second span (the first span is the
// icon/label). A missing label or malformed item is a legitimate absence,
// reported as the "-" sentinel rather than an error.
func characteristicByLabel(list *goquery.Selection, label string) string {
	value := models.Missing
	list.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if !strings.Contains(li.Text(), label) {
			return true
		}
		spans := li.Find("span")
		if spans.Length() >= 2 {
			value = strings.TrimSpace(spans.Eq(1).Text())
		}
		return false
	})
	return value
}

// extractPropertyType is the one characteristic that is mandatory: anything
// but Maison or Appartement (including absence) invalidates the listing.
func extractPropertyType(list *goquery.Selection) (string, error) {
	v := characteristicByLabel(list, labelType)
	if v != models.TypeMaison && v != models.TypeAppartement {
		return "", invalid("type %q is neither %q nor %q", v, models.TypeMaison, models.TypeAppartement)
	}
	return v, nil
}

// Extract runs every field extractor against one detail-page document and
// composes the validated record. The first failing extractor aborts the
// whole record; no partial listing is ever returned.
func Extract(doc *goquery.Document, url string) (*models.RawListing, error) {
	city, err := extractCity(doc)
	if err != nil {
		return nil, fmt.Errorf("rejected: %w", err)
	}

	list, err := characteristics(doc)
	if err != nil {
		return nil, fmt.Errorf("rejected: %w", err)
	}

	propertyType, err := extractPropertyType(list)
	if err != nil {
		return nil, fmt.Errorf("rejected: %w", err)
	}

	price, err := extractPrice(doc)
	if err != nil {
		return nil, fmt.Errorf("rejected: %w", err)
	}

	return &models.RawListing{
		Ville:       city,
		Type:        propertyType,
		Surface:     characteristicByLabel(list, labelSurface),
		NbrPieces:   characteristicByLabel(list, labelPieces),
		NbrChambres: characteristicByLabel(list, labelChambres),
		NbrSdb:      characteristicByLabel(list, labelSdb),
		DPE:         characteristicByLabel(list, labelDPE),
		Prix:        price,
		URL:         url,
		ScrapedAt:   time.Now(),
	}, nil
}
