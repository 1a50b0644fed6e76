package immoparticuliers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Adam11-11/Projet-Immobilier/models"
)

// buildDetail assembles a minimal detail page. Empty address or price
// omits the element entirely.
func buildDetail(address, price string, chars [][2]string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	if address != "" {
		fmt.Fprintf(&b, `<h2 class="mt-0">%s</h2>`, address)
	}
	if price != "" {
		fmt.Fprintf(&b, `<div class="product-price">%s</div>`, price)
	}
	b.WriteString(`<p class="ad-section-title">Caractéristiques :</p>`)
	b.WriteString(`<ul class="list-inline">`)
	for _, kv := range chars {
		fmt.Fprintf(&b, `<li><span>%s</span><span>%s</span></li>`, kv[0], kv[1])
	}
	b.WriteString(`</ul></body></html>`)
	return b.String()
}

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return d
}

var baseChars = [][2]string{
	{"Type", "Maison"},
	{"Surface", "120 m²"},
	{"Nb. de pièces", "5"},
	{"Nb. de chambres", "3"},
	{"Nb. de sales de bains", "1"},
	{"Consommation d'énergie (DPE)", "D (151 à 230)"},
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		price   string
		want    string
		wantErr bool
	}{
		{"250 000 €", "250000", false},
		{"1 200 000 €", "1200000", false},
		{"10000 €", "10000", false},
		{"9 000 €", "", true},
		{"N.C.", "", true},
		{"", "", true}, // element omitted entirely
	}

	for _, tt := range tests {
		d := doc(t, buildDetail("1 Rue Haute, Melun", tt.price, baseChars))
		got, err := extractPrice(d)
		if tt.wantErr {
			if err == nil {
				t.Errorf("extractPrice(%q): expected error, got %q", tt.price, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("extractPrice(%q): unexpected error: %v", tt.price, err)
			continue
		}
		if got != tt.want {
			t.Errorf("extractPrice(%q) = %q; want %q", tt.price, got, tt.want)
		}
	}
}

func TestExtractPriceErrorType(t *testing.T) {
	d := doc(t, buildDetail("1 Rue Haute, Melun", "9 000 €", baseChars))
	_, err := extractPrice(d)

	var invalidErr *InvalidListingError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidListingError, got %T (%v)", err, err)
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		address string
		want    string
		wantErr bool
	}{
		{"12 Rue de Paris, Neuilly-sur-Seine", "Neuilly-sur-Seine", false},
		{"Maison 3 pièces, 10 Rue Haute, Melun", "Melun", false},
		{"Versailles sans virgule", "", true},
		{"", "", true}, // header omitted entirely
	}

	for _, tt := range tests {
		d := doc(t, buildDetail(tt.address, "250 000 €", baseChars))
		got, err := extractCity(d)
		if tt.wantErr {
			if err == nil {
				t.Errorf("extractCity(%q): expected error, got %q", tt.address, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("extractCity(%q): unexpected error: %v", tt.address, err)
			continue
		}
		if got != tt.want {
			t.Errorf("extractCity(%q) = %q; want %q", tt.address, got, tt.want)
		}
	}
}

func TestCharacteristicAbsentReturnsSentinel(t *testing.T) {
	chars := [][2]string{
		{"Type", "Maison"},
		{"Surface", "85 m²"},
	}
	d := doc(t, buildDetail("1 Rue Haute, Melun", "250 000 €", chars))

	list, err := characteristics(d)
	if err != nil {
		t.Fatalf("characteristics: %v", err)
	}

	if got := characteristicByLabel(list, labelChambres); got != models.Missing {
		t.Errorf("absent label: got %q, want %q", got, models.Missing)
	}
	if got := characteristicByLabel(list, labelDPE); got != models.Missing {
		t.Errorf("absent label: got %q, want %q", got, models.Missing)
	}
}

func TestCharacteristicMalformedItemReturnsSentinel(t *testing.T) {
	// A li with a single span has no value slot.
	html := `<html><body><p class="ad-section-title">Caractéristiques :</p>` +
		`<ul class="list-inline"><li><span>Surface</span></li></ul></body></html>`
	d := doc(t, html)

	list, err := characteristics(d)
	if err != nil {
		t.Fatalf("characteristics: %v", err)
	}
	if got := characteristicByLabel(list, labelSurface); got != models.Missing {
		t.Errorf("malformed item: got %q, want %q", got, models.Missing)
	}
}

func TestCharacteristicsSectionMissing(t *testing.T) {
	d := doc(t, `<html><body><h2 class="mt-0">1 Rue Haute, Melun</h2></body></html>`)
	if _, err := characteristics(d); err == nil {
		t.Error("expected error when the characteristics section is missing")
	}
}

func TestExtractPropertyType(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"Maison", false},
		{"Appartement", false},
		{"Terrain", true},
		{"", true},
	}

	for _, tt := range tests {
		chars := [][2]string{{"Surface", "85 m²"}}
		if tt.value != "" {
			chars = append([][2]string{{"Type", tt.value}}, chars...)
		}
		d := doc(t, buildDetail("1 Rue Haute, Melun", "250 000 €", chars))

		list, err := characteristics(d)
		if err != nil {
			t.Fatalf("characteristics: %v", err)
		}

		got, err := extractPropertyType(list)
		if tt.wantErr {
			if err == nil {
				t.Errorf("type %q: expected error, got %q", tt.value, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("type %q: unexpected error: %v", tt.value, err)
			continue
		}
		if got != tt.value {
			t.Errorf("type: got %q, want %q", got, tt.value)
		}
	}
}

func TestExtractComposesRecord(t *testing.T) {
	d := doc(t, buildDetail("12 Rue de Paris, Neuilly-sur-Seine", "250 000 €", baseChars))

	listing, err := Extract(d, "https://example.com/annonce-1")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := &models.RawListing{
		Ville:       "Neuilly-sur-Seine",
		Type:        "Maison",
		Surface:     "120 m²",
		NbrPieces:   "5",
		NbrChambres: "3",
		NbrSdb:      "1",
		DPE:         "D (151 à 230)",
		Prix:        "250000",
	}

	if listing.Ville != want.Ville || listing.Type != want.Type ||
		listing.Surface != want.Surface || listing.NbrPieces != want.NbrPieces ||
		listing.NbrChambres != want.NbrChambres || listing.NbrSdb != want.NbrSdb ||
		listing.DPE != want.DPE || listing.Prix != want.Prix {
		t.Errorf("Extract = %+v; want %+v", listing, want)
	}
	if listing.URL != "https://example.com/annonce-1" {
		t.Errorf("URL: got %q", listing.URL)
	}
}

func TestExtractRejectsWholeRecord(t *testing.T) {
	// Valid everything except the price: no partial record may come back.
	d := doc(t, buildDetail("12 Rue de Paris, Neuilly-sur-Seine", "5 000 €", baseChars))

	listing, err := Extract(d, "https://example.com/annonce-1")
	if err == nil {
		t.Fatal("expected error for sub-floor price")
	}
	if listing != nil {
		t.Errorf("expected nil listing on failure, got %+v", listing)
	}

	var invalidErr *InvalidListingError
	if !errors.As(err, &invalidErr) {
		t.Errorf("expected wrapped InvalidListingError, got %T (%v)", err, err)
	}
}
