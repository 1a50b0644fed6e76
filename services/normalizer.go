package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// accentFolder maps the accented characters occurring in Île-de-France
// commune names to their unaccented form.
var accentFolder = strings.NewReplacer(
	"É", "e",
	"é", "e",
	"è", "e",
	"ê", "e",
	"à", "a",
	"â", "a",
	"ç", "c",
	"ù", "u",
	"ô", "o",
	"î", "i",
	"ï", "i",
	"ÿ", "y",
)

var separatorStripper = strings.NewReplacer(" ", "", "-", "", "'", "")

// DefaultAliases returns the built-in manual corrections applied to both
// join sides: merged communes whose gazetteer entry still carries the
// pre-merge primary name.
func DefaultAliases() map[string]string {
	return map[string]string{
		"lechesnayrocquencourt": "lechesnay",
		"eragnysuroise":         "eragny",
		"evrycourcouronnes":     "courcouronnes",
	}
}

// listingAliases are corrections that only make sense on the scraped side,
// where the site abbreviates some commune names.
var listingAliases = map[string]string{
	"sts": "beautheilsts",
}

// LoadAliases reads an alias table from a yaml file mapping normalized
// name to normalized name.
func LoadAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aliases: read %q: %w", path, err)
	}
	aliases := make(map[string]string)
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("aliases: parse %q: %w", path, err)
	}
	return aliases, nil
}

// Normalizer canonicalizes free-text city names into join keys. The same
// chain runs on both the scraped column and the gazetteer labels so that
// spelling variants of one commune converge to one key. Keys are for
// matching only, never for display.
type Normalizer struct {
	aliases map[string]string
	steps   []func(string) string
}

// NewNormalizer creates a Normalizer with the given both-sides alias table.
func NewNormalizer(aliases map[string]string) *Normalizer {
	n := &Normalizer{aliases: aliases}
	n.steps = []func(string) string{
		strings.ToLower,
		separatorStripper.Replace,
		accentFolder.Replace,
		// Unanchored on purpose: mirrors the historical behavior, and the
		// alias table covers the one commune it mangles.
		func(s string) string { return strings.ReplaceAll(s, "saint", "st") },
		n.applyAlias,
	}
	return n
}

func (n *Normalizer) applyAlias(s string) string {
	if target, ok := n.aliases[s]; ok {
		return target
	}
	return s
}

// Key runs the shared transform chain. Idempotent: Key(Key(x)) == Key(x).
func (n *Normalizer) Key(name string) string {
	for _, step := range n.steps {
		name = step(name)
	}
	return name
}

// ListingKey runs the shared chain plus the scraped-side-only rules:
// abbreviated-commune aliases and the Paris arrondissement collapse.
func (n *Normalizer) ListingKey(name string) string {
	key := n.Key(name)
	if target, ok := listingAliases[key]; ok {
		key = target
	}
	if strings.Contains(key, "paris") &&
		(strings.Contains(key, "eme") || strings.Contains(key, "er")) {
		return "paris"
	}
	return key
}
