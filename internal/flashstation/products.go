package flashstation

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// Placeholder variables in the portal script, e.g. ${d}.
	rePlaceholder = regexp.MustCompile(`\$\{[a-zA-Z0-9_]+\}`)
	// Literals that look like products but never are, e.g. ${h}ms, ${w}px,
	// directive_chipid_${d}.
	reDenied = regexp.MustCompile(`^(\$\{[a-z]+\}(ms|px)?|directive_chipid_\$\{[a-z]+\})$`)
	// Device-agnostic (GSI) products, e.g. aosp_arm64_pubsign, kernel_aarch64.
	reGeneric = regexp.MustCompile(`^(.*_)?(arm(64)?|aarch64)(_.*)?$`)
	// String literals worth inspecting inside the portal's minified script.
	reScriptLiteral = regexp.MustCompile("[\"`]([a-z0-9$][a-z0-9_${}]*)[\"`]")
)

// IsGenericProduct reports whether a product id names a device-agnostic (GSI)
// build rather than a device-specific one.
func IsGenericProduct(product string) bool {
	return reGeneric.MatchString(product)
}

// candidateProduct maps one string literal harvested from the portal script to
// a product id for the codename, or "" when the literal cannot name one.
func candidateProduct(codename string, generic bool, literal string) string {
	if reDenied.MatchString(literal) {
		return ""
	}

	// Eg. ${d}_fullmte: a single placeholder stands for the codename.
	if locs := rePlaceholder.FindAllStringIndex(literal, -1); len(locs) == 1 {
		return literal[:locs[0][0]] + codename + literal[locs[0][1]:]
	}

	// Eg. aosp_komodo_16k, komodo_16k
	if strings.Contains(literal, codename) && strings.Contains(literal, "_") {
		return literal
	}

	// Eg. aosp_arm64_pubsign, kernel_aarch64
	if generic && reGeneric.MatchString(literal) {
		return literal
	}

	return ""
}

// candidateProducts extracts every product id the builds endpoint should be
// queried for, given the portal script source. The codename itself is always
// included. The result is de-duplicated and sorted.
func candidateProducts(codename string, generic bool, script string) []string {
	seen := map[string]struct{}{codename: {}}
	for _, m := range reScriptLiteral.FindAllStringSubmatch(script, -1) {
		if p := candidateProduct(codename, generic, m[1]); p != "" {
			seen[p] = struct{}{}
		}
	}

	products := make([]string, 0, len(seen))
	for p := range seen {
		products = append(products, p)
	}
	sort.Strings(products)
	return products
}
