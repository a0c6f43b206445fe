// Package validation checks values taken from navigation files before they
// reach rendered markup.
package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// allowedSchemes are the URL schemes a navigation link may use. Relative
// references have no scheme and are always allowed.
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// ValidateHref rejects hrefs that would run script or inject markup when
// rendered as a link target. An empty href is valid.
func ValidateHref(href string) error {
	if href == "" {
		return nil
	}

	for _, r := range href {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("href contains control character %U", r)
		}
	}

	if strings.ContainsAny(href, " <>\"'`\\") {
		return fmt.Errorf("href contains whitespace or markup characters")
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("invalid href: %w", err)
	}

	if parsed.Scheme != "" && !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return fmt.Errorf("href scheme %q is not allowed", parsed.Scheme)
	}

	if (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host == "" {
		return fmt.Errorf("absolute href must have a host")
	}

	return nil
}
