package ultimasgeek

import (
	"strings"

	"github.com/franvillafanez/ultimasgeek-rss/pkg/urlutils"
)

// IsPostURL reports whether rawURL looks like an article on siteBase.
// The check is deliberately loose: pages that turn out not to be posts are
// dropped later when no title can be extracted from them.
func IsPostURL(rawURL, siteBase string) bool {
	if rawURL == "" || !strings.HasPrefix(rawURL, siteBase) {
		return false
	}

	path := strings.Trim(urlutils.NormalizeURL(rawURL)[len(siteBase):], "/")
	if path == "" {
		return false
	}

	for _, prefix := range blockedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}

	if strings.Contains(path, "/page/") {
		return false
	}

	if _, blocked := blockedSlugs[path]; blocked {
		return false
	}

	lower := strings.ToLower(path)
	for _, ext := range assetExtensions {
		if strings.HasSuffix(lower, ext) {
			return false
		}
	}

	return true
}
