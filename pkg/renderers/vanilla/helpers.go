package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	copyPolicyOnce sync.Once
	copyPolicy     *bluemonday.Policy
)

// sanitizeCopy cleans author supplied description and error markup, keeping
// inline formatting and links.
func sanitizeCopy(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(copySanitizer().Sanitize(trimmed))
}

func copySanitizer() *bluemonday.Policy {
	copyPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("strong", "em", "b", "i", "code", "br", "span", "small")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowURLSchemes("http", "https", "mailto")
		policy.RequireParseableURLs(true)
		policy.RequireNoFollowOnLinks(true)
		copyPolicy = policy
	})
	return copyPolicy
}
