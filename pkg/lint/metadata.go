package lint

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL points at the hosted standards documents.
const DefaultDocsBaseURL = "https://github.com/alextrs/oestandards/blob/master/docs"

// DocsBaseURL can be overridden via config for forks or offline mirrors.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation URL for a rule. The rule's group
// maps to the standards document that motivates it.
func BuildDocURL(ruleID string) string {
	group := ruleID
	if i := strings.IndexByte(ruleID, '/'); i > 0 {
		group = ruleID[:i]
	}
	return fmt.Sprintf("%s/%s.md", DocsBaseURL, group)
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}
