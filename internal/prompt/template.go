package prompt

import "os"

// templatePaths are the conventional repository-relative locations of a
// pull-request template, in lookup order. First existing file wins.
var templatePaths = []string{
	".github/PULL_REQUEST_TEMPLATE.md",
	".github/pull_request_template.md",
	"PULL_REQUEST_TEMPLATE.md",
	"pull_request_template.md",
}

// LoadPRTemplate returns the repository's PR template, or an empty string
// when none of the conventional locations exist. Read failures are
// treated as absence; a template is a hint, never a requirement.
func LoadPRTemplate() string {
	for _, path := range templatePaths {
		content, err := os.ReadFile(path)
		if err == nil {
			return string(content)
		}
	}
	return ""
}
