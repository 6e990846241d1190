package utils

import (
	"mime"
	"os"
	"regexp"
	"strings"
)

var (
	// textContentTypePatterns matches content types whose bodies are safe to print in debug dumps.
	// The router answers with XML for every API endpoint and HTML for its pages.
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile("^application/xml$"),
		regexp.MustCompile(`^application/.+\+xml$`),
		regexp.MustCompile("^application/x-www-form-urlencoded$"),
	}
)

// IsTextContentType checks if the given content type represents a text-based format.
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// Truncate cuts data to at most limit bytes and marks the cut.
func Truncate(data []byte, limit uint64) string {
	if uint64(len(data)) > limit {
		return string(data[:limit]) + "... [truncated]"
	}

	return string(data)
}
