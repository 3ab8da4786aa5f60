package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxPostTextLen caps the text content of a post.
const MaxPostTextLen = 10000

// ValidatePostContent enforces the post invariant: non-empty text content
// or at least one attachment, and at most max attachments.
func ValidatePostContent(text string, files []string, maxAttachments int) error {
	if strings.TrimSpace(text) == "" && len(files) == 0 {
		return fmt.Errorf("a post needs text content or at least one attachment")
	}
	if len(text) > MaxPostTextLen {
		return fmt.Errorf("text content must not exceed %d characters", MaxPostTextLen)
	}
	if len(files) > maxAttachments {
		return fmt.Errorf("a post can have at most %d attachments", maxAttachments)
	}
	for _, f := range files {
		if err := validateAttachmentURL(f); err != nil {
			return err
		}
	}
	return nil
}

func validateAttachmentURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("attachment must be a valid http(s) URL")
	}
	return nil
}
