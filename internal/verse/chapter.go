package verse

import (
	"regexp"
	"strings"
)

var (
	// "Book N:M", with optional verse range: "John 3:16-17" -> "John 3".
	bookChapterVerse = regexp.MustCompile(`^(.+?\s+\d+):\d+`)
	// Single-chapter books: "Jude 24" -> "Jude".
	nameNumber = regexp.MustCompile(`^(.+?)\s+\d+$`)
)

// ChapterFor returns the chapter key of a reference. References that match
// neither pattern are their own chapter.
func ChapterFor(reference string) string {
	ref := strings.TrimSpace(reference)
	if m := bookChapterVerse.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if m := nameNumber.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	return ref
}
