package overlay

import "errors"

// Custom overlay service errors
var (
	// ErrEmptyPhraseList indicates a phrase save contained no non-blank entries
	ErrEmptyPhraseList = errors.New("phrase list is empty after filtering blank entries")

	// ErrUnknownFileKind indicates an upload or removal named an unknown media slot
	ErrUnknownFileKind = errors.New("unknown file kind")
)

// IsEmptyPhraseList checks if the error is an empty phrase list error
func IsEmptyPhraseList(err error) bool {
	return errors.Is(err, ErrEmptyPhraseList)
}
