package roles

import "errors"

// Sentinel kinds for role extraction failures. Extract swallows all of them;
// Analyze returns them wrapped.
var (
	ErrEmptyVocabulary     = errors.New("empty vocabulary; titles only contain stop words")
	ErrNoTermsAfterPruning = errors.New("no terms remain after document frequency pruning")
	ErrInvalidDocFreq      = errors.New("max_df corresponds to fewer documents than min_df")
	ErrClustering          = errors.New("clustering failed")
	ErrExtraction          = errors.New("role extraction failed")
)

// failureReason maps an extraction error to a short metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyVocabulary):
		return "empty_vocabulary"
	case errors.Is(err, ErrNoTermsAfterPruning):
		return "no_terms"
	case errors.Is(err, ErrInvalidDocFreq):
		return "doc_freq"
	case errors.Is(err, ErrClustering):
		return "clustering"
	default:
		return "other"
	}
}
