package extract

// Extractor converts a document's raw bytes into extracted plain text.
// Implementations must be safe for concurrent use: the search
// coordinator calls ExtractText from one worker per directory root.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}
