package docxtext

import "log/slog"

// ExtractOptions holds configuration for text extraction.
type ExtractOptions struct {
	// Largest decompressed archive member accepted; 0 means the docx default
	maxEntrySize int64

	// nil leaves the docx package's discarding logger in place
	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxEntrySize: o.maxEntrySize,
		logger:       o.logger,
	}
}
