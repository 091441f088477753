package download

import "context"

// ProgressFunc receives progress samples while the engine transfers data
type ProgressFunc func(Sample)

// Engine performs one fetch with a prepared configuration. It returns the path
// of the file it produced when known.
type Engine interface {
	Fetch(ctx context.Context, url string, cfg FetchConfig, onProgress ProgressFunc) (string, error)
}

// Fetcher starts background fetch tasks. The returned channel carries zero or
// more ProgressEvent values followed by exactly one FinishedEvent, then closes.
type Fetcher interface {
	Start(url string, cfg FetchConfig) <-chan Event
}
