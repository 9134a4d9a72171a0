package refdoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// maxDocumentBytes caps the response body read by the loader.
const maxDocumentBytes = 64 << 20

// Loader fetches the reference document. The fetch is a single attempt:
// network or parse failure surfaces as one error state, with no retry.
type Loader struct {
	client *http.Client
	logger *log.Logger
}

// NewLoader creates a Loader with the given request timeout.
func NewLoader(timeout time.Duration, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Load fetches and normalizes the document from source, which is either an
// HTTP(S) URL or a local file path (build-time asset).
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	start := time.Now()

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("reading document %s: %w", source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	doc, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	l.logger.Info("document loaded",
		"source", source,
		"classes", len(doc.Classes),
		"modules", len(doc.Modules),
		"members", doc.MemberCount(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return doc, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching document: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return data, nil
}
