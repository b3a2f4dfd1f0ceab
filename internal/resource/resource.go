// Package resource reads the content the CLI renders: a file, an http(s)
// URL, or standard input.
package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	perrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Stdin is the resource name that selects standard input.
const Stdin = "-"

// DefaultTimeout bounds a URL fetch.
const DefaultTimeout = 30 * time.Second

// Content types returned by DetectType besides lexer names.
const (
	TypeMarkdown = "markdown"
	TypeJSON     = "json"
)

var extensionTypes = map[string]string{
	".md":       TypeMarkdown,
	".markdown": TypeMarkdown,
	".json":     TypeJSON,
	".csv":      "csv",
	".tsv":      "csv",
	".js":       "javascript",
	".jsx":      "javascript",
	".ts":       "typescript",
	".tsx":      "typescript",
	".py":       "python",
	".go":       "go",
	".rs":       "rust",
	".rb":       "ruby",
	".java":     "java",
	".c":        "c",
	".h":        "c",
	".cpp":      "cpp",
	".sh":       "bash",
	".html":     "html",
	".css":      "css",
	".xml":      "xml",
	".yaml":     "yaml",
	".yml":      "yaml",
	".toml":     "toml",
	".sql":      "sql",
}

// Content is a loaded resource.
type Content struct {
	Name string
	Text string
	// Type is TypeMarkdown, TypeJSON, a lexer name, or empty when unknown.
	Type string
}

// Loader reads resources. The zero value is not usable; use NewLoader.
type Loader struct {
	client *http.Client
	stdin  io.Reader
	log    *logger.Logger
}

// Option customises a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for URLs.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) { l.client = client }
}

// WithStdin replaces standard input.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// NewLoader creates a loader reading os.Stdin and fetching with a client
// limited to DefaultTimeout.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: DefaultTimeout},
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// IsURL reports whether name is fetched over HTTP.
func IsURL(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// Load reads name and detects its type from the extension.
func (l *Loader) Load(ctx context.Context, name string) (Content, error) {
	var (
		text string
		err  error
	)
	switch {
	case name == Stdin:
		text, err = l.readStdin()
	case IsURL(name):
		text, err = l.fetch(ctx, name)
	default:
		text, err = l.readFile(name)
	}
	if err != nil {
		l.log.Error(err, "load resource failed", "resource", name)
		return Content{}, err
	}
	content := Content{Name: name, Text: text, Type: DetectType(name)}
	l.log.Debug("resource loaded", "resource", name, "bytes", len(text), "type", content.Type)
	return content, nil
}

func (l *Loader) readStdin() (string, error) {
	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return "", perrors.NewResourceError("stdin", "read", err)
	}
	return string(data), nil
}

func (l *Loader) readFile(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", perrors.NewResourceError(name, "read", err)
	}
	return string(data), nil
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", perrors.NewResourceError(url, "fetch", err)
	}
	req.Header.Set("User-Agent", "prism")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", perrors.NewResourceError(url, "fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", perrors.NewResourceError(url, "fetch", fmt.Errorf("HTTP %s", resp.Status))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", perrors.NewResourceError(url, "fetch", err)
	}
	return string(data), nil
}

// DetectType maps the extension of name to a content type. URLs are judged
// by their path; query strings are ignored.
func DetectType(name string) string {
	if IsURL(name) {
		rest := name[strings.Index(name, "://")+3:]
		rest, _, _ = strings.Cut(rest, "?")
		rest, _, _ = strings.Cut(rest, "#")
		_, p, _ := strings.Cut(rest, "/")
		return extensionTypes[strings.ToLower(path.Ext(p))]
	}
	return extensionTypes[strings.ToLower(filepath.Ext(name))]
}

// IsJSON reports whether text is a valid JSON document.
func IsJSON(text string) bool {
	return json.Valid([]byte(text))
}
