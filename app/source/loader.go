package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default feed list used when no sources file is present. The dedicated
// Rajasthan and Central feeds come before the general and backup feeds.
var defaults = []Source{
	{URL: "https://rajasthancareers.in/category/rajasthan-jobs/feed/"},
	{URL: "https://rajasthancareers.in/category/central-govt-jobs/feed/"},
	{URL: "https://rajasthancareers.in/category/admit-card/feed/"},
	{URL: "https://rajasthancareers.in/category/result/feed/"},
	{URL: "https://rajasthancareers.in/feed/"},
	{URL: "https://www.freejobalert.com/feed/"},
}

// Load reads the source list from a YAML file, falling back to the built-in
// defaults when the file does not exist. Sources without an explicit label get
// one derived from their URL's host.
func Load(path string) ([]Source, error) {
	sources := defaults

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("Sources file not found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	default:
		var f fileFormat
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse sources file %s: %w", path, err)
		}
		if len(f.Sources) == 0 {
			return nil, fmt.Errorf("sources file %s lists no sources", path)
		}
		sources = f.Sources
	}

	out := make([]Source, 0, len(sources))
	for _, s := range sources {
		if s.URL == "" {
			return nil, fmt.Errorf("source with empty URL in %s", path)
		}
		if s.Label == "" {
			s.Label = LabelFor(s.URL)
		}
		out = append(out, s)
	}

	return out, nil
}

// LabelFor derives a human-readable label from a feed URL's host:
// "https://rajasthancareers.in/feed/" becomes "Rajasthancareers".
func LabelFor(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "Official Feed"
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	name, _, found := strings.Cut(host, ".")
	if !found || name == "" {
		return "Official Feed"
	}

	return strings.ToUpper(name[:1]) + name[1:]
}
