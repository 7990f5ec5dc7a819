package cfg

type Cfg struct {
	// HTTP server configuration
	Port         string
	APIAccessKey string

	// Extraction service configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// Ingestion configuration
	SourcesFile       string
	RelayURL          string
	SyncInterval      int
	SourceItemLimit   int
	HTTPTimeout       int
	LogSourceFailures bool

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
