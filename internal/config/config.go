package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration
type Config struct {
	// News sources shown in the source picker
	Sources []Source `json:"sources"`

	// Voice profiles available for narration
	Voices []Voice `json:"voices"`

	Summarizer SummarizerConfig `json:"summarizer"`
	Narration  NarrationConfig  `json:"narration"`

	// Extractor selects the article body extraction strategy:
	// "heuristic" (default) or "readability"
	Extractor string `json:"extractor"`

	LogLevel string `json:"log_level"`
}

// Source is a named feed URL. Static configuration, never mutated at runtime.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Voice maps a display name to an optional reference audio sample.
// An empty ReferenceAudio is valid and falls back to the default voice.
type Voice struct {
	Name           string `json:"name"`
	ReferenceAudio string `json:"reference_audio,omitempty"`
}

// SummarizerConfig holds summarization backend settings
type SummarizerConfig struct {
	Model     string `json:"model"`
	Endpoint  string `json:"endpoint,omitempty"` // Empty means the hosted inference API
	APIKey    string `json:"api_key,omitempty"`
	MaxLength int    `json:"max_length"` // Output token bound
	MinLength int    `json:"min_length"` // Below this many input words, skip the model
}

// NarrationConfig holds voice-cloning backend settings
type NarrationConfig struct {
	Model        string `json:"model"`
	Endpoint     string `json:"endpoint"` // Local TTS server
	APIKey       string `json:"api_key,omitempty"`
	ReferenceDir string `json:"reference_dir"`
	Language     string `json:"language"`
	Normalize    bool   `json:"normalize"` // Volume-normalize synthesized audio
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Sources: []Source{
			{Name: "BBC News", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
			{Name: "CNN", URL: "http://rss.cnn.com/rss/edition.rss"},
			{Name: "Reuters", URL: "http://feeds.reuters.com/reuters/topNews"},
			{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
			{Name: "The New York Times", URL: "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml"},
		},
		Voices: []Voice{
			{Name: "Morgan Freeman", ReferenceAudio: "morgan_freeman.wav"},
			{Name: "Oprah Winfrey", ReferenceAudio: "oprah_winfrey.wav"},
			{Name: "Barack Obama", ReferenceAudio: "barack_obama.wav"},
			{Name: "Emma Watson", ReferenceAudio: "emma_watson.wav"},
			{Name: "David Attenborough", ReferenceAudio: "david_attenborough.wav"},
		},
		Summarizer: SummarizerConfig{
			Model:     "Falconsai/text_summarization",
			MaxLength: 150,
			MinLength: 30,
		},
		Narration: NarrationConfig{
			Model:        "tts_models/multilingual/multi-dataset/xtts_v2",
			Endpoint:     "http://localhost:5002",
			ReferenceDir: "reference_audio",
			Language:     "en",
			Normalize:    true,
		},
		Extractor: "heuristic",
		LogLevel:  "info",
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".newsbreeze", "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from the given path, or returns defaults.
// Environment credentials always win over the file.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.applyDefaults()
	cfg.AutoPopulateFromEnv()

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes config to the given path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600) // Restrictive permissions for API keys
}

// AutoPopulateFromEnv fills in credentials from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if key := os.Getenv("HUGGINGFACE_API_KEY"); key != "" {
		c.Summarizer.APIKey = key
	}
	if key := os.Getenv("COQUI_API_KEY"); key != "" {
		c.Narration.APIKey = key
	}
	if url := os.Getenv("NEWSBREEZE_TTS_URL"); url != "" {
		c.Narration.Endpoint = url
	}
}

// applyDefaults fills zero values in a loaded config so a hand-edited
// file with missing fields still produces a working setup.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if len(c.Sources) == 0 {
		c.Sources = def.Sources
	}
	if len(c.Voices) == 0 {
		c.Voices = def.Voices
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = def.Summarizer.Model
	}
	if c.Summarizer.MaxLength == 0 {
		c.Summarizer.MaxLength = def.Summarizer.MaxLength
	}
	if c.Summarizer.MinLength == 0 {
		c.Summarizer.MinLength = def.Summarizer.MinLength
	}
	if c.Narration.Model == "" {
		c.Narration.Model = def.Narration.Model
	}
	if c.Narration.Endpoint == "" {
		c.Narration.Endpoint = def.Narration.Endpoint
	}
	if c.Narration.ReferenceDir == "" {
		c.Narration.ReferenceDir = def.Narration.ReferenceDir
	}
	if c.Narration.Language == "" {
		c.Narration.Language = def.Narration.Language
	}
	if c.Extractor == "" {
		c.Extractor = def.Extractor
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// VoiceByName returns the voice profile for a display name, if configured.
func (c *Config) VoiceByName(name string) (Voice, bool) {
	for _, v := range c.Voices {
		if v.Name == name {
			return v, true
		}
	}
	return Voice{}, false
}
