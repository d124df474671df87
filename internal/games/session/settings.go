package session

import (
	"sync"

	"github.com/marcislaughter/bible-cryptogram/internal/config"
	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

// Package-level settings, set by the CLI and menus before a game is created.
var (
	mu               sync.Mutex
	configPath       string
	difficultyPreset string
	corpusPath       string
	startReference   string
	startLevel       int

	corpusCache = make(map[string]*verse.Corpus)

	startMu sync.Mutex
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	mu.Lock()
	defer mu.Unlock()
	difficultyPreset = preset
}

// SetCorpusPath sets a custom verse corpus file. Empty means the embedded one.
func SetCorpusPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	corpusPath = path
}

// SetStartVerse sets the reference of the first verse. Empty picks a random
// verse from the seed.
func SetStartVerse(reference string) {
	mu.Lock()
	defer mu.Unlock()
	startReference = reference
}

// SetStartLevel overrides the first-letter level (1-5). 0 keeps the config.
func SetStartLevel(level int) {
	mu.Lock()
	defer mu.Unlock()
	startLevel = level
}

// GetStartVerse returns the currently selected start verse.
func GetStartVerse() string {
	mu.Lock()
	defer mu.Unlock()
	return startReference
}

// StartWith runs reset with the start verse and level overridden, then
// restores the previous values. An empty reference or a zero level keeps the
// current setting. Concurrent sessions (SSH) are serialized so each game sees
// its own selection.
func StartWith(reference string, level int, reset func()) {
	startMu.Lock()
	defer startMu.Unlock()

	mu.Lock()
	prevRef, prevLevel := startReference, startLevel
	if reference != "" {
		startReference = reference
	}
	if level > 0 {
		startLevel = level
	}
	mu.Unlock()

	defer func() {
		mu.Lock()
		startReference, startLevel = prevRef, prevLevel
		mu.Unlock()
	}()
	reset()
}

// Options is the resolved configuration of one game session.
type Options struct {
	Games      config.GamesConfig
	Corpus     *verse.Corpus
	StartVerse string
	Level      int // 0 unless overridden
}

// CurrentOptions resolves the package settings. Config or corpus files that
// fail to load fall back to the embedded defaults; the CLI reports those
// errors before any game starts.
func CurrentOptions() Options {
	mu.Lock()
	defer mu.Unlock()

	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		preset = ""
	}
	games, err := config.LoadWithPreset(configPath, preset)
	if err != nil {
		games, _ = config.LoadWithPreset("", preset)
	}

	return Options{
		Games:      games,
		Corpus:     loadCorpus(corpusPath),
		StartVerse: startReference,
		Level:      startLevel,
	}
}

// Corpus returns the corpus selected by the package settings.
func Corpus() *verse.Corpus {
	mu.Lock()
	defer mu.Unlock()
	return loadCorpus(corpusPath)
}

// loadCorpus caches corpora by path. Callers hold mu.
func loadCorpus(path string) *verse.Corpus {
	if c, ok := corpusCache[path]; ok {
		return c
	}
	c, err := verse.Load(path)
	if err != nil {
		c = verse.Default()
	}
	corpusCache[path] = c
	return c
}
