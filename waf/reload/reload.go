package reload

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"injectwaf/waf/exempt"
	"injectwaf/waf/injection"
	"injectwaf/waf/metrics"

	"github.com/fsnotify/fsnotify"
)

// Manager watches the detection rules files and hot-reloads them. Two files
// are handled: the fingerprint overlay (extra blacklist rows) and the
// exemption subjects list.
type Manager struct {
	watcher        *fsnotify.Watcher
	overlayPath    string
	exemptionsPath string
	exemptHandler  *exempt.Handler
	mu             sync.RWMutex
	lastReload     map[string]time.Time
	reloadDebounce time.Duration
	stopChan       chan struct{}
}

// Config holds reload manager configuration
type Config struct {
	OverlayPath    string
	ExemptionsPath string
	ExemptHandler  *exempt.Handler
	DebounceTime   time.Duration // Minimum time between reloads for same file
	WatchEnabled   bool          // Enable automatic file watching
}

type overlayFile struct {
	Fingerprints []string `json:"fingerprints"`
}

type exemptionsFile struct {
	Subjects []string `json:"subjects"`
}

// NewManager creates a new reload manager
func NewManager(config Config) (*Manager, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if config.DebounceTime == 0 {
		config.DebounceTime = 2 * time.Second
	}

	m := &Manager{
		watcher:        watcher,
		overlayPath:    config.OverlayPath,
		exemptionsPath: config.ExemptionsPath,
		exemptHandler:  config.ExemptHandler,
		lastReload:     make(map[string]time.Time),
		reloadDebounce: config.DebounceTime,
		stopChan:       make(chan struct{}),
	}

	if config.WatchEnabled {
		if config.OverlayPath != "" {
			if err := m.watchFile(config.OverlayPath); err != nil {
				log.Printf("Warning: Could not watch overlay rules file - %v (automatic reloads will be unavailable)", err)
			} else {
				log.Printf("Now monitoring overlay rules file for changes: %s", config.OverlayPath)
			}
		}

		if config.ExemptionsPath != "" {
			if err := m.watchFile(config.ExemptionsPath); err != nil {
				log.Printf("Warning: Could not watch exemptions file - %v (automatic reloads will be unavailable)", err)
			} else {
				log.Printf("Now monitoring exemptions file for changes: %s", config.ExemptionsPath)
			}
		}

		go m.watch()
	}

	return m, nil
}

// watchFile adds a file to the watcher
func (m *Manager) watchFile(path string) error {
	// Watch the directory containing the file (for atomic writes)
	dir := filepath.Dir(path)
	return m.watcher.Add(dir)
}

// watch monitors file system events
func (m *Manager) watch() {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				m.handleFileChange(event.Name)
			}

		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-m.stopChan:
			return
		}
	}
}

// handleFileChange processes file change events
func (m *Manager) handleFileChange(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var reloadFunc func() error
	var fileType string

	if m.overlayPath != "" && filepath.Base(path) == filepath.Base(m.overlayPath) {
		reloadFunc = m.reloadOverlay
		fileType = "overlay"
	} else if m.exemptionsPath != "" && filepath.Base(path) == filepath.Base(m.exemptionsPath) {
		reloadFunc = m.reloadExemptions
		fileType = "exemptions"
	} else {
		return
	}

	lastReload, exists := m.lastReload[fileType]
	if exists && time.Since(lastReload) < m.reloadDebounce {
		log.Printf("Skipping reload of %s configuration (too soon after last reload)", fileType)
		return
	}

	log.Printf("Configuration file changed, reloading %s...", fileType)
	if err := reloadFunc(); err != nil {
		log.Printf("Error: Failed to reload %s configuration - %v", fileType, err)
		return
	}

	m.lastReload[fileType] = time.Now()
	log.Printf("Successfully reloaded %s configuration", fileType)

	metrics.ConfigReloads.WithLabelValues(fileType).Inc()
}

// reloadOverlay reloads the fingerprint overlay
func (m *Manager) reloadOverlay() error {
	if _, err := os.Stat(m.overlayPath); err != nil {
		return fmt.Errorf("cannot access overlay rules file: %w", err)
	}

	data, err := os.ReadFile(m.overlayPath)
	if err != nil {
		return fmt.Errorf("failed to read overlay rules: %w", err)
	}

	var rules overlayFile
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("invalid JSON in overlay rules: %w", err)
	}

	injection.SetOverlay(rules.Fingerprints)
	metrics.OverlayFingerprints.Set(float64(injection.OverlaySize()))
	return nil
}

// reloadExemptions reloads the exemption subjects list
func (m *Manager) reloadExemptions() error {
	if m.exemptHandler == nil {
		return fmt.Errorf("no exemption handler configured")
	}
	if _, err := os.Stat(m.exemptionsPath); err != nil {
		return fmt.Errorf("cannot access exemptions file: %w", err)
	}

	data, err := os.ReadFile(m.exemptionsPath)
	if err != nil {
		return fmt.Errorf("failed to read exemptions: %w", err)
	}

	var rules exemptionsFile
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("invalid JSON in exemptions: %w", err)
	}

	m.exemptHandler.SetSubjects(rules.Subjects)
	return nil
}

// ReloadAll manually reloads all watched configurations
func (m *Manager) ReloadAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errors []string

	if m.overlayPath != "" {
		log.Printf("Reloading overlay rules...")
		if err := m.reloadOverlay(); err != nil {
			errors = append(errors, fmt.Sprintf("overlay: %v", err))
			log.Printf("Error: Failed to reload overlay rules - %v", err)
		} else {
			m.lastReload["overlay"] = time.Now()
			log.Printf("Successfully reloaded overlay rules")
			metrics.ConfigReloads.WithLabelValues("overlay").Inc()
		}
	}

	if m.exemptionsPath != "" {
		log.Printf("Reloading exemptions...")
		if err := m.reloadExemptions(); err != nil {
			errors = append(errors, fmt.Sprintf("exemptions: %v", err))
			log.Printf("Error: Failed to reload exemptions - %v", err)
		} else {
			m.lastReload["exemptions"] = time.Now()
			log.Printf("Successfully reloaded exemptions")
			metrics.ConfigReloads.WithLabelValues("exemptions").Inc()
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("reload errors: %v", errors)
	}

	return nil
}

// GetLastReloadTime returns the last reload time for a specific config type
func (m *Manager) GetLastReloadTime(configType string) (time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, exists := m.lastReload[configType]
	return t, exists
}

// GetStatus returns the current status of the reload manager
func (m *Manager) GetStatus() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	status := map[string]interface{}{
		"overlay_path":    m.overlayPath,
		"exemptions_path": m.exemptionsPath,
		"debounce_time":   m.reloadDebounce.String(),
		"last_reloads":    make(map[string]string),
	}

	for configType, lastTime := range m.lastReload {
		if lastReloads, ok := status["last_reloads"].(map[string]string); ok {
			lastReloads[configType] = lastTime.Format(time.RFC3339)
		}
	}

	return status
}

// Stop stops the file watcher
func (m *Manager) Stop() error {
	close(m.stopChan)
	return m.watcher.Close()
}
