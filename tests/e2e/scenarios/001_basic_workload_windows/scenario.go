package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	windowCount          = 4   // one-second windows filled with events
	createdPerPath       = 60  // created events per path per window
	modifiedPerPath      = 30  // modified events per path per window
	movedPerPath         = 10  // moved events per path per window
	hotPathExtraModified = 50  // extra modifications on hotPath in the last window
	maxBatchEvents       = 500 // must stay below the ingestion size limit
)

var (
	paths = []string{
		"/mnt/san01/projects/render.exr",
		"/mnt/san01/projects/scene.blend",
		"/mnt/san02/archive/2025.tar",
		"/mnt/san02/archive/2024.tar",
	}
	hotPath = "/mnt/san01/projects/hot.db"
)

// ### End - fixed configs

type ioEvent struct {
	Kind        string `json:"kind"`
	Path        string `json:"path"`
	IsDirectory bool   `json:"isDirectory"`
	Timestamp   string `json:"timestamp"`
}

type windowSnapshot struct {
	WindowStart       time.Time `json:"windowStart"`
	ReadCount         int64     `json:"readCount"`
	WriteCount        int64     `json:"writeCount"`
	ModificationCount int64     `json:"modificationCount"`
	TotalEvents       int       `json:"totalEvents"`
}

type historyResponse struct {
	History []windowSnapshot `json:"history"`
	Count   int              `json:"count"`
}

type pathStatistics struct {
	Path               string `json:"path"`
	TotalReads         int64  `json:"totalReads"`
	TotalWrites        int64  `json:"totalWrites"`
	TotalModifications int64  `json:"totalModifications"`
	IsHighLoad         bool   `json:"isHighLoad"`
	IsBurst            bool   `json:"isBurst"`
}

type summary struct {
	TotalReads         int64 `json:"totalReads"`
	TotalWrites        int64 `json:"totalWrites"`
	TotalModifications int64 `json:"totalModifications"`
	HighLoadPathsCount int   `json:"highLoadPathsCount"`
	WindowsAnalyzed    int   `json:"windowsAnalyzed"`
}

// main runs the e2e scenario: 001_basic_workload_windows
//
// This scenario posts a deterministic stream of I/O events to a freshly started monitor and
// checks the sealed windows, per-path statistics and summary it reports.
//
// What it tests:
//   - Event batch ingestion via POST /api/events
//   - Idempotency key handling for duplicate batch detection
//   - Window rotation on one-second boundaries in arrival order
//   - Read/write/modification tallies per window and per path
//   - High-load classification when a path crosses the modification threshold
//
// Expected results (default thresholds, window_seconds=1):
//   - Duplicate batches return 409 Conflict and add no events
//   - Four sealed windows, 18:03:00 to 18:03:03 UTC, each with 240 reads, 160 writes and
//     120 modifications; the last one also carries 50 modifications of hot.db
//   - hot.db is high-load (50 >= 50 modifications in one window), no other path is flagged
//   - No bursts: the last window stays below three times the trailing average
//
// Batches are sent one at a time: window assignment follows arrival order, so parallel
// sends would make the expected window contents nondeterministic.
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the monitor API server
	dateUTC := getEnv("DATE_UTC", "2025-12-28")            // Date used for event timestamps (UTC)
	itemsPerBatch := getEnvInt("ITEMS_PER_BATCH", 40)      // Number of events per batch
	duplicateEvery := getEnvInt("DUPLICATE_EVERY", 5)      // Resend every Nth batch with the same idempotency key
	fileStorageDir := ".tmp/file-storage"                  // File storage directory path relative to project root
	wantCleanFileStorage := getEnvBool("WANT_CLEAN_FILE_STORAGE", true)

	if itemsPerBatch <= 0 || itemsPerBatch > maxBatchEvents {
		fmt.Fprintf(os.Stderr, "ERROR: ITEMS_PER_BATCH must be between 1 and %d\n", maxBatchEvents)
		os.Exit(1)
	}

	if wantCleanFileStorage {
		storagePath, err := resolveFromProjectRoot(fileStorageDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleaning file storage directory: %s\n", storagePath)
		if err := os.RemoveAll(storagePath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean file storage directory: %v\n", err)
		}
		fmt.Println()
	}

	fmt.Println("Starting e2e scenario: 001_basic_workload_windows")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("DUPLICATE_EVERY: %d\n", duplicateEvery)
	fmt.Println()

	events := generateEvents(dateUTC)
	// One event in the next second seals the last filled window.
	events = append(events, ioEvent{Kind: "created", Path: paths[0], Timestamp: timestamp(dateUTC, windowCount, 0)})
	fmt.Printf("Generated %d events\n", len(events))

	client := &http.Client{Timeout: 30 * time.Second}
	var accepted, conflicted int
	batchIndex := 0
	for start := 0; start < len(events); start += itemsPerBatch {
		end := min(start+itemsPerBatch, len(events))
		batchIndex++
		jsonData, err := json.Marshal(events[start:end])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to encode batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}

		sends := 1
		if duplicateEvery > 0 && batchIndex%duplicateEvery == 0 {
			sends = 2
		}
		for i := 0; i < sends; i++ {
			statusCode, err := sendBatch(client, baseURL, batchIndex, jsonData)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", batchIndex, err)
				os.Exit(1)
			}
			switch statusCode {
			case http.StatusAccepted:
				accepted++
			case http.StatusConflict:
				conflicted++
			}
		}
	}
	fmt.Printf("Accepted batches: %d, conflicted batches: %d\n", accepted, conflicted)
	fmt.Println()

	// The queue is drained asynchronously.
	var history historyResponse
	deadline := time.Now().Add(10 * time.Second)
	for {
		if err := getJSON(client, baseURL+"/api/workload/history?limit=100", &history); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		if history.Count >= windowCount || time.Now().After(deadline) {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	var failures []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			failures = append(failures, fmt.Sprintf(format, args...))
		}
	}

	check(history.Count == windowCount, "expected %d sealed windows, got %d", windowCount, history.Count)
	for i, window := range history.History {
		if i >= windowCount {
			break
		}
		expectedStart, _ := time.Parse(time.RFC3339Nano, timestamp(dateUTC, i, 0))
		expectedModifications := int64(len(paths) * modifiedPerPath)
		if i == windowCount-1 {
			expectedModifications += hotPathExtraModified
		}
		check(window.WindowStart.Equal(expectedStart), "window %d: start %s, expected %s", i, window.WindowStart, expectedStart)
		check(window.ReadCount == int64(len(paths)*createdPerPath), "window %d: %d reads", i, window.ReadCount)
		check(window.ModificationCount == expectedModifications, "window %d: %d modifications, expected %d", i, window.ModificationCount, expectedModifications)
		check(window.WriteCount == expectedModifications+int64(len(paths)*movedPerPath), "window %d: %d writes", i, window.WriteCount)
	}

	var hot pathStatistics
	if err := getJSON(client, baseURL+"/api/path?path="+url.QueryEscape(hotPath), &hot); err != nil {
		failures = append(failures, err.Error())
	}
	check(hot.IsHighLoad, "%s should be high-load", hotPath)
	check(!hot.IsBurst, "%s should not be marked as burst", hotPath)
	check(hot.TotalModifications == hotPathExtraModified, "%s: %d modifications", hotPath, hot.TotalModifications)

	var stats summary
	if err := getJSON(client, baseURL+"/api/stats/summary", &stats); err != nil {
		failures = append(failures, err.Error())
	}
	check(stats.WindowsAnalyzed == windowCount, "summary analyzed %d windows", stats.WindowsAnalyzed)
	check(stats.HighLoadPathsCount == 1, "summary reports %d high-load paths", stats.HighLoadPathsCount)

	fmt.Println("=== Statistics ===")
	fmt.Printf("Sealed windows: %d\n", history.Count)
	fmt.Printf("Total reads: %d\n", stats.TotalReads)
	fmt.Printf("Total writes: %d\n", stats.TotalWrites)
	fmt.Printf("Total modifications: %d\n", stats.TotalModifications)
	fmt.Printf("High-load paths: %d\n", stats.HighLoadPathsCount)

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", failure)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// resolveFromProjectRoot walks up from the working directory to the go.mod and joins dir onto it.
func resolveFromProjectRoot(dir string) (string, error) {
	projectRoot, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			return filepath.Abs(filepath.Join(projectRoot, dir))
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			break
		}
		projectRoot = parent
	}
	return "", fmt.Errorf("could not find go.mod, run from the project root")
}

func timestamp(dateUTC string, second, millisecond int) string {
	return fmt.Sprintf("%sT18:03:%02d.%03dZ", dateUTC, second, millisecond)
}

// generateEvents returns every event in timestamp order. The first event of each window
// lands exactly on its second so windows start on whole seconds.
func generateEvents(dateUTC string) []ioEvent {
	var events []ioEvent
	for w := 0; w < windowCount; w++ {
		var window []ioEvent
		for _, path := range paths {
			for i := 0; i < createdPerPath; i++ {
				window = append(window, ioEvent{Kind: "created", Path: path})
			}
			for i := 0; i < modifiedPerPath; i++ {
				window = append(window, ioEvent{Kind: "modified", Path: path})
			}
			for i := 0; i < movedPerPath; i++ {
				window = append(window, ioEvent{Kind: "moved", Path: path})
			}
		}
		if w == windowCount-1 {
			for i := 0; i < hotPathExtraModified; i++ {
				window = append(window, ioEvent{Kind: "modified", Path: hotPath})
			}
		}
		for i := range window {
			window[i].Timestamp = timestamp(dateUTC, w, i*999/len(window))
		}
		events = append(events, window...)
	}
	return events
}

func sendBatch(client *http.Client, baseURL string, batchIndex int, jsonData []byte) (int, error) {
	// Same key for all duplicates of this batch
	idempotencyKey := fmt.Sprintf("batch-%06d", batchIndex)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/events", bytes.NewReader(jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", idempotencyKey)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// 409 is expected for duplicates
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func getJSON(client *http.Client, target string, out any) error {
	resp, err := client.Get(target)
	if err != nil {
		return fmt.Errorf("GET %s failed: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", target, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
