// Command schedule-check posts a sample profile, re-fetches the cached
// schedule through the fingerprint lookup, and verifies the two match.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

var profileSample = map[string]any{
	"fullName":         "CLI Check",
	"occupation":       "Engineer",
	"workStyle":        "remote",
	"timezone":         "UTC",
	"goal":             "maintain",
	"preferredWindows": []string{"midday", "evening"},
	"equipmentAccess":  []string{"bodyweight"},
	"dietPreference":   "standard",
	"stressLevel":      "moderate",
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	flag.Parse()

	client := &http.Client{Timeout: 15 * time.Second}

	generated, err := post(client, *baseURL+"/fit/schedule", profileSample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate failed: %v\n", err)
		os.Exit(1)
	}
	fetched, err := post(client, *baseURL+"/fit/schedule/fetch", profileSample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	if !bytes.Equal(generated, fetched) {
		fmt.Fprintln(os.Stderr, "mismatch between generated and fetched schedule")
		os.Exit(2)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, fetched, "", "  "); err == nil {
		fmt.Println(buf.String())
	} else {
		os.Stdout.Write(fetched)
	}
}

func post(client *http.Client, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
