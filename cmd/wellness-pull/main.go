// Command wellness-pull fetches a provider's wellness snapshot from a
// running API instance and optionally imports it into the history.
//
// Usage:
//
//	wellness-pull [-base-url http://localhost:8080] [-import] <provider>
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	baseURL := flag.String("base-url", defaultBaseURL, "API base URL")
	doImport := flag.Bool("import", false, "import the fetched snapshot into the wellness history")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wellness-pull [-base-url URL] [-import] <provider>")
		os.Exit(2)
	}
	provider := flag.Arg(0)

	client := &http.Client{Timeout: 15 * time.Second}

	entries, err := fetchSnapshot(client, *baseURL, provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	if !*doImport {
		printJSON(entries)
		return
	}

	result, err := importSnapshot(client, *baseURL, provider, entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
	printJSON(result)
}

func fetchSnapshot(client *http.Client, baseURL, provider string) (json.RawMessage, error) {
	resp, err := client.Get(fmt.Sprintf("%s/fit/wellness-sync/provider/%s", baseURL, provider))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

func importSnapshot(client *http.Client, baseURL, provider string, entries json.RawMessage) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]json.RawMessage{
		"source":  json.RawMessage(fmt.Sprintf("%q", provider)),
		"entries": entries,
	})
	if err != nil {
		return nil, err
	}
	resp, err := client.Post(baseURL+"/fit/wellness-sync/import", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

func printJSON(raw json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		os.Stdout.Write(raw)
		fmt.Println()
		return
	}
	fmt.Println(buf.String())
}
