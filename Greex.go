/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: Greex.go
Description: Standalone demonstration harness for the Greex engine. Runs the
built-in scroll example sets through the inference pipeline, compares the
generated patterns to the expected ones, and writes detailed HTML/JSON
reports to ./greex_output. Modular, clean, and beautiful.
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/greex/pkg/engine"
)

// ScrollRun captures one scroll outcome for the report
type ScrollRun struct {
	Scroll    string   `json:"scroll"`
	Valid     []string `json:"valid"`
	Invalid   []string `json:"invalid"`
	Expected  string   `json:"expected"`
	Generated string   `json:"generated"`
	Strategy  string   `json:"strategy,omitempty"`
	Status    string   `json:"status"`
	Duration  string   `json:"duration"`
}

type scroll struct {
	name     string
	valid    []string
	invalid  []string
	expected string
}

var scrolls = []scroll{
	{"Scroll 1", []string{"abc", "def"}, []string{"123", "456"}, `^\D+$`},
	{"Scroll 2", []string{"aaa", "abb", "acc"}, []string{"bbb", "bcc", "bca"}, `^[a].+$`},
	{"Scroll 3", []string{"abc1", "bbb1", "ccc1"}, []string{"abc", "bbb", "ccc"}, `^.+[1]$`},
	{"Scroll 4", []string{"abc-1", "bbb-1", "cde-1"}, []string{"abc1", "bbb1", "cde1"}, `^.+-.+$`},
	{"Scroll 5", []string{"foo@abc.com", "bar@def.net"}, []string{"baz@abc", "qux.com"}, `^\D+@\w+\.\w+$`},
}

func main() {
	outputDir := "./greex_output"
	os.MkdirAll(outputDir, 0755)

	eng := engine.NewEngine()

	var results []ScrollRun
	for _, sc := range scrolls {
		result := eng.InferWithResult(sc.valid, sc.invalid)

		status := "failed"
		if result.Pattern == sc.expected {
			status = "passed"
		} else if !result.Found {
			status = "not-found"
		}

		results = append(results, ScrollRun{
			Scroll:    sc.name,
			Valid:     sc.valid,
			Invalid:   sc.invalid,
			Expected:  sc.expected,
			Generated: result.Pattern,
			Strategy:  result.Strategy,
			Status:    status,
			Duration:  result.Duration.String(),
		})

		fmt.Printf("📜 %s: %s (generated %q)\n", sc.name, status, result.Pattern)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("greex_scroll_report_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("greex_scroll_report_%s.html", timestamp))

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, results)

	fmt.Printf("\nReports written to %s and %s\n", jsonPath, htmlPath)
}

func writeHTMLReport(path string, results []ScrollRun) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>Greex Scroll Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.passed{background:#dfd;}tr.failed{background:#fdd;}tr.not-found{background:#ffd;}code{background:#f6f6f6;padding:1px 3px;}</style></head><body>")
	f.WriteString("<h1>Greex Scroll Report</h1><table><tr><th>Scroll</th><th>Valid</th><th>Invalid</th><th>Expected</th><th>Generated</th><th>Strategy</th><th>Status</th><th>Duration</th></tr>")
	for _, r := range results {
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td>%s</td><td><code>%s</code></td><td><code>%s</code></td><td>%s</td><td>%s</td><td>%s</td></tr>",
			r.Status, r.Scroll,
			htmlEscape(strings.Join(r.Valid, ", ")), htmlEscape(strings.Join(r.Invalid, ", ")),
			htmlEscape(r.Expected), htmlEscape(r.Generated), r.Strategy, r.Status, r.Duration))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
