/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: results_writer.go
Description: Utility for writing inference results to the results directory.
Handles timestamped, versioned, and kind-specific subdirectory naming.
Ensures directories exist and writes JSON files for easy analysis.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteResult writes a result to the results directory with timestamp, kind, and version
func WriteResult(kind string, version string, result interface{}) (string, error) {
	resultsDir := filepath.Join("results", kind)
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	// Filename: 2024-06-11_01-30-00_infer_v1.0.0.json
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_v%s.json", timestamp, kind, version)
	filePath := filepath.Join(resultsDir, filename)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write results file: %w", err)
	}

	return filePath, nil
}
