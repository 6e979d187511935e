/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for the Greex engine. Provides structured
logging output with colors and highlighted inference fields such as the
generated pattern and the winning strategy.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// CustomFormatter provides structured, colored logging output
type CustomFormatter struct {
	Timestamp bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(fmt.Sprintf("%s ", timestamp))
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", f.getLevelColor(entry.Level), level))
	} else {
		output.WriteString(fmt.Sprintf("%s ", level))
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// getLevelColor returns the ANSI color code for a log level
func (f *CustomFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return 31 // Red
	default:
		return 37
	}
}

// formatFields renders structured fields in a stable order, with the
// inference fields (pattern, strategy, candidate) highlighted.
func (f *CustomFormatter) formatFields(data logrus.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		value := fmt.Sprintf("%v", data[k])
		if f.Colors {
			switch k {
			case "pattern", "candidate":
				value = fmt.Sprintf("\033[35m%s\033[0m", value) // Magenta
			case "strategy":
				value = fmt.Sprintf("\033[34m%s\033[0m", value) // Blue
			}
		}
		parts = append(parts, fmt.Sprintf("%s=%s", k, value))
	}
	return strings.Join(parts, " ")
}
