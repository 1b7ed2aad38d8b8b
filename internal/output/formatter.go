// internal/output/formatter.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhishek-pokhrel/DNSProbe/internal/core"
	"github.com/abhishek-pokhrel/DNSProbe/internal/scan"
)

type recordJSON struct {
	Host       string  `json:"host"`
	RecordType string  `json:"record_type"`
	Result     string  `json:"result"`
	TimeTakenS float64 `json:"time_taken_s"`
}

// FormatReport formats a scan report into the specified format.
func FormatReport(report *scan.Report, target string, outputFormat string) (string, error) {
	switch outputFormat {
	case "json":
		records := make([]recordJSON, 0, len(report.Rows))
		for _, row := range report.Rows {
			records = append(records, recordJSON{
				Host:       row.Host,
				RecordType: row.Type,
				Result:     row.Value,
				TimeTakenS: row.Elapsed.Seconds(),
			})
		}
		data := map[string]interface{}{
			"target":  target,
			"records": records,
		}
		jsonData, err := json.MarshalIndent(data, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonData), nil
	case "txt":
		lines := make([]string, 0, len(report.Rows))
		for _, row := range report.Rows {
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%.4f", row.Host, row.Type, row.Value, row.Elapsed.Seconds()))
		}
		return strings.Join(lines, "\n"), nil
	case "csv":
		var b strings.Builder
		writer := csv.NewWriter(&b)
		if err := writer.Write([]string{"host", "record_type", "result", "time_taken_s"}); err != nil { // CSV header
			return "", fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, row := range report.Rows {
			rec := []string{row.Host, row.Type, row.Value, fmt.Sprintf("%.4f", row.Elapsed.Seconds())}
			if err := writer.Write(rec); err != nil {
				return "", fmt.Errorf("failed to write record to CSV: %w", err)
			}
		}
		writer.Flush()
		return b.String(), nil
	case "console":
		if len(report.Rows) == 0 {
			return fmt.Sprintf("No DNS records found for %s.", target), nil
		}
		var b strings.Builder
		RenderTable(&b, report)
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %s", core.ErrOutputFormat, outputFormat)
	}
}

// WriteOutput writes content to a specified file.
func WriteOutput(filepath string, content string) error {
	err := os.WriteFile(filepath, []byte(content), 0644) // 0644 is standard file permissions
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrFileWrite, filepath, err)
	}
	return nil
}
