package display

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// ProviderRow is one configured endpoint in the providers listing.
type ProviderRow struct {
	Name    string
	Type    string
	URL     string
	Timeout time.Duration
	Default bool
}

// ProvidersFormatter renders the configured endpoints as a table. URLs are
// masked because provider paths and queries usually embed API keys.
type ProvidersFormatter struct {
	Source string
	Rows   []ProviderRow
}

func (f *ProvidersFormatter) Format(w io.Writer) error {
	if f.Source != "" {
		fmt.Fprintf(w, "%s %s\n\n", bold("Providers from"), f.Source)
	}
	if len(f.Rows) == 0 {
		_, err := fmt.Fprintln(w, dim("No providers configured."))
		return err
	}

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("", "Provider", "Type", "URL", "Timeout").
		WithWriter(w).
		WithHeaderFormatter(headerFmt)

	for _, r := range f.Rows {
		marker := ""
		if r.Default {
			marker = "*"
		}
		typ := r.Type
		if typ == "" {
			typ = "—"
		}
		tbl.AddRow(marker, r.Name, typ, MaskURL(r.URL), r.Timeout)
	}
	tbl.Print()
	_, err := fmt.Fprintln(w)
	return err
}

// MaskURL keeps the scheme and host of raw and hides any path or query, which
// commonly carry provider API keys. Unparseable input is fully masked.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		if raw == "" {
			return ""
		}
		return "***"
	}
	masked := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		masked += "/***"
	}
	return masked
}
