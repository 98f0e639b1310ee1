package summarizer

import (
	"fmt"
	"strings"
)

// Translator maps an English label to the display language.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	t       Translator
	version string
}

// Option configures a MarkdownFormatter.
type Option func(*MarkdownFormatter)

// WithTranslator sets the label translator.
func WithTranslator(t Translator) Option {
	return func(f *MarkdownFormatter) {
		if t != nil {
			f.t = t
		}
	}
}

// WithVersion adds the tool version to the header.
func WithVersion(version string) Option {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a formatter with English labels unless a
// translator is given.
func NewMarkdownFormatter(opts ...Option) *MarkdownFormatter {
	f := &MarkdownFormatter{t: func(key string) string { return key }}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var b strings.Builder
	t := f.t

	fmt.Fprintf(&b, "# %s\n\n", t("Conversion Summary"))
	fmt.Fprintf(&b, "%s: %s", t("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if f.version != "" {
		fmt.Fprintf(&b, " (rgb2gray %s)", f.version)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Source"))
	f.tableHeader(&b)
	if s.Source.Pattern != "" {
		f.row(&b, "Test Pattern", s.Source.Pattern)
	}
	if len(s.Source.Inputs) > 0 {
		f.row(&b, "Inputs", strings.Join(s.Source.Inputs, ", "))
	}
	f.row(&b, "Frames", fmt.Sprintf("%d", s.Source.FrameCount))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	f.tableHeader(&b)
	f.row(&b, "Output Format", s.Settings.OutputFormat)
	f.row(&b, "Image Format", s.Settings.ImageFormat)
	f.row(&b, "Framerate", s.Settings.Framerate)
	f.row(&b, "Row Alignment", fmt.Sprintf("%d", s.Settings.RowAlignment))
	f.row(&b, "Workers", fmt.Sprintf("%d", s.Settings.Workers))
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n", t("Negotiations"))
	if len(s.Negotiations) == 0 {
		fmt.Fprintf(&b, "%s\n\n", t("None"))
	} else {
		fmt.Fprintf(&b, "| # | %s | %s | %s | %s | %s | %s |\n",
			t("Size"), t("Input Caps"), t("Output Caps"), t("Input Unit"), t("Output Unit"), t("Frames"))
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for i, n := range s.Negotiations {
			fmt.Fprintf(&b, "| %d | %dx%d | `%s` | `%s` | %d B | %d B | %d |\n",
				i+1, n.Width, n.Height, n.InCaps, n.OutCaps, n.InSize, n.OutSize, n.Frames)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.tableHeader(&b)
	f.row(&b, "Directory", s.Output.Dir)
	f.row(&b, "Files", fmt.Sprintf("%d", s.Output.Files))
	f.row(&b, "Input Bytes", formatBytes(s.Output.BytesIn))
	f.row(&b, "Output Bytes", formatBytes(s.Output.BytesOut))
	if s.Output.BytesIn > 0 {
		f.row(&b, "Output/Input Ratio", fmt.Sprintf("%.1f%%", float64(s.Output.BytesOut)*100/float64(s.Output.BytesIn)))
	}
	f.row(&b, "Processing Time", fmt.Sprintf("%d ms", s.Output.DurationMs))

	return b.String()
}

func (f *MarkdownFormatter) tableHeader(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.t("Item"), f.t("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", f.t(label), value)
}

// formatBytes renders a byte count with binary units.
func formatBytes(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/gb)
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/kb)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
