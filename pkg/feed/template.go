package feed

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"text/template"
)

// TemplateData represents the data structure passed to feed templates
type TemplateData struct {
	FeedTitle       string
	FeedLink        string
	SelfLink        string
	FeedDescription string
	Updated         string
	Items           []TemplateItem
}

// TemplateItem represents a feed item for template rendering
type TemplateItem struct {
	Title     string
	Link      string
	ID        string
	Published string
	Content   string // HTML fragment, placed in a CDATA section
	ImageURL  string
	ImageType string
}

// LoadTemplate reads name.tmpl from the override filesystem, falling back to
// the embedded copy.
func LoadTemplate(name string) (*template.Template, error) {
	filename := name + ".tmpl"

	content, err := fs.ReadFile(templateOverrideFS, filename)
	if err != nil {
		slog.Debug("Template override not found, using embedded template", "name", name)
		content, err = fs.ReadFile(templateFallbackFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", filename, err)
		}
	}

	tmpl, err := template.New(name).Funcs(TemplateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", filename, err)
	}

	return tmpl, nil
}

// ExecuteTemplate renders the named template with data
func ExecuteTemplate(name string, data *TemplateData, writer io.Writer) error {
	tmpl, err := LoadTemplate(name)
	if err != nil {
		return err
	}

	slog.Debug("Executing template", "name", name, "items", len(data.Items))

	if err := tmpl.Execute(writer, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return nil
}
