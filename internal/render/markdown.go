package render

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/ledgerview/ledgerview/internal/summary"
)

//go:embed templates/*.md templates/page.html
var templateFS embed.FS

var templates = mustSub(templateFS, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("opening embedded %s: %v", dir, err))
	}
	return sub
}

// Section names one block of the statements document.
type Section string

const (
	SectionOverview Section = "overview"
	SectionBalance  Section = "balance"
	SectionIncome   Section = "income"
	SectionCashFlow Section = "cashflow"
	SectionNotes    Section = "notes"
	SectionAssets   Section = "assets"
)

// AllSections lists every section in document order.
var AllSections = []Section{
	SectionOverview,
	SectionBalance,
	SectionIncome,
	SectionCashFlow,
	SectionNotes,
	SectionAssets,
}

// ParseSections resolves a section name. "all" and "" select every section.
func ParseSections(name string) ([]Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "all" {
		return AllSections, nil
	}
	for _, s := range AllSections {
		if string(s) == name {
			return []Section{s}, nil
		}
	}
	return nil, fmt.Errorf("unknown section %q", name)
}

// Markdown renders the selected sections of st as a markdown document.
// Amounts are formatted with m.
func Markdown(st summary.Statements, m Money, sections ...Section) (string, error) {
	if len(sections) == 0 {
		sections = AllSections
	}
	partials := map[string]string{
		"header": "header.md",
		"footer": "footer.md",
	}
	// Unselected sections render as empty templates.
	for _, s := range AllSections {
		partials[string(s)] = ""
	}
	for _, s := range sections {
		partials[string(s)] = string(s) + ".md"
	}
	return renderTemplate("statements", "statements.md", partials, funcs(m), st)
}

func funcs(m Money) template.FuncMap {
	return template.FuncMap{
		"money": m.Format,
		"paren": m.Paren,
		"cell":  cell,
		"check": check,
		"inc":   func(i int) int { return i + 1 },
	}
}

// cell makes free text safe inside a table cell or heading line.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

func check(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderTemplate parses a main template together with its partials and
// executes it against data.
func renderTemplate(templateName, mainFile string, partials map[string]string, fm template.FuncMap, data any) (string, error) {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return "", fmt.Errorf("reading main template %q: %w", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(fm).Parse(string(mainContent))
	if err != nil {
		return "", fmt.Errorf("parsing main template %q: %w", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return "", fmt.Errorf("reading partial template %q: %w", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return "", fmt.Errorf("parsing partial template %q for %q: %w", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", templateName, err)
	}
	return b.String(), nil
}
