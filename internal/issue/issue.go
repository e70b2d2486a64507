// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a catalog entry. Ids are stable: they appear in verbose
// error output.
type Id int

const (
	DocumentNotFoundId Id = iota + 1
	DocumentParseErrorId
	VariantNotFoundId
	UnsupportedValueKindId
	DuplicateFieldId
	InvalidPairId
	ConfigLoadFailedId
	InvalidOutputFormatId
)

type (
	MarkdownMsg string

	HttpLink string

	// Issue is a catalog entry: Markdown guidance plus related links.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}

	// entry declares where an issue's Markdown lives in the catalog.
	entry struct {
		id       Id
		file     string
		extLinks []HttpLink
	}
)

//go:embed catalog/*.md
var catalogFS embed.FS

var (
	render = glamour.Render

	catalog = []entry{
		{id: DocumentNotFoundId, file: "document-not-found.md"},
		{id: DocumentParseErrorId, file: "document-parse-error.md", extLinks: []HttpLink{"https://cuelang.org/docs/"}},
		{id: VariantNotFoundId, file: "variant-not-found.md"},
		{id: UnsupportedValueKindId, file: "unsupported-value-kind.md"},
		{id: DuplicateFieldId, file: "duplicate-field.md"},
		{id: InvalidPairId, file: "invalid-pair.md"},
		{id: ConfigLoadFailedId, file: "config-load-failed.md"},
		{id: InvalidOutputFormatId, file: "invalid-output-format.md"},
	}

	issues = mustLoadCatalog()
)

// mustLoadCatalog reads every catalog entry from the embedded files. A
// missing file is a build defect, so it panics at init.
func mustLoadCatalog() map[Id]*Issue {
	out := make(map[Id]*Issue, len(catalog))
	for _, e := range catalog {
		data, err := catalogFS.ReadFile("catalog/" + e.file)
		if err != nil {
			panic(fmt.Sprintf("issue catalog: %v", err))
		}
		out[e.id] = &Issue{id: e.id, mdMsg: MarkdownMsg(data), extLinks: e.extLinks}
	}
	return out
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the guidance with glamour using stylePath ("auto", "dark",
// "light", "notty" or a style file). Links are appended as a list.
func (i *Issue) Render(stylePath string) (string, error) {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if links := append(i.DocLinks(), i.extLinks...); len(links) > 0 {
		sb.WriteString("\n\n## See also:\n")
		for _, link := range links {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(sb.String(), stylePath)
}

// Values returns every registered issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, is)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
