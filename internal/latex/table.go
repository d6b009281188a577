package latex

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/grouper"
	"github.com/skolat/bewerberlisten/internal/reader"
)

// rankSentinel sorts records without a parseable priority rank last.
const rankSentinel = 999

// groupTemplate is the landscape candidate list. Delimiters are << >> so the
// template engine never trips over LaTeX braces.
var groupTemplate = template.Must(template.New("group").Delims("<<", ">>").Parse(
	`\documentclass[a4paper,landscape,10pt]{article}
\usepackage[left=1.5cm,right=1.5cm,top=2cm,bottom=1.5cm]{geometry}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[default]{sourcesanspro}
\usepackage[ngerman]{babel}
\usepackage{xltabular}
\usepackage{array}
\usepackage{fancyhdr}

\pagestyle{fancy}
\fancyhf{}
\fancyhead[C]{\large\bfseries <<.Title>>}
\fancyfoot[C]{\thepage}
\renewcommand{\headrulewidth}{0.4pt}
\setlength{\parindent}{0pt}
\renewcommand{\arraystretch}{1.2}

\begin{document}

\newcolumntype{L}[1]{>{\raggedright\arraybackslash}p{#1}}
\newcolumntype{R}{>{\raggedright\arraybackslash}X}

\begin{xltabular}{\textwidth}{<<.ColSpec>>}
\hline
<<.HeaderRow>>
\hline
\endfirsthead
\hline
<<.HeaderRow>>
\hline
\endhead
\hline
\endfoot
<<.Rows>>
\end{xltabular}

\end{document}
`))

const (
	colSpecDefault = `|L{5.5cm}|L{4.5cm}|L{2cm}|L{2cm}|R|`
	colSpecVariant = `|L{5.5cm}|L{4.5cm}|L{2cm}|L{1.5cm}|L{2cm}|R|`

	headerQualification = `\textbf{\footnotesize Abschl. \newline Rang \newline vollst.Unterl.}`
	headerDecision      = `\textbf{\footnotesize Zusage/ \newline Absage/ \newline Warteliste}`
)

// BuildGroupDocument composes the printable list for one group. Records are
// re-sorted by (priority rank ascending, surname, given name) independently
// of the spreadsheet order: the printed list is worked through by rank.
func BuildGroupDocument(group *grouper.Group, fields *config.FieldsConfig) (string, error) {
	person := &fields.Person

	recs := make([]reader.Record, len(group.Records))
	copy(recs, group.Records)
	sortByRank(recs, person)

	variantColumn := ""
	if group.Variant {
		variantColumn = fields.VariantField.Column
	}

	var rows []string
	for _, rec := range recs {
		rows = append(rows, composeRow(rec, person, variantColumn))
	}

	courseLabel := ""
	if len(recs) > 0 {
		courseLabel = Escape(recs[0].Trimmed(fields.CourseLabelColumn))
	}

	colSpec := colSpecDefault
	headerRow := `\textbf{Name/Adresse} & \textbf{Kontakt} & ` +
		headerQualification + ` & ` + headerDecision + ` & \textbf{Bemerkungen} \\`
	if group.Variant {
		colSpec = colSpecVariant
		headerRow = `\textbf{Name/Adresse} & \textbf{Kontakt} & ` +
			headerQualification + ` & \textbf{\footnotesize Schulgl.} & ` +
			headerDecision + ` & \textbf{Bemerkungen} \\`
	}

	data := struct {
		Title     string
		ColSpec   string
		HeaderRow string
		Rows      string
	}{
		Title:     Escape(group.Key) + " -- " + courseLabel,
		ColSpec:   colSpec,
		HeaderRow: headerRow,
		Rows:      strings.Join(rows, "\n"),
	}

	var b strings.Builder
	if err := groupTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render group document: %w", err)
	}
	return b.String(), nil
}

// sortByRank orders records by numeric priority rank, unparseable or absent
// ranks last, ties broken by (surname, given name).
func sortByRank(recs []reader.Record, person *config.PersonFields) {
	sort.SliceStable(recs, func(i, j int) bool {
		ri, rj := rankOf(recs[i], person), rankOf(recs[j], person)
		if ri != rj {
			return ri < rj
		}
		si := strings.ToLower(recs[i].Get(person.Surname))
		sj := strings.ToLower(recs[j].Get(person.Surname))
		if si != sj {
			return si < sj
		}
		return strings.ToLower(recs[i].Get(person.GivenName)) < strings.ToLower(recs[j].Get(person.GivenName))
	})
}

func rankOf(rec reader.Record, person *config.PersonFields) int {
	rank, err := strconv.Atoi(rec.Trimmed(person.Rank))
	if err != nil {
		return rankSentinel
	}
	return rank
}

// composeRow builds one table row: name/address block, contact block,
// qualification/status block, the Schulgliederung cell for variant groups
// (variantColumn non-empty), and two blank cells for the manually filled
// decision and remarks.
func composeRow(rec reader.Record, person *config.PersonFields, variantColumn string) string {
	g := func(field string) string {
		return Escape(rec.Trimmed(field))
	}

	name := g(person.Surname) + ", " + g(person.GivenName)
	streetNo := strings.TrimSpace(g(person.Street) + " " + g(person.HouseNumber))
	cityLine := strings.TrimSpace(g(person.PostalCode) + " " + g(person.City))
	if district := g(person.District); district != "" {
		cityLine += " " + district
	}
	col1 := joinLines(name, g(person.BirthDate), streetNo, cityLine)

	col2 := joinLines(g(person.Phone), g(person.PhoneAlt), g(person.Email))

	qualification := rec.Trimmed(person.HighestDegree)
	if qualification == "" {
		qualification = rec.Trimmed(person.LastDegree)
	}

	parts := make([]string, 0, 5)
	if qualification != "" {
		parts = append(parts, Escape(qualification))
	}
	// Spacer line between qualification and status entries.
	parts = append(parts, "~")
	if rank := g(person.Rank); rank != "" {
		parts = append(parts, rank)
	}
	if docs := g(person.DocumentsComplete); docs != "" {
		parts = append(parts, docs)
	}
	if rec.Trimmed(person.SpecialNeeds) == "J" {
		parts = append(parts, `Förd.\,X`)
	}
	col3 := strings.Join(parts, ` \newline `)

	if variantColumn != "" {
		return fmt.Sprintf("    %s & %s & %s & %s & & \\\\\n    \\hline",
			col1, col2, col3, g(variantColumn))
	}
	return fmt.Sprintf("    %s & %s & %s & & \\\\\n    \\hline", col1, col2, col3)
}

// joinLines joins non-empty cell lines with LaTeX line breaks.
func joinLines(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ` \newline `)
}
