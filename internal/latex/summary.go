package latex

import (
	"fmt"
	"strings"
	"text/template"
)

// GroupStat is one summary line: a group label and its record count.
type GroupStat struct {
	Label string
	Count int
}

var summaryTemplate = template.Must(template.New("summary").Delims("<<", ">>").Parse(
	`\documentclass[a4paper,10pt]{article}
\usepackage[left=2cm,right=2cm,top=2cm,bottom=2cm]{geometry}
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}
\usepackage[default]{sourcesanspro}
\usepackage[ngerman]{babel}
\usepackage{array}
\usepackage{booktabs}

\setlength{\parindent}{0pt}

\begin{document}

\begin{center}
{\large\bfseries Übersicht exportierte Datensätze}
\end{center}

\vspace{1cm}

\begin{tabular}{|l|r|}
\hline
\textbf{Bildungsgang} & \textbf{Anzahl} \\
\hline
<<.Rows>>
\hline
\textbf{Gesamt} & \textbf{<<.Total>>} \\
\hline
\end{tabular}

\end{document}
`))

// BuildSummaryDocument composes the run-wide overview table: one row per
// group in production order plus a grand total.
func BuildSummaryDocument(stats []GroupStat) (string, error) {
	total := 0
	rows := make([]string, 0, len(stats))
	for _, s := range stats {
		total += s.Count
		rows = append(rows, fmt.Sprintf("    %s & %d \\\\\n    \\hline", Escape(s.Label), s.Count))
	}

	data := struct {
		Rows  string
		Total int
	}{
		Rows:  strings.Join(rows, "\n"),
		Total: total,
	}

	var b strings.Builder
	if err := summaryTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render summary document: %w", err)
	}
	return b.String(), nil
}
