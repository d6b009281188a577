package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skolat/bewerberlisten/internal/config"
)

func grading() *config.GradingConfig {
	g := config.DefaultConfig().Grading
	return &g
}

func TestParse_EmptyContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t\n  "},
		{"no separator anywhere", "erste Zeile\nzweite Zeile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Parse(tt.content, grading()))
		})
	}
}

func TestParse_SingleEntry(t *testing.T) {
	entries := Parse("Kunst: 3", grading())

	assert.Equal(t, []Entry{{Column: "Kunst", Value: "3"}}, entries)
}

func TestParse_TrimsKeyAndValue(t *testing.T) {
	entries := Parse("  Kunst :  gut  ", grading())

	assert.Equal(t, []Entry{{Column: "Kunst", Value: "gut"}}, entries)
}

func TestParse_ValueMayContainSeparator(t *testing.T) {
	// Only the first ": " splits the line.
	entries := Parse("Anmerkung: siehe: Zeugnis", grading())

	assert.Equal(t, []Entry{{Column: "Anmerkung", Value: "siehe: Zeugnis"}}, entries)
}

func TestParse_RepeatedKeysAreNumbered(t *testing.T) {
	content := "Bewertung: gut\nBewertung: sehr gut\nBewertung: befriedigend"

	entries := Parse(content, grading())

	assert.Equal(t, []Entry{
		{Column: "Bewertung", Value: "gut"},
		{Column: "Bewertung (2)", Value: "sehr gut"},
		{Column: "Bewertung (3)", Value: "befriedigend"},
	}, entries)
}

func TestParse_InvalidLinesDoNotAffectNumbering(t *testing.T) {
	content := "kein Trenner\nKunst: 3\n\nnoch einer\nKunst: 4"

	entries := Parse(content, grading())

	assert.Equal(t, []Entry{
		{Column: "Kunst", Value: "3"},
		{Column: "Kunst (2)", Value: "4"},
	}, entries)
}

func TestParse_GradingKeyRenaming(t *testing.T) {
	g := grading()
	content := g.Key + ": gut\n" + g.Key + ": besser\n" + g.Key + ": am besten"

	entries := Parse(content, g)

	assert.Equal(t, "AV", entries[0].Column)
	assert.Equal(t, "SV", entries[1].Column)
	assert.Equal(t, "Bewertung (3)", entries[2].Column)
}

func TestParse_GradeTranslation(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"top grade", "verdient besondere Anerkennung", "10"},
		{"full expectations", "entspricht den Erwartungen in vollem Umfang", "20"},
		{"expectations", "entspricht den Erwartungen", "30"},
		{"limited expectations", "entspricht den Erwartungen mit Einschränkungen", "40"},
		{"below expectations", "entspricht nicht den Erwartungen", "50"},
		{"unknown phrase passes through", "ganz okay", "ganz okay"},
		{"near miss passes through", "entspricht den erwartungen", "entspricht den erwartungen"},
	}

	g := grading()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse(g.Key+": "+tt.value, g)

			assert.Len(t, entries, 1)
			assert.Equal(t, "AV", entries[0].Column)
			assert.Equal(t, tt.want, entries[0].Value)
		})
	}
}

func TestParse_GradeTranslationOnlyForRecognizedKey(t *testing.T) {
	entries := Parse("Deutsch: entspricht den Erwartungen", grading())

	assert.Equal(t, []Entry{{Column: "Deutsch", Value: "entspricht den Erwartungen"}}, entries)
}

func TestParse_MixedContent(t *testing.T) {
	g := grading()
	content := "Kunst: 3\n" + g.Key + ": entspricht den Erwartungen\nMusik: 2"

	entries := Parse(content, g)

	assert.Equal(t, []Entry{
		{Column: "Kunst", Value: "3"},
		{Column: "AV", Value: "30"},
		{Column: "Musik", Value: "2"},
	}, entries)
}
