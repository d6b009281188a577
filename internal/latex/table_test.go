package latex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/grouper"
	"github.com/skolat/bewerberlisten/internal/reader"
)

func fieldsCfg() *config.FieldsConfig {
	cfg := config.DefaultConfig()
	return &cfg.Fields
}

func applicant(fields *config.FieldsConfig, surname, given, rank string) reader.Record {
	p := fields.Person
	return reader.Record{
		p.Surname:             surname,
		p.GivenName:           given,
		p.BirthDate:           "01.01.2010",
		p.Street:              "Hauptstraße",
		p.HouseNumber:         "1",
		p.PostalCode:          "12345",
		p.City:                "Berlin",
		p.Rank:                rank,
		fields.CourseLabelColumn: "Fachoberschule Gestaltung",
	}
}

func TestBuildGroupDocument_Layout(t *testing.T) {
	fields := fieldsCfg()
	group := &grouper.Group{
		Key:     "BG2",
		Records: []reader.Record{applicant(fields, "Muster", "Anna", "1")},
	}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.Contains(t, doc, `\documentclass[a4paper,landscape,10pt]{article}`)
	assert.Contains(t, doc, `\begin{xltabular}`)
	assert.Contains(t, doc, `BG2 -- Fachoberschule Gestaltung`)
	assert.Contains(t, doc, "Muster, Anna")
	assert.Contains(t, doc, `12345 Berlin`)
	// Non-variant column spec: no Schulgliederung column.
	assert.Contains(t, doc, colSpecDefault)
	assert.NotContains(t, doc, `Schulgl.`)
}

func TestBuildGroupDocument_SortsByRankThenName(t *testing.T) {
	fields := fieldsCfg()
	group := &grouper.Group{
		Key: "BG2",
		Records: []reader.Record{
			applicant(fields, "Anders", "Clara", "2"),
			applicant(fields, "Zimmer", "Max", "1"),
			applicant(fields, "Beispiel", "Ben", ""), // no rank sorts last
		},
	}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	zimmer := strings.Index(doc, "Zimmer, Max")
	anders := strings.Index(doc, "Anders, Clara")
	beispiel := strings.Index(doc, "Beispiel, Ben")
	assert.True(t, zimmer < anders, "rank 1 before rank 2")
	assert.True(t, anders < beispiel, "ranked before unranked")
}

func TestBuildGroupDocument_UnparseableRankSortsLast(t *testing.T) {
	fields := fieldsCfg()
	group := &grouper.Group{
		Key: "BG2",
		Records: []reader.Record{
			applicant(fields, "Anders", "Clara", "keine Angabe"),
			applicant(fields, "Zimmer", "Max", "3"),
		},
	}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.True(t, strings.Index(doc, "Zimmer, Max") < strings.Index(doc, "Anders, Clara"))
}

func TestBuildGroupDocument_VariantIncludesSchulgliederung(t *testing.T) {
	fields := fieldsCfg()
	rec := applicant(fields, "Muster", "Anna", "1")
	rec[fields.VariantField.Column] = "Realschule"
	group := &grouper.Group{
		Key:     "FG1",
		Variant: true,
		Records: []reader.Record{rec},
	}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.Contains(t, doc, colSpecVariant)
	assert.Contains(t, doc, `Schulgl.`)
	assert.Contains(t, doc, "Realschule")
}

func TestBuildGroupDocument_EscapesUserText(t *testing.T) {
	fields := fieldsCfg()
	rec := applicant(fields, "Müller & Söhne", "Anna", "1")
	group := &grouper.Group{Key: "BG2", Records: []reader.Record{rec}}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.Contains(t, doc, `Müller \& Söhne`)
	assert.NotContains(t, doc, "Müller & Söhne")
}

func TestBuildGroupDocument_SpecialNeedsMarker(t *testing.T) {
	fields := fieldsCfg()
	flagged := applicant(fields, "Muster", "Anna", "1")
	flagged[fields.Person.SpecialNeeds] = "J"
	plain := applicant(fields, "Beispiel", "Ben", "2")
	plain[fields.Person.SpecialNeeds] = "N"
	group := &grouper.Group{Key: "BG2", Records: []reader.Record{flagged, plain}}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, `Förd.\,X`))
}

func TestBuildGroupDocument_QualificationFallsBackToLastDegree(t *testing.T) {
	fields := fieldsCfg()
	rec := applicant(fields, "Muster", "Anna", "1")
	rec[fields.Person.LastDegree] = "HSA"
	group := &grouper.Group{Key: "BG2", Records: []reader.Record{rec}}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	assert.Contains(t, doc, "HSA")
}

func TestBuildGroupDocument_HeaderRepeatsOnEveryPage(t *testing.T) {
	fields := fieldsCfg()
	group := &grouper.Group{
		Key:     "BG2",
		Records: []reader.Record{applicant(fields, "Muster", "Anna", "1")},
	}

	doc, err := BuildGroupDocument(group, fields)

	require.NoError(t, err)
	// xltabular needs the header once for the first page and once for all
	// following pages.
	assert.Equal(t, 2, strings.Count(doc, `\textbf{Name/Adresse}`))
	assert.Contains(t, doc, `\endfirsthead`)
	assert.Contains(t, doc, `\endhead`)
}
