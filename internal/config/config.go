// Package config provides configuration structures and loading for bewerberlisten.
package config

// Config represents the complete application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input" mapstructure:"input"`
	Fields   FieldsConfig   `yaml:"fields" mapstructure:"fields"`
	Grading  GradingConfig  `yaml:"grading" mapstructure:"grading"`
	Grouping GroupingConfig `yaml:"grouping" mapstructure:"grouping"`
	Latex    LatexConfig    `yaml:"latex" mapstructure:"latex"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// InputConfig controls where input files are discovered.
type InputConfig struct {
	Dir       string `yaml:"dir" mapstructure:"dir"`
	Extension string `yaml:"extension" mapstructure:"extension"`
}

// BaseField maps a source CSV column to the label used in generated outputs.
type BaseField struct {
	Column string `yaml:"column" mapstructure:"column"`
	Label  string `yaml:"label" mapstructure:"label"`
}

// PersonFields names the source CSV columns the renderers read per applicant.
type PersonFields struct {
	Salutation        string `yaml:"salutation" mapstructure:"salutation"`
	Surname           string `yaml:"surname" mapstructure:"surname"`
	GivenName         string `yaml:"given_name" mapstructure:"given_name"`
	BirthDate         string `yaml:"birth_date" mapstructure:"birth_date"`
	Street            string `yaml:"street" mapstructure:"street"`
	HouseNumber       string `yaml:"house_number" mapstructure:"house_number"`
	PostalCode        string `yaml:"postal_code" mapstructure:"postal_code"`
	City              string `yaml:"city" mapstructure:"city"`
	District          string `yaml:"district" mapstructure:"district"`
	Phone             string `yaml:"phone" mapstructure:"phone"`
	PhoneAlt          string `yaml:"phone_alt" mapstructure:"phone_alt"`
	Email             string `yaml:"email" mapstructure:"email"`
	HighestDegree     string `yaml:"highest_degree" mapstructure:"highest_degree"`
	LastDegree        string `yaml:"last_degree" mapstructure:"last_degree"`
	Rank              string `yaml:"rank" mapstructure:"rank"`
	DocumentsComplete string `yaml:"documents_complete" mapstructure:"documents_complete"`
	SpecialNeeds      string `yaml:"special_needs" mapstructure:"special_needs"`
}

// FieldsConfig maps the export's column vocabulary to the roles the tool needs.
type FieldsConfig struct {
	// AnswersColumn is the multi-line "Schlüssel: Wert" free-text column.
	AnswersColumn string `yaml:"answers_column" mapstructure:"answers_column"`
	// GroupColumn identifies the Bildungsangebot used for grouping.
	GroupColumn string `yaml:"group_column" mapstructure:"group_column"`
	// CourseLabelColumn holds the human-readable Bildungsgang name.
	CourseLabelColumn string `yaml:"course_label_column" mapstructure:"course_label_column"`
	// BaseFields are the fixed left-hand spreadsheet columns, in order.
	BaseFields []BaseField `yaml:"base_fields" mapstructure:"base_fields"`
	// VariantField is inserted into BaseFields at VariantFieldPos for
	// groups matching the variant prefix (FG groups get Schulgliederung).
	VariantField    BaseField    `yaml:"variant_field" mapstructure:"variant_field"`
	VariantFieldPos int          `yaml:"variant_field_pos" mapstructure:"variant_field_pos"`
	Person          PersonFields `yaml:"person" mapstructure:"person"`
}

// GradeMapping maps one textual assessment phrase to its numeric code.
type GradeMapping struct {
	Phrase string `yaml:"phrase" mapstructure:"phrase"`
	Code   int    `yaml:"code" mapstructure:"code"`
}

// GradingConfig controls the AV/SV renaming and grade translation of the
// recognized assessment key inside the answers column.
type GradingConfig struct {
	// Key is the answer key subject to renaming and grade translation.
	Key string `yaml:"key" mapstructure:"key"`
	// FirstLabel and SecondLabel name the 1st and 2nd occurrence columns.
	FirstLabel  string `yaml:"first_label" mapstructure:"first_label"`
	SecondLabel string `yaml:"second_label" mapstructure:"second_label"`
	// ShortLabel is used for the 3rd occurrence onwards: "ShortLabel (n)".
	ShortLabel string `yaml:"short_label" mapstructure:"short_label"`
	// Scale is the ordered textual-to-numeric grading scale. Values matching
	// a phrase exactly are replaced by the code; everything else passes through.
	Scale []GradeMapping `yaml:"scale" mapstructure:"scale"`
}

// GroupingConfig controls record partitioning.
type GroupingConfig struct {
	// UnknownLabel is the bucket for records with a blank or missing group key.
	UnknownLabel string `yaml:"unknown_label" mapstructure:"unknown_label"`
	// VariantPrefix marks groups that carry the extra variant field.
	VariantPrefix string `yaml:"variant_prefix" mapstructure:"variant_prefix"`
}

// LatexConfig controls the external typesetting pass.
type LatexConfig struct {
	Engine         string `yaml:"engine" mapstructure:"engine"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	// Passes is the number of engine invocations per document. xltabular
	// needs two to resolve repeated headers and page numbering.
	Passes      int    `yaml:"passes" mapstructure:"passes"`
	SummaryFile string `yaml:"summary_file" mapstructure:"summary_file"`
	// KeepArtifacts retains the generated .tex and .log files.
	KeepArtifacts bool `yaml:"keep_artifacts" mapstructure:"keep_artifacts"`
	// Disabled skips PDF generation entirely.
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config matching the Schild/BewO applicant export
// format the tool was written for. Every constant can be overridden from the
// YAML file.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Dir:       ".",
			Extension: ".csv",
		},
		Fields: FieldsConfig{
			AnswersColumn:     "BewerbungenZusatzfragenBeantworteteFragenPflicht",
			GroupColumn:       "Schüler:in Bildungsangebot Vollqualifizierter Schlüssel",
			CourseLabelColumn: "Schüler:in Bildungsgang Bezeichnung",
			BaseFields: []BaseField{
				{Column: "Schüler:in Anrede Bezeichnung", Label: "Anrede"},
				{Column: "Schüler:in Name", Label: "Name"},
				{Column: "Schüler:in Vorname", Label: "Vorname"},
				{Column: "Schüler:in Geburtsdatum", Label: "Geburtsdatum"},
				{Column: "Schüler:in Sonderpädagogischer Förderbedarf", Label: "Sonderpäd. Förderbedarf"},
				{Column: "Schüler:in Bewerbung Prioritaetsrang", Label: "Rang"},
			},
			VariantField:    BaseField{Column: "Schüler:in abgebende Schule Schulgliederung", Label: "Schulgliederung"},
			VariantFieldPos: 4,
			Person: PersonFields{
				Salutation:        "Schüler:in Anrede Bezeichnung",
				Surname:           "Schüler:in Name",
				GivenName:         "Schüler:in Vorname",
				BirthDate:         "Schüler:in Geburtsdatum",
				Street:            "Schüler:in Straße",
				HouseNumber:       "Schüler:in Hausnummer",
				PostalCode:        "Schüler:in Postleitzahl",
				City:              "Schüler:in Wohnort",
				District:          "Schüler:in Ortsteil",
				Phone:             "Schüler:in Telefonnummer Hauptnummer",
				PhoneAlt:          "Schüler:in Telefonnummer (weitere)",
				Email:             "Schüler:in E-Mail-Adresse",
				HighestDegree:     "Schüler:in Qualifikation höchster Schulabschluss Kürzel",
				LastDegree:        "Schüler:in Qualifikation letzter Schulabschluss Kürzel",
				Rank:              "Schüler:in Bewerbung Prioritaetsrang",
				DocumentsComplete: "Schüler:in Bewerbung Unterlagen vollständig eingereicht",
				SpecialNeeds:      "Schüler:in Sonderpädagogischer Förderbedarf",
			},
		},
		Grading: GradingConfig{
			Key:         "Bitte geben Sie die Bewertung vom Zeugnis ein.",
			FirstLabel:  "AV",
			SecondLabel: "SV",
			ShortLabel:  "Bewertung",
			Scale: []GradeMapping{
				{Phrase: "verdient besondere Anerkennung", Code: 10},
				{Phrase: "entspricht den Erwartungen in vollem Umfang", Code: 20},
				{Phrase: "entspricht den Erwartungen", Code: 30},
				{Phrase: "entspricht den Erwartungen mit Einschränkungen", Code: 40},
				{Phrase: "entspricht nicht den Erwartungen", Code: 50},
			},
		},
		Grouping: GroupingConfig{
			UnknownLabel:  "unbekannt",
			VariantPrefix: "FG",
		},
		Latex: LatexConfig{
			Engine:         "pdflatex",
			TimeoutSeconds: 30,
			Passes:         2,
			SummaryFile:    "uebersicht.pdf",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat, inputDir string, keepArtifacts, skipPDF bool) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if inputDir != "" {
		c.Input.Dir = inputDir
	}
	if keepArtifacts {
		c.Latex.KeepArtifacts = true
	}
	if skipPDF {
		c.Latex.Disabled = true
	}
}

// GradeCode looks up the numeric code for an assessment phrase.
func (g *GradingConfig) GradeCode(phrase string) (int, bool) {
	for _, m := range g.Scale {
		if m.Phrase == phrase {
			return m.Code, true
		}
	}
	return 0, false
}

// EffectiveBaseFields returns the base field list, with the variant field
// inserted at the configured position when variant is true.
func (f *FieldsConfig) EffectiveBaseFields(variant bool) []BaseField {
	if !variant {
		return f.BaseFields
	}
	pos := f.VariantFieldPos
	if pos < 0 {
		pos = 0
	}
	if pos > len(f.BaseFields) {
		pos = len(f.BaseFields)
	}
	fields := make([]BaseField, 0, len(f.BaseFields)+1)
	fields = append(fields, f.BaseFields[:pos]...)
	fields = append(fields, f.VariantField)
	fields = append(fields, f.BaseFields[pos:]...)
	return fields
}
