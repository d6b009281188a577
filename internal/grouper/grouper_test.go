package grouper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/reader"
)

func testConfigs() (*config.FieldsConfig, *config.GroupingConfig) {
	cfg := config.DefaultConfig()
	return &cfg.Fields, &cfg.Grouping
}

func rec(group, surname, given string) reader.Record {
	cfg := config.DefaultConfig()
	return reader.Record{
		cfg.Fields.GroupColumn:     group,
		cfg.Fields.Person.Surname:  surname,
		cfg.Fields.Person.GivenName: given,
	}
}

func TestSplit_BucketsByGroupKey(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("BG2", "Beispiel", "Ben"),
		rec("FG1", "Muster", "Anna"),
		rec("BG2", "Anders", "Clara"),
	}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 2)
	assert.Equal(t, "BG2", groups[0].Key)
	assert.Equal(t, "FG1", groups[1].Key)
	assert.Len(t, groups[0].Records, 2)
	assert.Len(t, groups[1].Records, 1)
}

func TestSplit_GroupsInAscendingKeyOrder(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("ZZ", "a", "a"),
		rec("AA", "b", "b"),
		rec("MM", "c", "c"),
	}

	groups := Split(records, fields, grouping)

	keys := []string{groups[0].Key, groups[1].Key, groups[2].Key}
	assert.Equal(t, []string{"AA", "MM", "ZZ"}, keys)
}

func TestSplit_BlankKeyFallsBackToUnknown(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("   ", "Muster", "Anna"),
		rec("", "Beispiel", "Ben"),
		{fields.Person.Surname: "Dritte", fields.Person.GivenName: "Dora"},
	}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 1)
	assert.Equal(t, "unbekannt", groups[0].Key)
	assert.Len(t, groups[0].Records, 3)
}

func TestSplit_TrimsGroupKey(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("  FG1 ", "Muster", "Anna"),
		rec("FG1", "Beispiel", "Ben"),
	}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 1)
	assert.Equal(t, "FG1", groups[0].Key)
}

func TestSplit_SortsByNameCaseInsensitive(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("BG1", "zimmer", "Max"),
		rec("BG1", "Adler", "Zoe"),
		rec("BG1", "adler", "anna"),
	}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 1)
	recs := groups[0].Records
	assert.Equal(t, "adler", recs[0].Get(fields.Person.Surname))
	assert.Equal(t, "anna", recs[0].Get(fields.Person.GivenName))
	assert.Equal(t, "Adler", recs[1].Get(fields.Person.Surname))
	assert.Equal(t, "zimmer", recs[2].Get(fields.Person.Surname))
}

func TestSplit_SortIsStable(t *testing.T) {
	fields, grouping := testConfigs()
	first := rec("BG1", "Muster", "Anna")
	first["marker"] = "1"
	second := rec("BG1", "Muster", "Anna")
	second["marker"] = "2"

	groups := Split([]reader.Record{first, second}, fields, grouping)

	require.Len(t, groups, 1)
	assert.Equal(t, "1", groups[0].Records[0].Get("marker"))
	assert.Equal(t, "2", groups[0].Records[1].Get("marker"))
}

func TestSplit_VariantFlag(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{
		rec("FG1", "Muster", "Anna"),
		rec("BG2", "Beispiel", "Ben"),
	}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 2)
	assert.False(t, groups[0].Variant) // BG2
	assert.True(t, groups[1].Variant)  // FG1
}

func TestSplit_SafeNameReplacesSlashes(t *testing.T) {
	fields, grouping := testConfigs()
	records := []reader.Record{rec("FG1/02/A", "Muster", "Anna")}

	groups := Split(records, fields, grouping)

	require.Len(t, groups, 1)
	assert.Equal(t, "FG1-02-A", groups[0].SafeName)
}
