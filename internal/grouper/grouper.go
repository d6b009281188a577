// Package grouper partitions applicant records by Bildungsangebot and orders
// them for rendering.
package grouper

import (
	"sort"
	"strings"

	"github.com/skolat/bewerberlisten/internal/config"
	"github.com/skolat/bewerberlisten/internal/reader"
)

// Group is one bucket of records sharing a group key.
type Group struct {
	// Key is the trimmed group column value, or the configured unknown label.
	Key string
	// SafeName is Key with path separators replaced, usable as a file stem.
	SafeName string
	// Variant marks groups whose key carries the configured prefix and which
	// therefore get the extra variant field in both renderers.
	Variant bool
	// Records are sorted by (lower-cased surname, lower-cased given name),
	// stable with respect to file order.
	Records []reader.Record
}

// Split buckets records by the trimmed group column and returns the buckets
// in ascending key order. Records with a blank or missing key land in the
// unknown bucket.
func Split(records []reader.Record, fields *config.FieldsConfig, grouping *config.GroupingConfig) []Group {
	buckets := make(map[string][]reader.Record)
	for _, rec := range records {
		key := rec.Trimmed(fields.GroupColumn)
		if key == "" {
			key = grouping.UnknownLabel
		}
		buckets[key] = append(buckets[key], rec)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		recs := buckets[key]
		sortByName(recs, &fields.Person)

		groups = append(groups, Group{
			Key:      key,
			SafeName: strings.ReplaceAll(key, "/", "-"),
			Variant:  strings.HasPrefix(key, grouping.VariantPrefix),
			Records:  recs,
		})
	}

	return groups
}

// sortByName orders records by (surname, given name), case-insensitively and
// stable so equal names keep their file order.
func sortByName(recs []reader.Record, person *config.PersonFields) {
	sort.SliceStable(recs, func(i, j int) bool {
		si := strings.ToLower(recs[i].Get(person.Surname))
		sj := strings.ToLower(recs[j].Get(person.Surname))
		if si != sj {
			return si < sj
		}
		return strings.ToLower(recs[i].Get(person.GivenName)) < strings.ToLower(recs[j].Get(person.GivenName))
	})
}
