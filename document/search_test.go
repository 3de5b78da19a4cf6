package document_test

import (
	"testing"
	"time"

	"github.com/jpl-au/docrec/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

// corpus returns documents created one day apart, starting at day.
func corpus(t *testing.T) []document.Document {
	t.Helper()
	in := []struct {
		title string
		tags  []string
	}{
		{"Quarterly Report", []string{"Finance", "Q1"}},
		{"Team offsite notes", []string{"team"}},
		{"Annual report draft", []string{"finance", "draft"}},
		{"Release checklist", nil},
	}
	docs := make([]document.Document, 0, len(in))
	for i, d := range in {
		f := document.Factory{Clock: fixedClock(day.AddDate(0, 0, i))}
		doc, err := f.Create(d.title, "body of "+d.title, d.tags...)
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func titles(docs []document.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Title()
	}
	return out
}

func TestSearch_EmptyCriteriaReturnsAll(t *testing.T) {
	docs := corpus(t)
	got := document.Search(docs, document.Criteria{})
	assert.Equal(t, titles(docs), titles(got))
}

func TestSearch_EmptyInput(t *testing.T) {
	got := document.Search(nil, document.Criteria{Title: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_Title(t *testing.T) {
	docs := corpus(t)
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive", "REPORT", []string{"Quarterly Report", "Annual report draft"}},
		{"substring", "off", []string{"Team offsite notes"}},
		{"no match", "budget", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := document.Search(docs, document.Criteria{Title: tt.query})
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSearch_Tag(t *testing.T) {
	docs := corpus(t)

	got := document.Search(docs, document.Criteria{Tag: "FINANCE"})
	assert.Equal(t, []string{"Quarterly Report", "Annual report draft"}, titles(got))

	// Exact membership, not substring.
	got = document.Search(docs, document.Criteria{Tag: "fin"})
	assert.Empty(t, got)
}

func TestSearch_DateRangeInclusive(t *testing.T) {
	docs := corpus(t)

	got := document.Search(docs, document.Criteria{
		From: day.AddDate(0, 0, 1),
		To:   day.AddDate(0, 0, 2),
	})
	assert.Equal(t, []string{"Team offsite notes", "Annual report draft"}, titles(got))
}

func TestSearch_DateBoundsIndependent(t *testing.T) {
	docs := corpus(t)

	from := document.Search(docs, document.Criteria{From: day.AddDate(0, 0, 3)})
	assert.Equal(t, []string{"Release checklist"}, titles(from))

	to := document.Search(docs, document.Criteria{To: day})
	assert.Equal(t, []string{"Quarterly Report"}, titles(to))
}

func TestSearch_FullTimestampComparison(t *testing.T) {
	docs := corpus(t)

	// One nanosecond after the first document excludes it.
	got := document.Search(docs, document.Criteria{From: day.Add(time.Nanosecond), To: day.AddDate(0, 0, 1)})
	assert.Equal(t, []string{"Team offsite notes"}, titles(got))
}

func TestSearch_CombinesWithAnd(t *testing.T) {
	docs := corpus(t)

	got := document.Search(docs, document.Criteria{
		Title: "report",
		Tag:   "finance",
		From:  day.AddDate(0, 0, 1),
	})
	assert.Equal(t, []string{"Annual report draft"}, titles(got))
}

func TestSearch_DoesNotModifyInput(t *testing.T) {
	docs := corpus(t)
	before := titles(docs)

	got := document.Search(docs, document.Criteria{Tag: "team"})
	require.Len(t, got, 1)
	got[0] = document.Document{}

	assert.Equal(t, before, titles(docs))
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, document.Criteria{}.IsEmpty())
	assert.False(t, document.Criteria{Tag: "x"}.IsEmpty())
	assert.False(t, document.Criteria{To: day}.IsEmpty())
}
