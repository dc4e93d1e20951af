package docfmt_test

import (
	"testing"

	"github.com/bjaus/docfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    docfmt.Category
		wantErr require.ErrorAssertionFunc
	}{
		"document":     {input: "document", want: docfmt.Document, wantErr: require.NoError},
		"section":      {input: "section", want: docfmt.Section, wantErr: require.NoError},
		"list":         {input: "list", want: docfmt.List, wantErr: require.NoError},
		"paragraph":    {input: "paragraph", want: docfmt.Paragraph, wantErr: require.NoError},
		"sentence":     {input: "sentence", want: docfmt.Sentence, wantErr: require.NoError},
		"list item":    {input: "list_item", want: docfmt.ListItem, wantErr: require.NoError},
		"upper case":   {input: "LIST_ITEM", want: docfmt.ListItem, wantErr: require.NoError},
		"padded":       {input: " Paragraph ", want: docfmt.Paragraph, wantErr: require.NoError},
		"unknown":      {input: "table", want: 0, wantErr: require.Error},
		"empty string": {input: "", want: 0, wantErr: require.Error},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := docfmt.ParseCategory(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategoryUnknownIsSentinel(t *testing.T) {
	t.Parallel()
	_, err := docfmt.ParseCategory("heading")
	require.ErrorIs(t, err, docfmt.ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"heading"`)
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "document", docfmt.Document.String())
	assert.Equal(t, "list_item", docfmt.ListItem.String())
	assert.Equal(t, "Category(0)", docfmt.Category(0).String())
	assert.Equal(t, "Category(42)", docfmt.Category(42).String())
}

func TestCategoryRoundTrip(t *testing.T) {
	t.Parallel()
	for _, c := range docfmt.Categories() {
		got, err := docfmt.ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.True(t, c.Known())
	}
	assert.False(t, docfmt.Category(0).Known())
}

func TestCategories(t *testing.T) {
	t.Parallel()
	got := docfmt.Categories()
	assert.Equal(t, []docfmt.Category{
		docfmt.Document, docfmt.Section, docfmt.List,
		docfmt.Paragraph, docfmt.Sentence, docfmt.ListItem,
	}, got)
	// Returned slice must be a copy.
	got[0] = 0
	assert.Equal(t, docfmt.Document, docfmt.Categories()[0])
}
