package content_test

import (
	"testing"

	"github.com/JuliPapp/Redimfinal-sub000/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCorpusIsValid(t *testing.T) {
	assert.NoError(t, content.Default.Validate())
}

func TestValidateRejectsUnknownTags(t *testing.T) {
	corpus := &content.Corpus{
		Scriptures: []content.Scripture{
			{ID: "x", Tags: content.Tags{Roots: []content.Root{"no-existe"}}},
			{ID: "x", Tags: content.Tags{Categories: []content.Category{content.CategoryFamily}}},
		},
		Actions: []content.Action{
			{ID: "a", Difficulty: "extreme", Type: content.ActionPractical, Tags: content.Tags{Categories: []content.Category{"finance"}}},
		},
	}
	err := corpus.Validate()
	assert.ErrorContains(t, err, `unknown root "no-existe"`)
	assert.ErrorContains(t, err, `scripture "x" declared twice`)
	assert.ErrorContains(t, err, `unknown category "finance"`)
	assert.ErrorContains(t, err, `unknown difficulty "extreme"`)
}

func TestEveryRootHasCategory(t *testing.T) {
	for _, info := range content.Taxonomy {
		c, ok := content.CategoryOf(info.ID)
		assert.True(t, ok, info.ID)
		assert.Equal(t, info.Category, c)
	}
}

func TestParseRoots(t *testing.T) {
	known, unknown := content.ParseRoots([]string{"papa-ausente", "desconocido", "papa-ausente", "ansiedad"})
	assert.Equal(t, []content.Root{content.RootPapaAusente, content.RootAnsiedad}, known)
	assert.Equal(t, []string{"desconocido"}, unknown)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Papá ausente", content.Label("papa-ausente"))
	assert.Equal(t, "desconocido", content.Label("desconocido"))
}

func TestCategoriesFor(t *testing.T) {
	got := content.CategoriesFor([]content.Root{
		content.RootAnsiedad,
		content.RootDepresion,
		content.RootPapaAusente,
		"retired-root",
	})
	assert.Equal(t, []content.Category{content.CategoryMental, content.CategoryFamily}, got)
	assert.Empty(t, content.CategoriesFor(nil))
}

func TestParseCategories(t *testing.T) {
	known, unknown := content.ParseCategories([]string{"family", "cosmic", "mental"})
	assert.Equal(t, []content.Category{content.CategoryFamily, content.CategoryMental}, known)
	assert.Equal(t, []string{"cosmic"}, unknown)
}
