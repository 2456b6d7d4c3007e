package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Rizz-Vii/studio-sub011/internal/generation"
	"github.com/Rizz-Vii/studio-sub011/internal/platform/gemini"
)

func TestToGenaiSchema(t *testing.T) {
	t.Parallel()

	schema := generation.NewSchema("audit",
		generation.Number("score", "Overall score"),
		generation.Array("issues", "Problems found",
			generation.Object("", "An issue",
				generation.Enum("severity", "How bad", "critical", "warning", "info"),
				generation.String("description", "What is wrong"),
				generation.Integer("line", "Line number").Optional(),
			),
		),
		generation.Boolean("indexable", "").Optional(),
	)

	got, err := gemini.ToGenaiSchema(schema)
	require.NoError(t, err)

	assert.Equal(t, genai.TypeObject, got.Type)
	assert.Equal(t, []string{"score", "issues"}, got.Required)
	assert.Equal(t, []string{"score", "issues", "indexable"}, got.PropertyOrdering)

	assert.Equal(t, genai.TypeNumber, got.Properties["score"].Type)
	assert.Equal(t, "Overall score", got.Properties["score"].Description)
	assert.Equal(t, genai.TypeBoolean, got.Properties["indexable"].Type)

	issues := got.Properties["issues"]
	require.NotNil(t, issues)
	assert.Equal(t, genai.TypeArray, issues.Type)
	require.NotNil(t, issues.Items)
	assert.Equal(t, genai.TypeObject, issues.Items.Type)
	assert.Equal(t, []string{"severity", "description"}, issues.Items.Required)

	severity := issues.Items.Properties["severity"]
	assert.Equal(t, genai.TypeString, severity.Type)
	assert.Equal(t, "enum", severity.Format)
	assert.Equal(t, []string{"critical", "warning", "info"}, severity.Enum)
	assert.Equal(t, genai.TypeInteger, issues.Items.Properties["line"].Type)
}

func TestToGenaiSchema_Errors(t *testing.T) {
	t.Parallel()

	_, err := gemini.ToGenaiSchema(nil)
	assert.ErrorIs(t, err, generation.ErrInvalidSchema)

	_, err = gemini.ToGenaiSchema(generation.NewSchema("bad",
		generation.Field{Name: "list", Type: generation.TypeArray, Required: true}))
	assert.ErrorIs(t, err, generation.ErrInvalidSchema)
}
