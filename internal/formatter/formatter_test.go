package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{name: "empty template", template: "", want: []string{}},
		{name: "no variables", template: "hello", want: []string{}},
		{name: "single variable", template: "at ${x}", want: []string{"x"}},
		{name: "duplicates collapse", template: "${page} ${page} ${total}", want: []string{"page", "total"}},
		{name: "hyphens and digits", template: "${a-1} ${b2}", want: []string{"a-1", "b2"}},
		{name: "malformed ignored", template: "${page", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.template))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate(DefaultPreset().Template))
	assert.ErrorIs(t, Validate("${speed}"), ErrUnknownVariable)
	assert.ErrorContains(t, Validate("${page"), "malformed placeholder")

	for _, p := range Presets() {
		assert.NoError(t, Validate(p.Template), p.Name)
	}
}

func TestSubstitute(t *testing.T) {
	ctx := Context{Surface: "carousel", Page: 1, Total: 4, X: -640, Y: 0, Moving: true}

	tests := []struct {
		template string
		want     string
	}{
		{template: "${page}/${total}", want: "2/4"},
		{template: "x=${x} y=${y}", want: "x=-640 y=0"},
		{template: "${motion}", want: "moving"},
		{template: "${progress}", want: "50%"},
		{template: "${surface}!", want: "carousel!"},
		{template: "plain", want: "plain"},
	}
	for _, tt := range tests {
		got, err := Substitute(tt.template, ctx)
		require.NoError(t, err, tt.template)
		assert.Equal(t, tt.want, got, tt.template)
	}

	_, err := Substitute("${nope}", ctx)
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestResolveAndRender(t *testing.T) {
	ctx := Context{Page: 0, Total: 3, X: -1.5}

	assert.Equal(t, DefaultPreset().Template, Resolve(""))
	assert.Equal(t, "${page}/${total}", Resolve("compact"))
	assert.Equal(t, "custom ${x}", Resolve("custom ${x}"))

	assert.Equal(t, "page 1/3  x=-1.5 y=0  idle", Render("", ctx))
	assert.Equal(t, "1/3", Render("compact", ctx))
	assert.Equal(t, "page 1/3  x=-1.5 y=0  idle", Render("${bogus}", ctx), "invalid formats fall back")

	_, ok := Lookup("missing")
	assert.False(t, ok)
	v, ok := Context{}.Resolve("progress")
	require.True(t, ok)
	assert.Equal(t, "0%", v)
}
