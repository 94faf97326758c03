package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)

	require.Len(t, site.Projects, 3)
	p, ok := site.Project("bugpatrol")
	require.True(t, ok)
	assert.Len(t, p.Images, 3)
	assert.Equal(t, "/images/bugpatrol1.png", p.Images[0])

	assert.Equal(t, DefaultPlaceholder, site.Placeholder)
	assert.Len(t, site.Technologies, 15)
	assert.Len(t, site.Images(), 9)

	_, ok = site.Project("missing")
	assert.False(t, ok)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
placeholder: /images/missing.png
projects:
  - id: solo
    name: Solo
    images: [/images/solo.png]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/images/missing.png", site.Placeholder)
	assert.Equal(t, "Solo", site.Projects[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate id", `
projects:
  - {id: a, images: [x.png]}
  - {id: a, images: [y.png]}
`},
		{"missing id", `
projects:
  - {name: nameless, images: [x.png]}
`},
		{"no images", `
projects:
  - {id: a}
`},
		{"level out of range", `
categories: [{name: Tools}]
technologies:
  - {name: Git, category: Tools, level: 120}
`},
		{"undeclared category", `
categories: [{name: Tools}]
technologies:
  - {name: Git, category: Other, level: 50}
`},
		{"unknown folder target", `
folders:
  - {name: Blog, target: blog}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("projects: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}
