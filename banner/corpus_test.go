package banner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type corpusCase struct {
	Name      string `yaml:"name"`
	Banner    string `yaml:"banner"`
	Canonical string `yaml:"canonical"`
	Error     bool   `yaml:"error"`
}

type corpus struct {
	Cases []corpusCase `yaml:"cases"`
}

func loadCorpus(t *testing.T) []corpusCase {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "banners.yaml"))
	require.NoError(t, err)

	var c corpus
	require.NoError(t, yaml.Unmarshal(raw, &c))
	require.NotEmpty(t, c.Cases)
	return c.Cases
}

func TestCorpus(t *testing.T) {
	for _, tc := range loadCorpus(t) {
		t.Run(tc.Name, func(t *testing.T) {
			b, err := Parse(tc.Banner)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, b.String())
		})
	}
}

func TestCorpusCanonicalFormsAreFixedPoints(t *testing.T) {
	// Parsing a canonical rendering and rendering again must not drift.
	for _, tc := range loadCorpus(t) {
		if tc.Error {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			b, err := Parse(tc.Canonical)
			require.NoError(t, err)
			assert.Equal(t, tc.Canonical, b.String())
		})
	}
}
