// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2025.10.18
//

package rinexobs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	fn := filepath.Join(t.TempDir(), "rinexcsv.yaml")
	content := `strict: true
summary: true
debug: 2
csv:
  output: out.csv
  header: false
`
	assert.NoError(os.WriteFile(fn, []byte(content), 0644))

	cfg, err := LoadConfig(fn)
	assert.NoError(err)
	assert.True(cfg.Strict)
	assert.True(cfg.Summary)
	assert.Equal(2, cfg.Debug)
	assert.Equal("out.csv", cfg.CSV.Output)
	assert.False(cfg.CSV.Header)
}

func TestLoadConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	// fields not present in the file keep their defaults
	fn := filepath.Join(t.TempDir(), "rinexcsv.yaml")
	assert.NoError(os.WriteFile(fn, []byte("summary: true\n"), 0644))

	cfg, err := LoadConfig(fn)
	assert.NoError(err)
	assert.True(cfg.CSV.Header, "header defaults to true")
	assert.False(cfg.Strict)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}
