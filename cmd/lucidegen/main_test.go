package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/esimov/lucide-tabbar/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const starSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 2l3 7h7l-6 4 2 7-6-4-6 4 2-7-6-4h7z"/></svg>`

func TestGenerate_WritesPackage(t *testing.T) {
	utils.SetColor(false)
	src := t.TempDir()
	for _, name := range []string{"star", "moon", "sun"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name+".svg"), []byte(starSVG), 0644))
	}
	dst := filepath.Join(t.TempDir(), "icons")

	var out bytes.Buffer
	require.NoError(t, generate(context.Background(), &out, src, dst, "icons", 2))

	assert.Contains(t, out.String(), "Generated 3 icon modules")
	for _, name := range []string{"star.go", "moon.go", "sun.go", "icons.go"} {
		assert.FileExists(t, filepath.Join(dst, name))
	}
}

func TestGenerate_MissingSource(t *testing.T) {
	var out bytes.Buffer
	err := generate(context.Background(), &out, filepath.Join(t.TempDir(), "nope"), t.TempDir(), "icons", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icons source directory not found")
}
