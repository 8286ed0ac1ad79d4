package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/finplan/internal/source"
)

func writeFile(t *testing.T, dir, name string, lines ...string) source.DiscoveredFile {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return source.DiscoveredFile{Path: path, Plan: strings.TrimSuffix(name, ".jsonl")}
}

func TestLoad_Empty(t *testing.T) {
	res := Load(nil, nil)
	assert.Equal(t, 0, res.TotalFiles)
	assert.Empty(t, res.Files)
}

func TestLoad_KeepsInputOrderAndCounts(t *testing.T) {
	dir := t.TempDir()
	var files []source.DiscoveredFile
	for i := range 12 {
		files = append(files, writeFile(t, dir, fmt.Sprintf("p%02d.jsonl", i),
			fmt.Sprintf(`{"kind":"income","source":"Renda %d","amount":"%d.00"}`, i, 1000+i),
			`{"kind":"expense","description":"Aluguel","amount":1500}`,
			`not json`,
		))
	}
	files = append(files, source.DiscoveredFile{Path: filepath.Join(dir, "missing.jsonl")})

	var (
		mu    sync.Mutex
		calls []int
	)
	res := Load(files, func(current, total int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, current)
		assert.Equal(t, 13, total)
	})

	require.Len(t, res.Files, 13)
	for i, fr := range res.Files[:12] {
		assert.Equal(t, files[i].Path, fr.File.Path)
		require.Len(t, fr.Incomes, 1)
		assert.Equal(t, fmt.Sprintf("Renda %d", i), fr.Incomes[0].Source)
	}
	assert.Error(t, res.Files[12].Err)

	assert.Equal(t, 12, res.ParsedFiles)
	assert.Equal(t, 1, res.FileErrors)
	assert.Equal(t, 12, res.Incomes)
	assert.Equal(t, 12, res.Expenses)
	assert.Equal(t, 12, res.Skipped)
	assert.Len(t, calls, 13)
}
