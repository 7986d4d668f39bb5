package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalog = `{
  "version": "1",
  "roles": [
    {"name": "Backend", "skills": ["Rust", "Docker"]},
    {"name": "Analyst", "skills": ["Python", "Pandas"]},
    {"name": "Scientist", "skills": ["Python", "Docker"]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMatchCommand_JSON(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), "resume.docx", "Python pandas numpy", "scikit-learn SQL statistics")

	out, err := execute(t, "match", "--json", path)
	require.NoError(t, err)

	var resp types.CheckResumeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	assert.Equal(t, "Data Scientist", resp.BestRole)
	assert.Equal(t, []string{"EDA", "Scikit-learn"}, resp.RecommendNext)
	assert.Equal(t, []string{"Data Analyst", "ML Engineer"}, resp.OtherRoles)
}

func TestMatchCommand_Box(t *testing.T) {
	path := writeDOCX(t, t.TempDir(), "resume.docx", "html css javascript git")

	out, err := execute(t, "match", path)
	require.NoError(t, err)

	assert.Contains(t, out, "ROLE MATCH")
	assert.Contains(t, out, "Best role: Frontend Developer")
	assert.Contains(t, out, "Responsive Design")
}

func TestMatchCommand_CustomCatalog(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "roles.json", smallCatalog)
	path := writeDOCX(t, dir, "resume.docx", "python pandas")

	out, err := execute(t, "match", "--json", "--catalog", catalogPath, path)
	require.NoError(t, err)

	var resp types.CheckResumeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	assert.Equal(t, "Analyst", resp.BestRole)
	assert.Equal(t, []string{}, resp.RecommendNext)
	assert.Equal(t, []string{"Scientist", "Backend"}, resp.OtherRoles)
}

func TestMatchCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing argument", []string{"match"}, "accepts 1 arg"},
		{"unsupported extension", []string{"match", writeFile(t, dir, "resume.txt", "python")}, "unsupported file type"},
		{"missing file", []string{"match", filepath.Join(dir, "absent.pdf")}, "failed to read resume file"},
		{"corrupt pdf", []string{"match", writeFile(t, dir, "broken.pdf", "garbage")}, "failed to extract text"},
		{"empty docx", []string{"match", writeDOCX(t, dir, "empty.docx")}, "no text could be extracted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()

	t.Run("built-in", func(t *testing.T) {
		out, err := execute(t, "catalog", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "Validation passed")
		assert.Contains(t, out, "embedded:roles.json")
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, dir, "ok.json", smallCatalog)
		out, err := execute(t, "catalog", "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "(3 roles)")
	})

	t.Run("duplicate role", func(t *testing.T) {
		path := writeFile(t, dir, "dup.json", `{"roles": [
			{"name": "Backend", "skills": ["Go"]},
			{"name": "Backend", "skills": ["Rust"]}
		]}`)
		_, err := execute(t, "catalog", "validate", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("schema violation", func(t *testing.T) {
		path := writeFile(t, dir, "empty.json", `{"roles": []}`)
		_, err := execute(t, "catalog", "validate", path)
		require.Error(t, err)
	})
}

func TestCatalogList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "roles.json", smallCatalog)

	out, err := execute(t, "catalog", "list", "--json", "--catalog", path)
	require.NoError(t, err)

	var roles []types.RoleSummary
	require.NoError(t, json.Unmarshal([]byte(out), &roles), out)
	require.Len(t, roles, 3)
	assert.Equal(t, types.RoleSummary{Name: "Backend", Skills: []string{"Rust", "Docker"}}, roles[0])

	out, err = execute(t, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ROLE CATALOG")
	assert.Contains(t, out, "Frontend Developer")
}

func TestLoadConfig_Flags(t *testing.T) {
	t.Setenv("PORT", "9000")

	_, err := execute(t, "catalog", "list", "--json", "--debug")
	require.NoError(t, err)

	cfg, err := loadConfig(catalogListCmd)
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	catalogPath := writeFile(t, dir, "roles.json", smallCatalog)
	cfgPath := writeFile(t, dir, "config.yaml", "catalog_path: "+catalogPath+"\n")

	out, err := execute(t, "--config", cfgPath, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, catalogPath)
}
