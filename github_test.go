package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchGitHubReposPagesAndDecodes(t *testing.T) {
	pageOne := []repository{
		{ID: 1, Name: "alpha", Language: "Go", Stars: 12},
		{ID: 2, Name: "beta", Language: "TypeScript", Stars: 3},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/devLeonMat/repos", r.URL.Path)
		switch r.URL.Query().Get("page") {
		case "1":
			json.NewEncoder(w).Encode(pageOne)
		default:
			fmt.Fprint(w, "[]")
		}
	}))
	defer srv.Close()

	orig := githubAPIBase
	githubAPIBase = srv.URL
	defer func() { githubAPIBase = orig }()

	repos, err := fetchGitHubRepos("devLeonMat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "alpha", repos[0].Name)
	assert.Equal(t, 12, repos[0].Stars)
}

func TestFetchGitHubReposErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	orig := githubAPIBase
	githubAPIBase = srv.URL
	defer func() { githubAPIBase = orig }()

	_, err := fetchGitHubRepos("devLeonMat")
	assert.Error(t, err)
}

func reposWithLanguages(counts map[string]int) []repository {
	var repos []repository
	for lang, n := range counts {
		for i := 0; i < n; i++ {
			repos = append(repos, repository{Language: lang})
		}
	}
	return repos
}

func TestTopLanguages(t *testing.T) {
	repos := reposWithLanguages(map[string]int{
		"Go":         5,
		"TypeScript": 4,
		"Java":       4,
		"Python":     3,
		"Scala":      2,
		"Shell":      2,
		"HTML":       1,
		"CSS":        1,
	})
	repos = append(repos, repository{Language: ""}) // no language, not counted

	stats := topLanguages(repos, 6)
	require.Len(t, stats, 6)

	assert.Equal(t, "Go", stats[0].Name)
	assert.Equal(t, 100, stats[0].Percent)

	// Equal counts order by name.
	assert.Equal(t, "Java", stats[1].Name)
	assert.Equal(t, "TypeScript", stats[2].Name)
	assert.Equal(t, "Python", stats[3].Name)
	assert.Equal(t, "Scala", stats[4].Name)
	assert.Equal(t, "Shell", stats[5].Name)

	// Percent is relative to the leader.
	assert.Equal(t, 4*100/5, stats[1].Percent)
}

func TestTopLanguagesColors(t *testing.T) {
	stats := topLanguages([]repository{{Language: "Go"}, {Language: "Brainfuck"}}, 6)
	require.Len(t, stats, 2)
	for _, s := range stats {
		switch s.Name {
		case "Go":
			assert.Equal(t, "#00ADD8", s.Color)
		case "Brainfuck":
			assert.Equal(t, "#8b949e", s.Color)
		}
	}
}

func TestTopRepositories(t *testing.T) {
	repos := []repository{
		{Name: "a", Stars: 1},
		{Name: "b", Stars: 9},
		{Name: "c", Stars: 5},
		{Name: "d", Stars: 9},
		{Name: "e", Stars: 0},
		{Name: "f", Stars: 3},
		{Name: "g", Stars: 2},
	}

	top := topRepositories(repos, 6)
	require.Len(t, top, 6)
	assert.Equal(t, "b", top[0].Name)
	// Stable sort keeps listing order between equals.
	assert.Equal(t, "d", top[1].Name)
	assert.Equal(t, "c", top[2].Name)
	assert.NotContains(t, []string{top[0].Name, top[1].Name, top[2].Name, top[3].Name, top[4].Name, top[5].Name}, "e")

	// Input is not mutated.
	assert.Equal(t, "a", repos[0].Name)
}
