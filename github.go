package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"
)

// GitHub stats: two unauthenticated page fetches of the public repository
// listing, aggregated into a top-6 language tally and a top-6 starred
// list. One attempt, no retries; a failure just leaves the section empty.

type repository struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
}

type languageStat struct {
	Name    string
	Count   int
	Color   string
	Percent int
}

// githubAPIBase is a var so tests can point it at a local server.
var githubAPIBase = "https://api.github.com"

var githubClient = &http.Client{Timeout: 10 * time.Second}

func fetchGitHubRepos(user string) ([]repository, error) {
	var all []repository
	for page := 1; page <= 2; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=100&page=%d", githubAPIBase, user, page)
		resp, err := githubClient.Get(url)
		if err != nil {
			return nil, fmt.Errorf("fetch repos page %d: %w", page, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch repos page %d: status %s", page, resp.Status)
		}
		var repos []repository
		err = json.NewDecoder(resp.Body).Decode(&repos)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decode repos page %d: %w", page, err)
		}
		all = append(all, repos...)
		if len(repos) == 0 {
			break
		}
	}
	return all, nil
}

// topLanguages tallies repositories per language and returns the n most
// common. Ties break by name so the output is stable.
func topLanguages(repos []repository, n int) []languageStat {
	counts := map[string]int{}
	for _, r := range repos {
		if r.Language != "" {
			counts[r.Language]++
		}
	}

	stats := make([]languageStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, languageStat{Name: name, Count: count, Color: languageColor(name)})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	if len(stats) > 0 {
		max := stats[0].Count
		for i := range stats {
			stats[i].Percent = stats[i].Count * 100 / max
		}
	}
	return stats
}

// topRepositories returns the n repositories with the most stars,
// preserving listing order between equals.
func topRepositories(repos []repository, n int) []repository {
	sorted := make([]repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Stars > sorted[j].Stars })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

var languageColors = map[string]string{
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Java":       "#b07219",
	"Python":     "#3572A5",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Go":         "#00ADD8",
	"Scala":      "#c22d40",
	"Shell":      "#89e051",
	"Vue":        "#42b883",
}

func languageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return "#8b949e"
}
