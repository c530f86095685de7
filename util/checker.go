package util

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dixieflatline76/DayNight/config"
	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"
)

const (
	githubOwner = "dixieflatline76"
	githubRepo  = "DayNight"
)

// CheckForUpdatesResult holds the outcome of the update check.
type CheckForUpdatesResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// CheckForUpdates polls GitHub for the latest stable release using the given client.
// A nil client uses http.DefaultClient. It compares against config.AppVersion.
func CheckForUpdates(httpClient *http.Client) (*CheckForUpdatesResult, error) {
	return CheckForUpdatesContext(context.Background(), httpClient)
}

// CheckForUpdatesContext is CheckForUpdates with a caller supplied context.
func CheckForUpdatesContext(ctx context.Context, httpClient *http.Client) (*CheckForUpdatesResult, error) {
	client := github.NewClient(httpClient)

	release, _, err := client.Repositories.GetLatestRelease(ctx, githubOwner, githubRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	currentVersion := canonicalVersion(config.AppVersion)
	latestVersion := canonicalVersion(release.GetTagName())

	result := &CheckForUpdatesResult{
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
		ReleaseURL:     release.GetHTMLURL(),
		ReleaseNotes:   release.GetBody(),
	}

	if semver.Compare(latestVersion, currentVersion) > 0 {
		result.UpdateAvailable = true
	}

	return result, nil
}

// canonicalVersion prefixes a "v" so semver.Compare accepts tags like "1.2.0".
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
