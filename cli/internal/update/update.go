package update

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/satishbabariya/richcobra/cli/internal/ui"
)

// latestKnownVersion is the newest release this build knows about. A real
// release pipeline would fetch this from the GitHub releases API.
const latestKnownVersion = "0.1.0"

// CheckForUpdates compares the running version against the latest release
// and prints an upgrade hint when a newer one exists.
func CheckForUpdates(currentVersion string) error {
	current, err := version.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("invalid version format: %w", err)
	}

	latest, err := version.NewVersion(latestKnownVersion)
	if err != nil {
		return fmt.Errorf("invalid latest version format: %w", err)
	}

	if current.LessThan(latest) {
		ui.PrintWarning("A new version is available!")
		fmt.Printf("Current version: %s\n", currentVersion)
		fmt.Printf("Latest version:  %s\n", latestKnownVersion)
		fmt.Printf("\nUpdate with: go install github.com/satishbabariya/richcobra/cli@latest\n")
		fmt.Printf("Or download:  %s\n", GetDownloadURL(latestKnownVersion))
		return nil
	}

	ui.PrintSuccess("You are on the latest version (%s)", currentVersion)
	return nil
}

// GetDownloadURL returns the release download URL for the current platform.
func GetDownloadURL(ver string) string {
	return fmt.Sprintf(
		"https://github.com/satishbabariya/richcobra/releases/download/v%s/richcobra-%s-%s",
		ver, runtime.GOOS, runtime.GOARCH)
}
