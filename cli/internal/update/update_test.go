package update

import (
	"fmt"
	"runtime"
	"strings"
	"testing"
)

func TestGetDownloadURL(t *testing.T) {
	url := GetDownloadURL("1.2.3")

	if !strings.HasPrefix(url, "https://github.com/satishbabariya/richcobra/releases/download/v1.2.3/") {
		t.Errorf("Unexpected release path: %q", url)
	}
	want := fmt.Sprintf("richcobra-%s-%s", runtime.GOOS, runtime.GOARCH)
	if !strings.HasSuffix(url, want) {
		t.Errorf("Expected platform suffix %q, got %q", want, url)
	}
}

func TestCheckForUpdatesRejectsBadVersion(t *testing.T) {
	if err := CheckForUpdates("not-a-version"); err == nil {
		t.Error("Expected an error for a malformed version")
	}
}
