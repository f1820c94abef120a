package flashstation

import "testing"

func TestBuild_Ordinal(t *testing.T) {
	t.Parallel()

	if got := (Build{BuildID: "12345"}).Ordinal(); got != 12345 {
		t.Fatalf("Ordinal = %d, want 12345", got)
	}
	if got := (Build{BuildID: "abc"}).Ordinal(); got != -1 {
		t.Fatalf("Ordinal for non-numeric id = %d, want -1", got)
	}
	if got := (Build{}).Ordinal(); got != -1 {
		t.Fatalf("Ordinal for empty id = %d, want -1", got)
	}
}

func TestBuild_VersionLabel(t *testing.T) {
	t.Parallel()

	v, ok := (Build{VersionName: "15.0.0"}).VersionLabel()
	if !ok || v != "15.0.0" {
		t.Fatalf("VersionLabel = %q/%v, want 15.0.0/true", v, ok)
	}

	preview := Build{PreviewMetadata: &PreviewMetadata{
		ReleaseTrackName:        "Android 16 Beta",
		ReleaseTrackVersionName: "Beta 2",
	}}
	v, ok = preview.VersionLabel()
	if !ok || v != "Android 16 Beta - Beta 2" {
		t.Fatalf("VersionLabel = %q/%v, want track label/true", v, ok)
	}

	if _, ok := (Build{}).VersionLabel(); ok {
		t.Fatalf("VersionLabel on bare build = true, want false")
	}
}

func TestBuild_LatestInCategory(t *testing.T) {
	t.Parallel()

	release := Build{ReleaseBuildMetadata: &ReleaseBuildMetadata{Latest: true}}
	if !release.LatestInCategory() {
		t.Fatalf("latest release not reported as latest")
	}

	preview := Build{PreviewMetadata: &PreviewMetadata{Active: true}}
	if !preview.LatestInCategory() {
		t.Fatalf("active preview not reported as latest")
	}

	if (Build{}).LatestInCategory() {
		t.Fatalf("bare build reported as latest")
	}
}

func TestBuild_ReleaseNotes(t *testing.T) {
	t.Parallel()

	notes, ok := (Build{ReleaseBuildMetadata: &ReleaseBuildMetadata{Notes: "January update"}}).ReleaseNotes()
	if !ok || notes != "January update" {
		t.Fatalf("ReleaseNotes = %q/%v, want notes/true", notes, ok)
	}

	if _, ok := (Build{ReleaseBuildMetadata: &ReleaseBuildMetadata{}}).ReleaseNotes(); ok {
		t.Fatalf("empty notes reported as present")
	}
	if _, ok := (Build{}).ReleaseNotes(); ok {
		t.Fatalf("missing metadata reported as present")
	}
}
