package flashstation

import (
	"encoding/json"
	"strconv"
)

// Query captures one invocation's lookup parameters. Constructed once and
// never mutated.
type Query struct {
	Codename       string
	IncludeGeneric bool
}

// LookupOptions is the result of scraping the flash portal: the API key the
// portal embeds in its markup and the product ids worth asking the builds
// endpoint about.
type LookupOptions struct {
	APIKey   string
	Products []string
}

// Result carries both the decoded builds and the raw service payload so raw
// mode can re-emit the response untouched.
type Result struct {
	Builds []Build
	Raw    json.RawMessage
}

// BuildsResponse mirrors the payload returned by the builds endpoint.
type BuildsResponse struct {
	FlashstationBuild []Build `json:"flashstationBuild"`
}

// Build describes a single factory image build in transport-friendly form.
type Build struct {
	Product                 string                `json:"product"`
	BuildID                 string                `json:"buildId"`
	ReleaseCandidateName    string                `json:"releaseCandidateName"`
	VersionName             string                `json:"versionName"`
	FactoryImageDownloadURL string                `json:"factoryImageDownloadUrl"`
	ReleaseBuildMetadata    *ReleaseBuildMetadata `json:"releaseBuildMetadata"`
	PreviewMetadata         *PreviewMetadata      `json:"previewMetadata"`
}

// ReleaseBuildMetadata is present on stable release builds.
type ReleaseBuildMetadata struct {
	Latest bool   `json:"latest"`
	Notes  string `json:"notes"`
}

// PreviewMetadata is present on beta and developer-preview builds.
type PreviewMetadata struct {
	Active                  bool   `json:"active"`
	ReleaseTrackName        string `json:"releaseTrackName"`
	ReleaseTrackVersionName string `json:"releaseTrackVersionName"`
}

// Ordinal returns the numeric build id used for chronological ordering.
// Non-numeric ids sort before everything else.
func (b Build) Ordinal() int64 {
	n, err := strconv.ParseInt(b.BuildID, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// VersionLabel returns the human-readable version for the build. Release
// builds carry a version name directly; preview builds derive one from their
// release track. The second return is false when neither is available.
func (b Build) VersionLabel() (string, bool) {
	if b.VersionName != "" {
		return b.VersionName, true
	}
	if b.PreviewMetadata != nil {
		return b.PreviewMetadata.ReleaseTrackName + " - " + b.PreviewMetadata.ReleaseTrackVersionName, true
	}
	return "", false
}

// LatestInCategory reports whether this build is the current one for its
// product: the latest release, or the active preview.
func (b Build) LatestInCategory() bool {
	if b.ReleaseBuildMetadata != nil {
		return b.ReleaseBuildMetadata.Latest
	}
	if b.PreviewMetadata != nil {
		return b.PreviewMetadata.Active
	}
	return false
}

// ReleaseNotes returns the build's release notes when present and non-empty.
func (b Build) ReleaseNotes() (string, bool) {
	if b.ReleaseBuildMetadata != nil && b.ReleaseBuildMetadata.Notes != "" {
		return b.ReleaseBuildMetadata.Notes, true
	}
	return "", false
}
