package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

const (
	major = 0
	minor = 1
	patch = 0

	// Version is the version of both contracts, it must match the VERSION file.
	Version = major*1_000_000 + minor*1_000 + patch

	// MinUpdateVersion is the oldest deployed version the current code can
	// be installed over.
	MinUpdateVersion = 1_000 // 0.1.0

	// ErrUnsupportedVersion is thrown by CheckVersion for deployments older
	// than MinUpdateVersion.
	ErrUnsupportedVersion = "unsupported contract version"

	// ErrAlreadyUpdated is thrown by CheckVersion when deployed code is not
	// older than the new one.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless the deployed version from can be updated to
// Version.
func CheckVersion(from int) {
	if from < MinUpdateVersion {
		panic(ErrUnsupportedVersion + ": " + std.Itoa(from, 10))
	}
	if from >= Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion appends version of the running code to update data, so the
// new code can check it in _deploy.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
