package reporter

import (
	"path"
	"strings"
)

// DescribeCapabilities renders the device or browser a session runs on.
// Missing fields drop their clause instead of failing.
func DescribeCapabilities(caps *Capabilities, verbose bool) string {
	if caps == nil {
		return ""
	}

	version := firstNonEmpty(caps.Version, caps.PlatformVersion, caps.BrowserVersion)
	platform := resolvePlatform(caps)

	if caps.DeviceName != "" {
		return describeDevice(caps, platform, version, verbose)
	}

	if !verbose {
		return joinNonEmpty(caps.BrowserName, version, platform)
	}

	var b strings.Builder
	b.WriteString(caps.BrowserName)
	if version != "" {
		b.WriteString(" (v" + version + ")")
	}
	if platform != "" {
		b.WriteString(" on " + platform)
	}
	return strings.TrimSpace(b.String())
}

// describeDevice renders "<device> on <platform> <version> executing <program>".
func describeDevice(caps *Capabilities, platform, version string, verbose bool) string {
	parts := []string{caps.DeviceName}
	if verbose {
		if on := joinNonEmpty(platform, version); on != "" {
			parts = append(parts, "on", on)
		}
	}
	if program := resolveProgram(caps); program != "" {
		parts = append(parts, "executing", program)
	}
	return strings.Join(parts, " ")
}

func resolvePlatform(caps *Capabilities) string {
	if caps.OS != "" {
		return joinNonEmpty(caps.OS, caps.OSVersion)
	}
	return firstNonEmpty(caps.Platform, caps.PlatformName)
}

func resolveProgram(caps *Capabilities) string {
	if caps.App != "" {
		return path.Base(strings.ReplaceAll(caps.App, "\\", "/"))
	}
	return firstNonEmpty(caps.AppPackage, caps.BundleID, caps.BrowserName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
