package profile

import "strings"

// MediaKind tells how the profile media reference should be rendered.
type MediaKind string

const (
	MediaNone      MediaKind = "none"
	MediaPhoto     MediaKind = "photo"
	MediaAnimation MediaKind = "animation"
)

// KindOf classifies a profile_photo value. Lottie assets are recognised by
// their host or extension, everything else non-empty is a photo.
func KindOf(ref string) MediaKind {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return MediaNone
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http") &&
		(strings.Contains(lower, ".lottie") || strings.Contains(lower, "lottie.host") || strings.HasSuffix(lower, ".json")) {
		return MediaAnimation
	}
	return MediaPhoto
}
