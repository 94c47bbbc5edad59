package resolverimpl

import (
	"sort"
	"strings"

	"github.com/orgball2608/x-media-resolver/internal/twitter"
)

const (
	// DefaultBitrateCeiling caps selection to renditions constrained players can handle.
	DefaultBitrateCeiling int64 = 5_000_000

	mp4ContentType = "video/mp4"
)

// SelectVariant returns the URL of the highest-bitrate MP4 rendition strictly
// below ceiling, or baseline when no variant qualifies. A missing bitrate
// counts as 0.
func SelectVariant(baseline string, variants []twitter.Variant, ceiling int64) string {
	if ceiling <= 0 {
		ceiling = DefaultBitrateCeiling
	}

	candidates := make([]twitter.Variant, 0, len(variants))
	for _, v := range variants {
		if isMP4(v.ContentType) && bitrate(v) < ceiling {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return baseline
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return bitrate(candidates[i]) > bitrate(candidates[j])
	})
	return candidates[0].URL
}

func bitrate(v twitter.Variant) int64 {
	if v.Bitrate == nil {
		return 0
	}
	return *v.Bitrate
}

func isMP4(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), mp4ContentType)
}
