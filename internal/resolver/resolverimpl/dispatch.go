package resolverimpl

import "github.com/orgball2608/x-media-resolver/internal/twitter"

// mediaSet is the outcome of kind dispatch. Exactly one variant applies per
// post, chosen in fixed priority: videos, then photos, then nothing.
type mediaSet interface {
	isMediaSet()
}

type videoSet []twitter.Video

type photoSet []twitter.Photo

type emptySet struct{}

func (videoSet) isMediaSet() {}
func (photoSet) isMediaSet() {}
func (emptySet) isMediaSet() {}

// classify ignores photos whenever at least one video is present.
func classify(m *twitter.Media) mediaSet {
	switch {
	case len(m.Videos) > 0:
		return videoSet(m.Videos)
	case len(m.Photos) > 0:
		return photoSet(m.Photos)
	default:
		return emptySet{}
	}
}
