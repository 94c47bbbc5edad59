package resolverimpl

import "fmt"

const DefaultBrandPrefix = "DoReMi"

// VideoFilename and PhotoFilename are deterministic in their inputs. Handles
// and ids come from the provider and are used as-is.
func VideoFilename(prefix, screenName, postID string) string {
	return fmt.Sprintf("%s_Video_%s_%s.mp4", prefix, screenName, postID)
}

// PhotoFilename takes the 1-based position of the photo in the post.
func PhotoFilename(prefix, screenName, postID string, index int) string {
	return fmt.Sprintf("%s_Photo_%s_%s_%d.jpg", prefix, screenName, postID, index)
}

// IndexedVideoFilename keeps filenames unique for posts carrying more than one video.
func IndexedVideoFilename(prefix, screenName, postID string, index int) string {
	return fmt.Sprintf("%s_Video_%s_%s_%d.mp4", prefix, screenName, postID, index)
}
