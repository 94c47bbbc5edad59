package resolverimpl

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/orgball2608/x-media-resolver/internal/domain"
	"github.com/orgball2608/x-media-resolver/internal/resolver"
	"github.com/orgball2608/x-media-resolver/internal/twitter"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/errors"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

const (
	notFoundMessage            = "Tweet not found or private."
	noMediaMessage             = "No media found in this tweet."
	noDownloadableMediaMessage = "No downloadable media found."
)

type Opts struct {
	fx.In

	Twitter twitter.Client
	Logger  logger.Logger
	Config  *config.Config
}

type ResolverImpl struct {
	twitter        twitter.Client
	logger         logger.Logger
	hosts          []string
	brandPrefix    string
	bitrateCeiling int64
}

var _ resolver.Client = (*ResolverImpl)(nil)

func New(opts Opts) *ResolverImpl {
	r := &ResolverImpl{
		twitter:        opts.Twitter,
		logger:         opts.Logger.WithComponent("Resolver"),
		hosts:          DefaultHosts,
		brandPrefix:    DefaultBrandPrefix,
		bitrateCeiling: DefaultBitrateCeiling,
	}
	if opts.Config != nil {
		if len(opts.Config.Resolver.Hosts) > 0 {
			r.hosts = opts.Config.Resolver.Hosts
		}
		if opts.Config.Resolver.BrandPrefix != "" {
			r.brandPrefix = opts.Config.Resolver.BrandPrefix
		}
		if opts.Config.Resolver.BitrateCeiling > 0 {
			r.bitrateCeiling = opts.Config.Resolver.BitrateCeiling
		}
	}
	return r
}

func (r *ResolverImpl) Resolve(ctx context.Context, rawURL string) (*domain.ResolutionResult, error) {
	ref, err := ParseReference(rawURL, r.hosts)
	if err != nil {
		r.logger.Info("Rejected input URL", "url", rawURL)
		return nil, err
	}

	r.logger.Info("Resolving post", "id", ref.ID, "url", ref.Normalized)

	status, err := r.twitter.GetStatus(ctx, ref.ID)
	if err != nil {
		if stderrors.Is(err, twitter.ErrStatusNotFound) {
			return nil, errors.WrapWithCode(fmt.Errorf("%w: %v", errors.ErrNotFound, err), errors.CodeNotFound, notFoundMessage)
		}
		r.logger.Error("Metadata lookup failed", "id", ref.ID, "error", err)
		return nil, errors.WrapWithCode(fmt.Errorf("%w: %v", errors.ErrInternalServer, err), errors.CodeInternal, errors.DefaultMessage)
	}

	if status == nil || status.Tweet == nil {
		r.logger.Error("Metadata response carried no tweet", "id", ref.ID)
		return nil, errors.WrapWithCode(errors.ErrInternalServer, errors.CodeInternal, errors.DefaultMessage)
	}
	tweet := status.Tweet

	if tweet.Media == nil {
		return nil, errors.WrapWithCode(errors.ErrNoMedia, errors.CodeNoMedia, noMediaMessage)
	}

	var media []domain.MediaAsset
	switch set := classify(tweet.Media).(type) {
	case videoSet:
		media = r.videoAssets(set, tweet.Author.ScreenName, ref.ID)
	case photoSet:
		media = r.photoAssets(set, tweet.Author.ScreenName, ref.ID)
	case emptySet:
		return nil, errors.WrapWithCode(errors.ErrNoDownloadableMedia, errors.CodeNoDownloadableMedia, noDownloadableMediaMessage)
	}

	r.logger.Info("Resolved post", "id", ref.ID, "username", tweet.Author.ScreenName, "media_count", len(media))

	return &domain.ResolutionResult{
		Author:   tweet.Author.Name,
		Username: tweet.Author.ScreenName,
		Text:     tweet.Text,
		Media:    media,
	}, nil
}

func (r *ResolverImpl) videoAssets(videos videoSet, screenName, postID string) []domain.MediaAsset {
	assets := make([]domain.MediaAsset, 0, len(videos))
	for i, v := range videos {
		filename := VideoFilename(r.brandPrefix, screenName, postID)
		if len(videos) > 1 {
			filename = IndexedVideoFilename(r.brandPrefix, screenName, postID, i+1)
		}
		asset := domain.MediaAsset{
			Type:     domain.MediaTypeVideo,
			URL:      SelectVariant(v.URL, v.Variants, r.bitrateCeiling),
			Filename: filename,
			Width:    v.Width,
			Height:   v.Height,
		}
		if v.ThumbnailURL != "" {
			thumb := v.ThumbnailURL
			asset.Thumbnail = &thumb
		}
		assets = append(assets, asset)
	}
	return assets
}

func (r *ResolverImpl) photoAssets(photos photoSet, screenName, postID string) []domain.MediaAsset {
	assets := make([]domain.MediaAsset, 0, len(photos))
	for i, p := range photos {
		assets = append(assets, domain.MediaAsset{
			Type:     domain.MediaTypePhoto,
			URL:      p.URL,
			Filename: PhotoFilename(r.brandPrefix, screenName, postID, i+1),
			Width:    p.Width,
			Height:   p.Height,
		})
	}
	return assets
}
