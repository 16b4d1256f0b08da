// file: internals/features/newsfeed/publications/service/feed_service.go
package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	model "talenthub_backend/internals/features/newsfeed/publications/model"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
	profilemodel "talenthub_backend/internals/features/users/profile/model"
)

/* ==============================
   Sort modes
============================== */

type SortMode string

const (
	SortModeRelevant SortMode = "relevant"
	SortModeRecent   SortMode = "recent"
)

func ParseSortMode(raw string) SortMode {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortModeRecent)) {
		return SortModeRecent
	}
	return SortModeRelevant
}

/* ==============================
   Feed Filter & Ranker
============================== */

type FeedItem struct {
	Publication       model.PublicationModel `json:"publication"`
	AuthorName        string                 `json:"author_name"`
	AuthorIsCertified bool                   `json:"author_is_certified"`
}

type FeedPage struct {
	Items   []FeedItem `json:"items"`
	Total   int64      `json:"total"`
	HasMore bool       `json:"has_more"`
}

type FeedFilters struct {
	Category         *string
	AchievementsOnly bool
}

type FeedService struct {
	DB    *gorm.DB
	Graph *relservice.Graph
}

func NewFeedService(db *gorm.DB, graph *relservice.Graph) *FeedService {
	return &FeedService{DB: db, Graph: graph}
}

// GetFeed assembles the viewer's page:
//  1. candidate set: not deleted, and either active+approved, or the viewer's
//     own still-pending publications
//  2. relationship filtering through the graph scope (blocks + discreet mode)
//  3. ordering per sort mode, deterministic tie-break on id descending
//  4. total / has_more / slice all derived from that one candidate query
//
// A store failure degrades to an empty page: the feed must not take the whole
// screen down with it.
func (s *FeedService) GetFeed(ctx context.Context, viewerID uuid.UUID, viewerEmployerID *uuid.UUID, sortMode SortMode, limit, offset int, filters FeedFilters) FeedPage {
	empty := FeedPage{Items: []FeedItem{}}
	if limit <= 0 {
		limit = constants.FeedDefaultPerPage
	}
	if offset < 0 {
		offset = 0
	}

	tx := s.DB.WithContext(ctx).Model(&model.PublicationModel{}).
		Where("(publication_is_active = ? AND publication_moderation_status = ?) OR (publication_moderation_status = ? AND publication_author_id = ?)",
			true, model.ModerationStatusApproved, model.ModerationStatusPending, viewerID).
		Scopes(s.Graph.VisibleAuthorsScope(viewerID, viewerEmployerID))

	if filters.Category != nil && strings.TrimSpace(*filters.Category) != "" {
		tx = tx.Where("publication_category = ?", strings.TrimSpace(*filters.Category))
	}
	if filters.AchievementsOnly {
		tx = tx.Where("publication_is_achievement = ?", true)
	}

	var candidates []model.PublicationModel
	if err := tx.Find(&candidates).Error; err != nil {
		log.Printf("[ERROR] feed candidate query (viewer=%s): %v", viewerID, err)
		return empty
	}

	profiles, err := s.authorProfiles(ctx, candidates)
	if err != nil {
		log.Printf("[ERROR] feed author profiles (viewer=%s): %v", viewerID, err)
		return empty
	}

	orderCandidates(candidates, profiles, sortMode, time.Now())

	total := int64(len(candidates))
	page := paginate(candidates, offset, limit)

	items := make([]FeedItem, 0, len(page))
	for _, pub := range page {
		item := FeedItem{Publication: pub}
		if p, ok := profiles[pub.PublicationAuthorID]; ok {
			item.AuthorName = p.UserProfileFullName
			item.AuthorIsCertified = p.UserProfileIsCertified
		}
		items = append(items, item)
	}

	return FeedPage{
		Items:   items,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}
}

func (s *FeedService) authorProfiles(ctx context.Context, candidates []model.PublicationModel) (map[uuid.UUID]profilemodel.UserProfileModel, error) {
	out := make(map[uuid.UUID]profilemodel.UserProfileModel)
	if len(candidates) == 0 {
		return out, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.PublicationAuthorID]; ok {
			continue
		}
		seen[c.PublicationAuthorID] = struct{}{}
		ids = append(ids, c.PublicationAuthorID)
	}

	var profiles []profilemodel.UserProfileModel
	if err := s.DB.WithContext(ctx).
		Where("user_profile_user_id IN ?", ids).
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserProfileUserID] = p
	}
	return out, nil
}

/* ==============================
   Ordering
============================== */

func orderCandidates(candidates []model.PublicationModel, profiles map[uuid.UUID]profilemodel.UserProfileModel, sortMode SortMode, now time.Time) {
	if sortMode == SortModeRecent {
		sort.Slice(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if !a.PublicationCreatedAt.Equal(b.PublicationCreatedAt) {
				return a.PublicationCreatedAt.After(b.PublicationCreatedAt)
			}
			return a.PublicationID.String() > b.PublicationID.String()
		})
		return
	}

	scores := make(map[uuid.UUID]float64, len(candidates))
	for _, c := range candidates {
		certified := false
		if p, ok := profiles[c.PublicationAuthorID]; ok {
			certified = p.UserProfileIsCertified
		}
		scores[c.PublicationID] = relevanceScore(c, certified, now)
	}
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := scores[candidates[i].PublicationID], scores[candidates[j].PublicationID]
		if si != sj {
			return si > sj
		}
		return candidates[i].PublicationID.String() > candidates[j].PublicationID.String()
	})
}

// relevanceScore blends recency (halving every RankRecencyHalfLife), author
// certification, and logarithmic engagement. Weights are fixed constants.
func relevanceScore(p model.PublicationModel, certified bool, now time.Time) float64 {
	age := now.Sub(p.PublicationCreatedAt)
	if age < 0 {
		age = 0
	}
	recency := math.Pow(0.5, age.Hours()/constants.RankRecencyHalfLife.Hours())

	certBoost := 0.0
	if certified {
		certBoost = 1.0
	}

	engagement := math.Log(1 + float64(p.PublicationLikeCount) + 2*float64(p.PublicationCommentCount))

	return constants.RankWeightRecency*recency +
		constants.RankWeightCertification*certBoost +
		constants.RankWeightEngagement*engagement
}

func paginate(candidates []model.PublicationModel, offset, limit int) []model.PublicationModel {
	if offset >= len(candidates) {
		return nil
	}
	end := offset + limit
	if end > len(candidates) {
		end = len(candidates)
	}
	return candidates[offset:end]
}
