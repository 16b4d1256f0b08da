// file: internals/features/newsfeed/publications/controller/feed_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"talenthub_backend/internals/constants"
	service "talenthub_backend/internals/features/newsfeed/publications/service"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
	helper "talenthub_backend/internals/helpers"
)

type FeedController struct {
	Feed *service.FeedService
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{
		Feed: service.NewFeedService(db, relservice.NewGraph(db)),
	}
}

// GET /newsfeed?sort=relevant|recent&page=&per_page=&category=&achievements=1
func (h *FeedController) List(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, constants.FeedDefaultPerPage, constants.FeedMaxPerPage)
	sortMode := service.ParseSortMode(c.Query("sort"))

	filters := service.FeedFilters{}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		filters.Category = &cat
	}
	if c.QueryBool("achievements") {
		filters.AchievementsOnly = true
	}

	page := h.Feed.GetFeed(c.UserContext(), viewerID, helper.GetEmployerIDFromLocals(c),
		sortMode, paging.Limit, paging.Offset, filters)

	return helper.JsonList(c, "", fiber.Map{
		"items":    page.Items,
		"has_more": page.HasMore,
	}, helper.BuildPaginationFromOffset(page.Total, paging.Offset, paging.Limit, len(page.Items)))
}
