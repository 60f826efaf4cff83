package server

import (
	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search?q=&category=
//
// An empty query yields an empty result set. An empty category falls back
// to feeds; an unknown category yields an empty result set.
func (s *Server) Search(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	results, err := s.searchService.Search(c.Context(), c.Query("q"), c.Query("category"), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"results": results})
}
