package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func pageValues(page, limit int) url.Values {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

func setList(v url.Values, key string, items []string) {
	if len(items) > 0 {
		v.Set(key, strings.Join(items, ","))
	}
}

func projectValues(q models.ProjectQuery) url.Values {
	v := pageValues(q.Page, q.Limit)
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	setList(v, "technologies", q.Technologies)
	if q.Author != "" {
		v.Set("author", q.Author)
	}
	return v
}

func userValues(q models.UserQuery) url.Values {
	v := pageValues(q.Page, q.Limit)
	if q.Q != "" {
		v.Set("q", q.Q)
	}
	setList(v, "skills", q.Skills)
	return v
}

// checkPagination logs page metadata that contradicts itself. The page is
// still returned; slices store what the server sent.
func (c *HTTPClient) checkPagination(ctx context.Context, path string, p *models.Pagination) {
	if p == nil {
		return
	}
	if err := p.Validate(); err != nil {
		c.logger.Warn(ctx, "inconsistent pagination from server", "path", path, "error", err)
	}
}
