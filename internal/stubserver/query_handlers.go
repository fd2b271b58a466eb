package stubserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

type queryRequest struct {
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type replyRequest struct {
	Content string `json:"content"`
}

type tagRequest struct {
	Tags []string `json:"tags"`
}

func (b *Backend) listQueries(c echo.Context) error {
	b.mu.Lock()
	queries := make([]domain.Query, len(b.queries))
	copy(queries, b.queries)
	b.mu.Unlock()
	return c.JSON(http.StatusOK, queries)
}

func (b *Backend) listCustomerQueries(c echo.Context) error {
	id := c.Param("id")
	b.mu.Lock()
	queries := make([]domain.Query, 0)
	for _, q := range b.queries {
		if q.CustomerID == id {
			queries = append(queries, q)
		}
	}
	b.mu.Unlock()
	return c.JSON(http.StatusOK, queries)
}

func (b *Backend) addQuery(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanRaiseQueries() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in queryRequest
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	q := domain.Query{
		ID:         uuid.NewString(),
		CustomerID: req.ID,
		Customer:   req,
		Title:      in.Title,
		Subject:    in.Subject,
		Content:    in.Content,
		Replies:    []domain.Reply{},
		Tags:       []domain.Tag{},
	}

	b.mu.Lock()
	b.queries = append(b.queries, q)
	b.mu.Unlock()

	return c.JSON(http.StatusOK, q)
}

func (b *Backend) replyQuery(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanReply() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in replyRequest
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, q := range b.queries {
		if q.ID != id {
			continue
		}
		q.Replies = append(q.Replies, domain.Reply{
			ID:      uuid.NewString(),
			Content: in.Content,
			By:      req,
		})
		b.queries[i] = q
		return c.JSON(http.StatusOK, q)
	}
	return errJSON(c, http.StatusNotFound, "Query not found")
}

func (b *Backend) tagQuery(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanTag() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in tagRequest
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, q := range b.queries {
		if q.ID != id {
			continue
		}
		// The tag set is replaced wholesale. Unknown ids stay as bare
		// references; the backend does not reject them.
		tags := make([]domain.Tag, 0, len(in.Tags))
		for _, tagID := range in.Tags {
			resolved := domain.Tag{ID: tagID}
			for _, t := range b.tags {
				if t.ID == tagID {
					resolved = t
					break
				}
			}
			tags = append(tags, resolved)
		}
		q.Tags = tags
		b.queries[i] = q
		return c.JSON(http.StatusOK, q)
	}
	return errJSON(c, http.StatusNotFound, "Query not found")
}
