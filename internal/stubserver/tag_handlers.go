package stubserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/supportdesk/deskclient/internal/core/domain"
)

type tagAddRequest struct {
	Name string `json:"name"`
}

func (b *Backend) listTags(c echo.Context) error {
	b.mu.Lock()
	tags := make([]domain.Tag, len(b.tags))
	copy(tags, b.tags)
	b.mu.Unlock()
	return c.JSON(http.StatusOK, tags)
}

func (b *Backend) addTag(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanTag() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in tagAddRequest
	if err := c.Bind(&in); err != nil || in.Name == "" {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range b.tags {
		if t.Name == in.Name {
			return errJSON(c, http.StatusConflict, "Tag exists")
		}
	}

	tag := domain.Tag{ID: uuid.NewString(), Name: in.Name}
	b.tags = append(b.tags, tag)
	return c.JSON(http.StatusOK, tag)
}

// deleteTag removes the tag from the catalogue only. Queries referencing it
// keep the reference: removal does not cascade.
func (b *Backend) deleteTag(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanTag() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, t := range b.tags {
		if t.ID == id {
			b.tags = append(b.tags[:i], b.tags[i+1:]...)
			return c.JSON(http.StatusOK, t)
		}
	}
	return errJSON(c, http.StatusNotFound, "Tag not found")
}

type meetingRequest struct {
	Date    time.Time `json:"date"`
	Subject string    `json:"subject"`
	Notes   string    `json:"notes"`
}

func (b *Backend) listMeetings(c echo.Context) error {
	b.mu.Lock()
	meetings := make([]domain.Meeting, len(b.meetings))
	copy(meetings, b.meetings)
	b.mu.Unlock()
	return c.JSON(http.StatusOK, meetings)
}

func (b *Backend) addMeeting(c echo.Context) error {
	req := requester(c)
	if !req.Role.CanScheduleMeetings() {
		return errJSON(c, http.StatusForbidden, "Access forbidden")
	}

	var in meetingRequest
	if err := c.Bind(&in); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid payload")
	}

	m := domain.Meeting{
		ID:      uuid.NewString(),
		Date:    in.Date,
		Subject: in.Subject,
		Notes:   in.Notes,
	}

	b.mu.Lock()
	b.meetings = append(b.meetings, m)
	b.mu.Unlock()

	return c.JSON(http.StatusOK, m)
}
