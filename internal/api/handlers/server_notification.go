package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dediamond1/mechanic/ent"
	entnotification "github.com/dediamond1/mechanic/ent/notification"
	entuser "github.com/dediamond1/mechanic/ent/user"
	"github.com/dediamond1/mechanic/internal/api/middleware"
	apperrors "github.com/dediamond1/mechanic/internal/pkg/errors"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		respondError(c, apperrors.Unauthorized("UNAUTHORIZED", "not authenticated"))
		return
	}

	query := s.client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID)))
	if boolQuery(c, "unread_only") {
		query = query.Where(entnotification.ReadEQ(false))
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	notifications, err := query.
		Offset((page - 1) * perPage).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"pagination": paginationFor(page, perPage, total),
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		respondError(c, apperrors.Unauthorized("UNAUTHORIZED", "not authenticated"))
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read. Only the
// owner can mark their own entries.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		respondError(c, apperrors.Unauthorized("UNAUTHORIZED", "not authenticated"))
		return
	}

	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(c.Param("id")),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			respondError(c, apperrors.NotFound(apperrors.CodeNotificationNotFound, "notification not found"))
			return
		}
		respondError(c, err)
		return
	}

	if !n.Read {
		n, err = s.client.Notification.UpdateOneID(n.ID).
			SetRead(true).
			SetReadAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, notificationToAPI(n))
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		respondError(c, apperrors.Unauthorized("UNAUTHORIZED", "not authenticated"))
		return
	}

	updated, err := s.client.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
