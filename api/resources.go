package api

import (
	"context"
	"net/http"

	"backend_tigo/models"
	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// createRequest is a bound create payload that builds the row to insert
type createRequest[R any] interface {
	Record() (R, error)
}

// updateRequest is a bound edit payload that yields the columns to write
type updateRequest interface {
	Updates() (map[string]any, error)
}

// resource serves one management screen: list with search, create, edit and delete.
// Every write goes through the screen, so a successful write answers with the
// re-fetched rows.
type resource[R models.Record, V any, C createRequest[R], U updateRequest] struct {
	name    string
	gateway *services.Gateway[R]
	screen  func() *services.Screen[V]
	search  func(V) []string
	logger  *logrus.Logger

	// optional overrides
	insert  func(ctx context.Context, req C, record R) (R, error)
	updates func(req U) (map[string]any, error)
	created func(ctx context.Context, record R)
}

func (r *resource[R, V, C, U]) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/" + r.name)
	{
		group.GET("", r.List)
		group.POST("", r.Create)
		group.PUT("/:id", r.Update)
		group.DELETE("/:id", r.Delete)
	}
}

// logLoadFailure records a fetch failure; the client only sees the load_failed state
func (r *resource[R, V, C, U]) logLoadFailure(screen *services.Screen[V]) {
	if screen.State() == services.StateLoadFailed {
		r.logger.WithError(screen.Err()).WithField("resource", r.name).Warn("screen load failed")
	}
}

// List godoc
// GET /api/<resource>?search=term
func (r *resource[R, V, C, U]) List(c *gin.Context) {
	screen := r.screen()
	if err := screen.Load(c.Request.Context()); err != nil {
		respondFailure(c, r.logger, "List", err)
		return
	}
	r.logLoadFailure(screen)

	respondSuccess(c, http.StatusOK, screen.Snapshot(c.Query("search"), r.search))
}

// Create godoc
// POST /api/<resource>
func (r *resource[R, V, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindFailure(c, err)
		return
	}

	record, err := req.Record()
	if err != nil {
		respondFailure(c, r.logger, "Create", err)
		return
	}

	ctx := c.Request.Context()
	screen := r.screen()
	var stored R
	err = screen.Submit(ctx, func(ctx context.Context) error {
		var err error
		if r.insert != nil {
			stored, err = r.insert(ctx, req, record)
		} else {
			stored, err = r.gateway.Insert(ctx, record)
		}
		return err
	})
	if err != nil {
		respondFailure(c, r.logger, "Create", err)
		return
	}
	r.logLoadFailure(screen)

	if r.created != nil {
		r.created(ctx, stored)
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   stored,
		"screen": screen.Snapshot("", r.search),
	})
}

// Update godoc
// PUT /api/<resource>/:id
func (r *resource[R, V, C, U]) Update(c *gin.Context) {
	id := c.Param("id")

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindFailure(c, err)
		return
	}

	var fields map[string]any
	var err error
	if r.updates != nil {
		fields, err = r.updates(req)
	} else {
		fields, err = req.Updates()
	}
	if err != nil {
		respondFailure(c, r.logger, "Update", err)
		return
	}

	screen := r.screen()
	err = screen.Submit(c.Request.Context(), func(ctx context.Context) error {
		return r.gateway.Update(ctx, id, fields)
	})
	if err != nil {
		respondFailure(c, r.logger, "Update", err)
		return
	}
	r.logLoadFailure(screen)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"screen": screen.Snapshot("", r.search),
	})
}

// Delete godoc
// DELETE /api/<resource>/:id?confirm=true
// The confirmation may also come as the X-Confirm-Delete header.
func (r *resource[R, V, C, U]) Delete(c *gin.Context) {
	id := c.Param("id")
	confirmed := c.Query("confirm") == "true" || c.GetHeader("X-Confirm-Delete") == "true"

	screen := r.screen()
	err := screen.Submit(c.Request.Context(), func(ctx context.Context) error {
		return r.gateway.Delete(ctx, id, confirmed)
	})
	if err != nil {
		respondFailure(c, r.logger, "Delete", err)
		return
	}
	r.logLoadFailure(screen)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"screen": screen.Snapshot("", r.search),
	})
}
