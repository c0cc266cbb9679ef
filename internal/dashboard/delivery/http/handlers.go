package http

import (
	"github.com/gin-gonic/gin"

	"task-dashboard/pkg/response"
)

// View godoc
// @Summary     Get the dashboard
// @Description Returns the full dashboard snapshot. Passing q applies a search first.
// @Tags        Dashboard
// @Produce     json
// @Param       q query string false "Case-insensitive substring filter"
// @Success     200 {object} viewResp
// @Router      /api/v1/dashboard [GET]
func (h *handler) View(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := c.GetQuery("q"); ok {
		h.Search(c)
		return
	}

	response.OK(c, newViewResp(h.uc.View(ctx)))
}

// Search godoc
// @Summary     Search tasks
// @Description Filters visible tasks by a case-insensitive substring. Empty q shows all tasks.
// @Tags        Dashboard
// @Produce     json
// @Param       q query string false "Search query"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/dashboard/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newViewResp(h.uc.Search(ctx, req.toInput())))
}

// OpenAdd godoc
// @Summary     Open the add dialog
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/dashboard/add-dialog [POST]
func (h *handler) OpenAdd(c *gin.Context) {
	response.OK(c, newViewResp(h.uc.OpenAdd(c.Request.Context())))
}

// CloseAdd godoc
// @Summary     Close the add dialog
// @Description Closes the dialog and clears its input.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/dashboard/add-dialog [DELETE]
func (h *handler) CloseAdd(c *gin.Context) {
	response.OK(c, newViewResp(h.uc.CloseAdd(c.Request.Context())))
}

// Add godoc
// @Summary     Add a task
// @Description Appends a task. A blank title is ignored and reported as added=false.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body titleReq true "Task title"
// @Success     200  {object} addResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/dashboard/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, req.toAddInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task with the given ID. No confirmation, no undo.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/dashboard/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: id=%s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(view))
}

// OpenEdit godoc
// @Summary     Open the edit dialog
// @Description Points the edit cursor at a task and preloads the draft with its title.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} viewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/dashboard/tasks/{id}/edit [POST]
func (h *handler) OpenEdit(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.OpenEdit(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.OpenEdit: id=%s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(view))
}

// CancelEdit godoc
// @Summary     Close the edit dialog
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/dashboard/edit [DELETE]
func (h *handler) CancelEdit(c *gin.Context) {
	response.OK(c, newViewResp(h.uc.CancelEdit(c.Request.Context())))
}

// Update godoc
// @Summary     Update the task being edited
// @Description Replaces the title of the task under the edit cursor. No cursor or a blank title is reported as updated=false.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body titleReq true "New title"
// @Success     200  {object} updateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Task under the cursor no longer exists"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/dashboard/edit [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// ToggleTheme godoc
// @Summary     Toggle dark mode
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} viewResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/dashboard/theme/toggle [POST]
func (h *handler) ToggleTheme(c *gin.Context) {
	response.OK(c, newViewResp(h.uc.ToggleTheme(c.Request.Context())))
}

// DismissNotification godoc
// @Summary     Dismiss a notification
// @Description Hides an "added" or "updated" toast early. reason=clickaway is ignored.
// @Tags        Dashboard
// @Produce     json
// @Param       kind   path  string true  "Notification kind (added, updated)"
// @Param       reason query string false "Dismiss reason"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Unknown kind"
// @Router      /api/v1/dashboard/notifications/{kind} [DELETE]
func (h *handler) DismissNotification(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDismissReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.DismissNotification(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(view))
}

var _ Handler = (*handler)(nil)
