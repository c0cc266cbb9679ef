package http

import (
	"github.com/gin-gonic/gin"
)

// processTitleReq binds the Add/Update body.
func (h *handler) processTitleReq(c *gin.Context) (titleReq, error) {
	var req titleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSearchReq binds the ?q= query parameter.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDismissReq binds the notification kind from the path and the reason
// from the query string.
func (h *handler) processDismissReq(c *gin.Context) (dismissReq, error) {
	var req dismissReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam binds the task ID from the path.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	var req idReq
	if err := c.ShouldBindUri(&req); err != nil {
		return "", err
	}
	return req.ID, nil
}
