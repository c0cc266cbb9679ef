package http

import (
	"task-dashboard/internal/dashboard"
	"task-dashboard/internal/model"
	"task-dashboard/pkg/response"
)

// --- Request DTOs ---

// titleReq is the body of Add and Update. Blank titles are accepted here and
// ignored by the use case.
type titleReq struct {
	Title string `json:"title" binding:"max=1000"`
}

func (r titleReq) validate() error { return nil }

func (r titleReq) toAddInput() dashboard.AddInput {
	return dashboard.AddInput{Title: r.Title}
}

func (r titleReq) toUpdateInput() dashboard.UpdateInput {
	return dashboard.UpdateInput{Title: r.Title}
}

// ---

type searchReq struct {
	Query string `form:"q"`
}

func (r searchReq) toInput() dashboard.SearchInput {
	return dashboard.SearchInput{Query: r.Query}
}

// ---

type idReq struct {
	ID string `uri:"id" binding:"required"`
}

// ---

type dismissReq struct {
	Kind   string `uri:"kind" binding:"required"`
	Reason string `form:"reason"`
}

func (r dismissReq) toInput() dashboard.DismissInput {
	return dashboard.DismissInput{
		Kind:   model.NotificationKind(r.Kind),
		Reason: r.Reason,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type notificationResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type viewResp struct {
	Tasks          []taskResp         `json:"tasks"`
	Visible        []taskResp         `json:"visible"`
	Query          string             `json:"query"`
	Empty          bool               `json:"empty"`
	Placeholder    string             `json:"placeholder,omitempty"`
	Dark           bool               `json:"dark"`
	Theme          string             `json:"theme"`
	AddDialogOpen  bool               `json:"add_dialog_open"`
	EditDialogOpen bool               `json:"edit_dialog_open"`
	EditingID      string             `json:"editing_id,omitempty"`
	Draft          string             `json:"draft"`
	Notifications  []notificationResp `json:"notifications"`
}

func newViewResp(v dashboard.View) viewResp {
	notes := make([]notificationResp, len(v.Notifications))
	for i, n := range v.Notifications {
		notes[i] = notificationResp{Kind: string(n.Kind), Message: n.Message}
	}

	resp := viewResp{
		Tasks:          newTaskResps(v.Tasks),
		Visible:        newTaskResps(v.Visible),
		Query:          v.Query,
		Empty:          v.Empty,
		Dark:           v.Dark,
		Theme:          string(v.Theme),
		AddDialogOpen:  v.AddDialogOpen,
		EditDialogOpen: v.EditDialogOpen,
		EditingID:      v.EditingID,
		Draft:          v.Draft,
		Notifications:  notes,
	}
	if v.Empty {
		resp.Placeholder = dashboard.NoTasksFound
	}
	return resp
}

type addResp struct {
	Added bool      `json:"added"`
	Task  *taskResp `json:"task,omitempty"`
	View  viewResp  `json:"view"`
}

func (h *handler) newAddResp(out dashboard.AddOutput) addResp {
	resp := addResp{Added: out.Added, View: newViewResp(out.View)}
	if out.Added {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}

type updateResp struct {
	Updated bool      `json:"updated"`
	Task    *taskResp `json:"task,omitempty"`
	View    viewResp  `json:"view"`
}

func (h *handler) newUpdateResp(out dashboard.UpdateOutput) updateResp {
	resp := updateResp{Updated: out.Updated, View: newViewResp(out.View)}
	if out.Updated {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}
