package common

import "github.com/labworks/labman/pkg/common/code"

type Error struct {
	Msg string `json:"msg"`
}

// Resp is the envelope every HTTP handler writes. Code marshals to its
// numeric value.
type Resp struct {
	Code  *code.Code `json:"code"`
	Data  any        `json:"data,omitempty"`
	Error *Error     `json:"error,omitempty"`
}

type PageReq struct {
	Page     int `form:"page,default=1" json:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"page_size,default=20" json:"page_size" binding:"omitempty,gte=1,lte=200"`
}

func (p *PageReq) Offset() int {
	page := p.Page
	if page <= 0 {
		page = 1
	}
	return (page - 1) * p.Limit()
}

func (p *PageReq) Limit() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

type PageResp[T any] struct {
	List     []T   `json:"list"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// WsMsg is the minimal framing for inbound websocket messages.
type WsMsg struct {
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}
