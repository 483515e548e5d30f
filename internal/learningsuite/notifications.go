package learningsuite

import (
	"context"
	"encoding/json"
	"net/http"
)

var (
	OpListPopups           = op("list_popups", http.MethodGet, "/popups")
	OpGetPopupTriggers     = op("get_popup_triggers", http.MethodGet, "/popups/{popupId}/triggers")
	OpTriggerPopup         = op("trigger_popup", http.MethodPost, "/popups/{popupId}/triggers")
	OpResetPopupTrigger    = op("reset_popup_trigger", http.MethodDelete, "/popups/{popupId}/triggers")
	OpSendPushNotification = op("send_push_notification", http.MethodPost, "/push-notifications")
)

type PopupRef struct {
	PopupID string `json:"popupId"`
}

func (r PopupRef) path() map[string]string {
	return map[string]string{"popupId": r.PopupID}
}

type PopupTriggersParams struct {
	PopupRef
	MemberID *string `json:"memberId,omitempty"`
}

type PopupMembersParams struct {
	PopupRef
	MemberIDs
}

type PushNotification struct {
	Title     string   `json:"title,omitempty"`
	Message   string   `json:"message,omitempty"`
	MemberIDs []string `json:"memberIds,omitempty"`
	GroupIDs  []string `json:"groupIds,omitempty"`
	Link      *string  `json:"link,omitempty"`
}

func (c *Client) ListPopups(ctx context.Context, _ NoParams) (json.RawMessage, error) {
	return c.Get(ctx, OpListPopups, nil, nil)
}

func (c *Client) GetPopupTriggers(ctx context.Context, p PopupTriggersParams) (json.RawMessage, error) {
	return c.Get(ctx, OpGetPopupTriggers, p.path(), NewQueryBuilder().AddString("memberId", p.MemberID).Build())
}

func (c *Client) TriggerPopup(ctx context.Context, p PopupMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpTriggerPopup, p.path(), p.MemberIDs)
}

func (c *Client) ResetPopupTrigger(ctx context.Context, p PopupMembersParams) (json.RawMessage, error) {
	return c.Send(ctx, OpResetPopupTrigger, p.path(), p.MemberIDs)
}

func (c *Client) SendPushNotification(ctx context.Context, p PushNotification) (json.RawMessage, error) {
	return c.Send(ctx, OpSendPushNotification, nil, p)
}
