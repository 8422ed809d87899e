package dto

type RegisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type UnregisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type TestNotificationRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	Body  string `json:"body"  validate:"omitempty,max=500"`
}

type NotificationResultResponse struct {
	Tokens int `json:"tokens"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
