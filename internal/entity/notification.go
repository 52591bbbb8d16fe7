package entity

// AgentNotification is the payload sent to the notification service.
type AgentNotification struct {
	SafeAddress string `json:"safeAddress"`
}

// AgentNotificationResponse is the notification service's reply.
type AgentNotificationResponse struct {
	Success bool `json:"success"`
}
