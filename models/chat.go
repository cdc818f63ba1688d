package models

// ChatRequest 聊天请求
type ChatRequest struct {
	Message     string `json:"message"`
	QuickAction string `json:"quickAction"`
}

// ChatReply 机器人回复
type ChatReply struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
	Topic   string `json:"topic"`
	Time    string `json:"time"`
}

// QuickAction 快捷提问
type QuickAction struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}
