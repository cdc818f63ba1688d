package services

import (
	"strings"
	"time"

	"go-krushivishwa/models"
)

type chatRule struct {
	topic    string
	keywords []string
	reply    string
}

// chatRules 按顺序匹配，命中第一条即返回；关键词按子串匹配
var chatRules = []chatRule{
	{
		topic:    "weather",
		keywords: []string{"weather"},
		reply:    "🌤️ Today's weather: Partly cloudy, 28°C with 60% humidity. Perfect conditions for watering your crops early morning. Rain expected in 2 days.",
	},
	{
		topic:    "crop",
		keywords: []string{"crop", "plant", "grow"},
		reply:    "🌱 For your wheat crop, I recommend: 1) Water early morning for better absorption 2) Check for pest infestation every 3 days 3) Apply nitrogen-rich fertilizer as it's in tillering stage. Need specific advice for another crop?",
	},
	{
		topic:    "market",
		keywords: []string{"market", "price"},
		reply:    "📈 Current market prices: Wheat: ₹2,150/quintal (+₹50), Rice: ₹1,890/quintal (-₹20), Corn: ₹1,675/quintal (+₹15). Wheat prices are trending upward - good time to sell!",
	},
	{
		topic:    "soil",
		keywords: []string{"soil", "fertilizer"},
		reply:    "🌾 For healthy soil: Maintain pH between 6-7, add organic matter regularly, test NPK levels monthly. Your soil analysis shows good nitrogen levels. Consider phosphorus supplementation for better yield.",
	},
	{
		topic:    "pest",
		keywords: []string{"pest", "insect", "disease"},
		reply:    "🐛 Common pests this season: Aphids and stem borers. Use neem oil spray for organic control or consult your local agricultural extension officer for chemical options. Monitor daily during morning hours.",
	},
	{
		topic:    "irrigation",
		keywords: []string{"water", "irrigation"},
		reply:    "💧 Irrigation tips: Water early morning (5-7 AM) for best absorption. Your crops need 2-3 inches per week. Check soil moisture 2 inches deep - if dry, it's time to water.",
	},
	{
		topic:    "farming",
		keywords: []string{"farming", "agriculture"},
		reply:    "🚜 I'm here to help with all your farming needs! I can assist with crop management, weather updates, market prices, soil health, pest control, and irrigation advice. What specific area would you like to explore?",
	},
	{
		topic:    "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply:    "👋 Hello! I'm KrishiBot, your AI farming assistant. I can help you with crop advice, weather updates, market prices, and farming best practices. How can I assist you today?",
	},
	{
		topic:    "thanks",
		keywords: []string{"thank", "thanks"},
		reply:    "🙏 You're welcome! I'm always here to help with your farming questions. Feel free to ask anything about crops, weather, markets, or farming techniques.",
	},
}

const (
	defaultChatTopic = "general"
	defaultChatReply = "🤖 I understand you're asking about farming. I can help with crop management, weather forecasts, market prices, soil health, pest control, and irrigation. Could you please be more specific about what you'd like to know?"
)

var quickActions = []models.QuickAction{
	{Action: "weather", Message: "What's the weather forecast for my area?"},
	{Action: "crop-advice", Message: "Can you give me advice for my current crop?"},
	{Action: "market-price", Message: "Show me current market prices for my crops"},
}

// Chatbot 基于关键词的农事问答机器人
type Chatbot struct {
	now func() time.Time
}

// NewChatbot 创建机器人
func NewChatbot() *Chatbot {
	return &Chatbot{now: time.Now}
}

// Respond 返回话题和回复
func Respond(message string) (topic, reply string) {
	msg := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.topic, rule.reply
			}
		}
	}
	return defaultChatTopic, defaultChatReply
}

// QuickActions 快捷提问列表
func QuickActions() []models.QuickAction {
	return append([]models.QuickAction(nil), quickActions...)
}

// QuickActionMessage 快捷提问对应的问题
func QuickActionMessage(action string) (string, bool) {
	for _, qa := range quickActions {
		if qa.Action == action {
			return qa.Message, true
		}
	}
	return "", false
}

// Reply 处理一次提问，快捷提问优先于文本
func (b *Chatbot) Reply(req models.ChatRequest) (models.ChatReply, bool) {
	message := strings.TrimSpace(req.Message)
	if req.QuickAction != "" {
		qa, ok := QuickActionMessage(req.QuickAction)
		if !ok {
			return models.ChatReply{}, false
		}
		message = qa
	}
	if message == "" {
		return models.ChatReply{}, false
	}

	topic, reply := Respond(message)
	return models.ChatReply{
		Message: message,
		Reply:   reply,
		Topic:   topic,
		Time:    b.now().Format("15:04"),
	}, true
}
