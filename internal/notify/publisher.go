package notify

import "time"

// OTPMessage 是投递给外部邮件消费方的验证码消息。
type OTPMessage struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Publisher 把验证码消息交给投递通道；实际发送由队列的消费方完成。
type Publisher interface {
	PublishOTP(msg OTPMessage) error
}

// NopPublisher 丢弃所有消息，用于测试与未配置消息队列的环境。
type NopPublisher struct{}

func (NopPublisher) PublishOTP(OTPMessage) error { return nil }
