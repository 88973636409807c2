package ioc

import (
	"gitee.com/flycash/bazaarfly-notification/internal/domain"
	"gitee.com/flycash/bazaarfly-notification/internal/event/inapp"
	"gitee.com/flycash/bazaarfly-notification/internal/repository"
	"gitee.com/flycash/bazaarfly-notification/internal/service/channel"
	"gitee.com/flycash/bazaarfly-notification/internal/service/email"
	"gitee.com/flycash/bazaarfly-notification/internal/service/template"
)

// InitDispatcher push 和 sms 还没有接入，先占位
func InitDispatcher(users repository.UserRepository, sender email.Sender, producer inapp.NotificationCreatedEventProducer) *channel.Dispatcher {
	return channel.NewDispatcher(map[domain.Channel]channel.Channel{
		domain.ChannelInApp: channel.NewInAppChannel(producer),
		domain.ChannelEmail: channel.NewEmailChannel(users, template.NewCatalog(), sender),
		domain.ChannelPush:  channel.NewNoopChannel(domain.ChannelPush),
		domain.ChannelSMS:   channel.NewNoopChannel(domain.ChannelSMS),
	})
}
