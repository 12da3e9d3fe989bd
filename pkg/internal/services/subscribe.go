package services

import "sync"

// Each gateway client holds at most one feed subscription and one thread
// subscription. Switching channels replaces the feed entry under the lock,
// so two live feeds for one client never coexist.

type threadKey struct {
	ChannelID uint
	MessageID uint
}

var (
	subscribeLock sync.Mutex
	feedSubs      = make(map[string]uint)      // client id -> channel id
	threadSubs    = make(map[string]threadKey) // client id -> (channel, message)
)

func SubscribeFeed(clientId string, channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(feedSubs, clientId)
	feedSubs[clientId] = channelId
}

func UnsubscribeFeed(clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(feedSubs, clientId)
}

func SubscribeThread(clientId string, channelId, messageId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(threadSubs, clientId)
	threadSubs[clientId] = threadKey{ChannelID: channelId, MessageID: messageId}
}

func UnsubscribeThread(clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(threadSubs, clientId)
}

func UnsubscribeAllWithClient(clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(feedSubs, clientId)
	delete(threadSubs, clientId)
}

func UnsubscribeAllWithChannel(channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for k, v := range feedSubs {
		if v == channelId {
			delete(feedSubs, k)
		}
	}
	for k, v := range threadSubs {
		if v.ChannelID == channelId {
			delete(threadSubs, k)
		}
	}
}

func GetFeedSubscription(clientId string) (uint, bool) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	id, ok := feedSubs[clientId]
	return id, ok
}

func GetThreadSubscription(clientId string) (uint, uint, bool) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	key, ok := threadSubs[clientId]
	return key.ChannelID, key.MessageID, ok
}

func ListFeedSubscriber(channelId uint) []string {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	var out []string
	for k, v := range feedSubs {
		if v == channelId {
			out = append(out, k)
		}
	}
	return out
}

func ListThreadSubscriber(channelId, messageId uint) []string {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	var out []string
	key := threadKey{ChannelID: channelId, MessageID: messageId}
	for k, v := range threadSubs {
		if v == key {
			out = append(out, k)
		}
	}
	return out
}
