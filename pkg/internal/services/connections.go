package services

import (
	"sync"

	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// WsClient is one live gateway connection. Writes are serialized per
// connection; fasthttp websocket conns are not safe for concurrent writers.
type WsClient struct {
	ID      string
	Account models.Account

	conn *websocket.Conn
	mu   sync.Mutex
}

func (v *WsClient) Write(task models.UnifiedCommand) error {
	if v.conn == nil {
		return nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.conn.WriteMessage(websocket.TextMessage, task.Marshal())
}

var (
	wsLock    sync.Mutex
	wsClients = make(map[string]*WsClient)
)

func ClientRegister(user models.Account, conn *websocket.Conn) *WsClient {
	client := &WsClient{
		ID:      uuid.NewString(),
		Account: user,
		conn:    conn,
	}

	wsLock.Lock()
	wsClients[client.ID] = client
	wsLock.Unlock()

	return client
}

func ClientUnregister(client *WsClient) {
	wsLock.Lock()
	delete(wsClients, client.ID)
	wsLock.Unlock()

	UnsubscribeAllWithClient(client.ID)
}

func GetClient(clientId string) (*WsClient, bool) {
	wsLock.Lock()
	defer wsLock.Unlock()
	client, ok := wsClients[clientId]
	return client, ok
}

func CheckOnline(user models.Account) bool {
	wsLock.Lock()
	defer wsLock.Unlock()
	for _, client := range wsClients {
		if client.Account.ID == user.ID {
			return true
		}
	}
	return false
}

func PushCommand(userId uint, task models.UnifiedCommand) {
	wsLock.Lock()
	defer wsLock.Unlock()
	for _, client := range wsClients {
		if client.Account.ID == userId {
			_ = client.Write(task)
		}
	}
}
