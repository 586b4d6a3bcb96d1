package services

import (
	"encoding/json"
	"log"

	"newsroom/models"
)

// HubService fans news events out to websocket subscribers. Run owns the
// hub maps; everything else talks to it through channels.
type HubService struct {
	hub *models.Hub
}

func NewHubService() *HubService {
	service := &HubService{hub: models.NewHub()}

	go service.Run()

	return service
}

func (h *HubService) GetHub() *models.Hub {
	return h.hub
}

func (h *HubService) Run() {
	for {
		select {
		case client := <-h.hub.Register:
			h.hub.Clients[client] = true
			log.Printf("Live feed client registered: %s", client.ID)

		case client := <-h.hub.Unregister:
			h.unregisterClient(client)

		case message := <-h.hub.Broadcast:
			h.broadcastToAll(message)
		}
	}
}

func (h *HubService) unregisterClient(client *models.Client) {
	if _, ok := h.hub.Clients[client]; ok {
		delete(h.hub.Clients, client)
		close(client.Send)
		log.Printf("Live feed client unregistered: %s", client.ID)
	}
}

func (h *HubService) broadcastToAll(message []byte) {
	for client := range h.hub.Clients {
		select {
		case client.Send <- message:
		default:
			close(client.Send)
			delete(h.hub.Clients, client)
		}
	}
}

// PublishNews queues a news_created event for every subscriber.
func (h *HubService) PublishNews(news models.News) {
	messageBytes, err := json.Marshal(models.WSMessage{
		Type: models.NewsCreatedEvent,
		Data: models.NewNewsResponse(news),
	})
	if err != nil {
		log.Printf("Error marshaling WebSocket message: %v", err)
		return
	}

	select {
	case h.hub.Broadcast <- messageBytes:
	default:
		log.Printf("Live feed broadcast queue full, dropping event for %q", news.Slug)
	}
}
