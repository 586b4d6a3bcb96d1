package services

import (
	"encoding/json"
	"testing"
	"time"

	"newsroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubService_PublishNewsReachesClients(t *testing.T) {
	hubService := NewHubService()
	hub := hubService.GetHub()

	client := &models.Client{ID: "c1", Hub: hub, Send: make(chan []byte, 4)}
	hub.Register <- client

	date, _ := time.Parse(models.DateLayout, "2023-05-01")
	hubService.PublishNews(models.News{ID: 5, Name: "Launch", Slug: "launch", Date: date, Link: "/news/launch"})

	select {
	case raw := <-client.Send:
		var msg struct {
			Type string              `json:"type"`
			Data models.NewsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, models.NewsCreatedEvent, msg.Type)
		assert.Equal(t, uint(5), msg.Data.ID)
		assert.Equal(t, "2023-05-01", msg.Data.Date)
		assert.Equal(t, "/news/launch", msg.Data.Link)
	case <-time.After(2 * time.Second):
		t.Fatal("no broadcast received")
	}

	hub.Unregister <- client
	assert.Eventually(t, func() bool {
		_, open := <-client.Send
		return !open
	}, time.Second, 10*time.Millisecond)
}
