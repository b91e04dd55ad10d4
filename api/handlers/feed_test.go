package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/plataforma-367/traffic-case-api/models"
)

func TestCaseFeedBroadcast(t *testing.T) {
	hub := NewCaseHub()
	go hub.Run()

	feed := CaseFeed{Hub: hub}
	srv := httptest.NewServer(http.HandlerFunc(feed.ServeWS))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	// let the hub register the client before broadcasting
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(CaseEvent{Type: eventCaseCreated, Case: models.Case{ID: "case-1", CaseNumber: "#A1B2C3"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got CaseEvent
	err = conn.ReadJSON(&got)
	assert.NoError(t, err)
	assert.Equal(t, "case_created", got.Type)
	assert.Equal(t, "case-1", got.Case.ID)
}

func TestBroadcastWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewCaseHub()
	go hub.Run()

	for i := 0; i < 100; i++ {
		hub.Broadcast(CaseEvent{Type: eventCaseReviewed})
	}
}
