package services

import (
	"strings"
	"testing"

	"github.com/onegreenvn/outreach-dashboard/internal/models"
)

func TestSSEHub_BroadcastByKind(t *testing.T) {
	hub := NewSSEHub()
	callClient := hub.RegisterClient("call")
	blogClient := hub.RegisterClient("blog")
	allClient := hub.RegisterClient(AllActivity)

	if hub.GetClientCount("call") != 1 || hub.GetClientCount(AllActivity) != 1 {
		t.Fatalf("unexpected client counts")
	}

	hub.BroadcastActivity(&models.ActivityLog{ID: "a1", Kind: models.ActivityCall})

	if len(callClient) != 1 {
		t.Errorf("call subscriber should receive the entry")
	}
	if len(allClient) != 1 {
		t.Errorf("all subscriber should receive the entry")
	}
	if len(blogClient) != 0 {
		t.Errorf("blog subscriber should not receive a call entry")
	}

	hub.SendHeartbeat()
	<-callClient
	if msg := <-callClient; !strings.HasPrefix(string(msg), ": heartbeat") {
		t.Errorf("expected heartbeat, got %q", msg)
	}

	hub.UnregisterClient("call", callClient)
	if hub.GetClientCount("call") != 0 {
		t.Errorf("expected call subscribers to be removed")
	}
	if _, ok := <-callClient; ok {
		t.Errorf("expected channel to be closed")
	}
	hub.UnregisterClient("blog", blogClient)
	hub.UnregisterClient(AllActivity, allClient)
}

func TestSSEHub_FullClientIsSkipped(t *testing.T) {
	hub := NewSSEHub()
	client := hub.RegisterClient(AllActivity)
	defer hub.UnregisterClient(AllActivity, client)

	for i := 0; i < 15; i++ {
		hub.BroadcastActivity(&models.ActivityLog{ID: "x", Kind: models.ActivityScrape})
	}
	if len(client) != cap(client) {
		t.Errorf("expected buffer to be full (%d), got %d", cap(client), len(client))
	}
}
