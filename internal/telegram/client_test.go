package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		token:      "test-token",
		httpClient: srv.Client(),
		baseURL:    srv.URL,
	}
}

func TestSendMessage(t *testing.T) {
	var gotPath string
	var gotReq SendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":     true,
			"result": map[string]int64{"message_id": 42},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	msgID, err := c.SendMessage(-100, "Кто будет учавствовать?", JoinGameKeyboard())
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msgID != 42 {
		t.Errorf("message id = %d, want 42", msgID)
	}
	if gotPath != "/sendMessage" {
		t.Errorf("path = %q, want /sendMessage", gotPath)
	}
	if gotReq.ChatID != -100 || gotReq.Text != "Кто будет учавствовать?" {
		t.Errorf("request = %+v", gotReq)
	}
	if len(gotReq.ReplyMarkup) == 0 {
		t.Error("reply markup not marshaled")
	}
}

func TestEditMessageText(t *testing.T) {
	var gotReq EditMessageTextRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/editMessageText" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "result": map[string]bool{}})
	}))
	defer srv.Close()

	c := testClient(srv)
	if err := c.EditMessageText(-100, 42, "Игра началась! 🚀", nil); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if gotReq.MessageID != 42 || gotReq.Text != "Игра началась! 🚀" {
		t.Errorf("request = %+v", gotReq)
	}
}

func TestAnswerCallbackQuery(t *testing.T) {
	var gotReq AnswerCallbackQueryRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/answerCallbackQuery" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "result": true})
	}))
	defer srv.Close()

	c := testClient(srv)
	if err := c.AnswerCallbackQuery("cb1", "", false); err != nil {
		t.Fatalf("answer callback: %v", err)
	}
	if gotReq.CallbackQueryID != "cb1" {
		t.Errorf("callback id = %q, want cb1", gotReq.CallbackQueryID)
	}
}

func TestAPIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	if _, err := c.SendMessage(-100, "hi", nil); err == nil {
		t.Fatal("expected error for ok=false response")
	}
}

func TestGetUpdates(t *testing.T) {
	var gotReq GetUpdatesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/getUpdates" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok": true,
			"result": []map[string]interface{}{
				{
					"update_id": 7,
					"message": map[string]interface{}{
						"message_id": 1,
						"from":       map[string]interface{}{"id": 11, "username": "master"},
						"chat":       map[string]interface{}{"id": -100},
						"text":       "/start",
					},
				},
				{
					"update_id": 8,
					"callback_query": map[string]interface{}{
						"id":      "cb",
						"from":    map[string]interface{}{"id": 22, "username": "player"},
						"message": map[string]interface{}{"message_id": 2, "chat": map[string]interface{}{"id": -100}},
						"data":    "join_game",
					},
				},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	updates, err := c.GetUpdates(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("get updates: %v", err)
	}
	if gotReq.Offset != 7 || gotReq.Timeout != 10 {
		t.Errorf("request = %+v", gotReq)
	}
	if len(updates) != 2 {
		t.Fatalf("updates = %d, want 2", len(updates))
	}
	if updates[0].Message == nil || updates[0].Message.Text != "/start" {
		t.Errorf("first update = %+v", updates[0])
	}
	if updates[1].CallbackQuery == nil || updates[1].CallbackQuery.Data != "join_game" {
		t.Errorf("second update = %+v", updates[1])
	}
}
