package radarapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != DefaultAPIURL {
		t.Fatalf("url = %q, want http://%s", u.String(), DefaultAPIURL)
	}

	u, err = parseBaseURL("https://radar.example.com:9000/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.Scheme != "https" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotRadarQuery, gotItemsQuery url.Values
	var gotItemPath, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/":
			_ = json.NewEncoder(w).Encode(Health{Status: "healthy", Service: "radar"})
		case r.URL.Path == "/api/radar":
			gotRadarQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"radar_date":"2026-01-30","trends":[
				{"id":7,"tool_name":"LiveKit","focus_area":"voice_ai_ux","classification":"signal",
				 "confidence_score":92,"technical_insight":"WebRTC","signal_evidence":["a","b"],
				 "noise_indicators":[],"architectural_verdict":true,"timestamp":"2026-01-30T10:00:00Z"}]}`))
		case r.URL.Path == "/items":
			gotItemsQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{"total":1,"items":[{"id":3,"tool_name":"Temporal",
				"signal_evidence":"[\"durable\"]","noise_indicators":null,"architectural_verdict":4}]}`))
		case strings.HasPrefix(r.URL.Path, "/items/"):
			gotItemPath = r.URL.Path
			_, _ = w.Write([]byte(`{"id":3,"tool_name":"Temporal","architectural_verdict":0}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	health, err := c.FetchHealth(ctx)
	if err != nil || !health.Healthy() {
		t.Fatalf("FetchHealth = %#v, %v, want healthy", health, err)
	}

	radarResp, err := c.FetchRadar(ctx, " 2026-01-30 ")
	if err != nil {
		t.Fatalf("FetchRadar returned error: %v", err)
	}
	if gotRadarQuery.Get("date") != "2026-01-30" {
		t.Fatalf("FetchRadar query = %v, want date", gotRadarQuery)
	}
	if radarResp.RadarDate != "2026-01-30" || len(radarResp.Trends) != 1 {
		t.Fatalf("FetchRadar payload = %#v", radarResp)
	}
	tr := radarResp.Trends[0]
	if tr.ID != 7 || tr.ConfidenceScore != 92 || !bool(tr.ArchitecturalVerdict) || len(tr.SignalEvidence) != 2 {
		t.Fatalf("trend = %#v", tr)
	}

	if _, err := c.FetchRadar(ctx, ""); err != nil {
		t.Fatalf("FetchRadar latest returned error: %v", err)
	}
	if gotRadarQuery.Has("date") {
		t.Fatalf("FetchRadar latest query = %v, want no date", gotRadarQuery)
	}

	list, err := c.FetchItems(ctx, ItemsQuery{Skip: 10, Limit: 5})
	if err != nil {
		t.Fatalf("FetchItems returned error: %v", err)
	}
	if gotItemsQuery.Get("skip") != "10" || gotItemsQuery.Get("limit") != "5" {
		t.Fatalf("FetchItems query = %v, want skip/limit", gotItemsQuery)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("FetchItems payload = %#v", list)
	}
	item := list.Items[0]
	if len(item.SignalEvidence) != 1 || item.SignalEvidence[0] != "durable" || item.NoiseIndicators != nil {
		t.Fatalf("items evidence = %#v / %#v", item.SignalEvidence, item.NoiseIndicators)
	}
	if !bool(item.ArchitecturalVerdict) {
		t.Fatalf("numeric verdict 4 should decode as true")
	}

	one, err := c.FetchItem(ctx, 3)
	if err != nil {
		t.Fatalf("FetchItem returned error: %v", err)
	}
	if gotItemPath != "/items/3" || one.ToolName != "Temporal" || bool(one.ArchitecturalVerdict) {
		t.Fatalf("FetchItem = %#v at %q", one, gotItemPath)
	}

	if !strings.HasPrefix(gotUserAgent, "radar/") {
		t.Fatalf("User-Agent = %q, want radar/*", gotUserAgent)
	}
}

func TestClient_FetchItemRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchItem(context.Background(), 0); err == nil {
		t.Fatalf("FetchItem(0) returned nil error, want error")
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/items/9":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Item with id 9 not found"}`))
		case "/api/radar":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchHealth(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchHealth error = %v, want decode response error", err)
	}

	_, err = c.FetchItem(context.Background(), 9)
	if !IsNotFound(err) {
		t.Fatalf("FetchItem error = %v, want not found", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Detail != "Item with id 9 not found" {
		t.Fatalf("FetchItem error = %#v, want detail", err)
	}

	_, err = c.FetchRadar(context.Background(), "")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") || IsNotFound(err) {
		t.Fatalf("FetchRadar error = %v, want status 500 error", err)
	}
}

func TestNilClient(t *testing.T) {
	var c *Client
	if _, err := c.FetchRadar(context.Background(), ""); err == nil {
		t.Fatalf("nil client should return error")
	}
	if c.BaseURL() != "" {
		t.Fatalf("nil client BaseURL should be empty")
	}
}
