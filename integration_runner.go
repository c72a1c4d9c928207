package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// Manual end-to-end probe against a locally running server.
// Run the server first, then: go run integration_runner.go

const baseURL = "http://localhost:8080"

func main() {
	fmt.Println("=== Draftzi Backend Integration Test ===")

	email := fmt.Sprintf("probe-%s@example.com", uuid.New().String()[:8])

	// 1. Register
	fmt.Println("\n1. Registering user...")
	registerBody := map[string]string{
		"email":    email,
		"password": "secret123",
		"name":     "Probe User",
	}
	var registerResp struct {
		Success bool `json:"success"`
		User    struct {
			ID int `json:"id"`
		} `json:"user"`
	}
	mustPost("/api/auth/register", "", registerBody, &registerResp)
	if !registerResp.Success || registerResp.User.ID == 0 {
		log.Fatalf("register failed: %+v", registerResp)
	}
	fmt.Printf("✓ Registered %s (id=%d)\n", email, registerResp.User.ID)

	// 2. Login
	fmt.Println("\n2. Logging in...")
	var loginResp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	mustPost("/api/auth/login", "", map[string]string{"email": email, "password": "secret123"}, &loginResp)
	if loginResp.Token == "" {
		log.Fatal("login returned no token")
	}
	fmt.Println("✓ Got token")

	// 3. Create a client
	fmt.Println("\n3. Creating client...")
	var clientResp struct {
		Success bool `json:"success"`
		Client  struct {
			ID        int    `json:"id"`
			Name      string `json:"name"`
			CreatedBy int    `json:"created_by"`
		} `json:"client"`
	}
	mustPost("/api/clients", loginResp.Token, map[string]string{"name": "Acme"}, &clientResp)
	if clientResp.Client.CreatedBy != registerResp.User.ID {
		log.Fatalf("client owner mismatch: got %d want %d", clientResp.Client.CreatedBy, registerResp.User.ID)
	}
	fmt.Printf("✓ Client %d owned by user %d\n", clientResp.Client.ID, clientResp.Client.CreatedBy)

	// 4. List clients
	fmt.Println("\n4. Listing clients...")
	var listResp struct {
		Success bool `json:"success"`
		Clients []struct {
			ID int `json:"id"`
		} `json:"clients"`
	}
	mustGet("/api/clients", loginResp.Token, &listResp)
	if len(listResp.Clients) != 1 || listResp.Clients[0].ID != clientResp.Client.ID {
		log.Fatalf("unexpected client list: %+v", listResp.Clients)
	}
	fmt.Println("✓ List scoped to owner")

	// 5. Negative auth cases
	fmt.Println("\n5. Checking rejections...")
	checkStatus("GET", "/api/clients", "", http.StatusUnauthorized)
	checkStatus("GET", "/api/clients", "not-a-token", http.StatusForbidden)
	fmt.Println("✓ 401 without token, 403 with malformed token")

	fmt.Println("\n=== All checks passed ===")
}

func mustPost(path, token string, body, out any) {
	payload, _ := json.Marshal(body)
	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(payload))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	do(req, out)
}

func mustGet(path, token string, out any) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		log.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	do(req, out)
}

func do(req *http.Request, out any) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("%s %s: decode: %v", req.Method, req.URL.Path, err)
	}
}

func checkStatus(method, path, token string, want int) {
	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		log.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != want {
		log.Fatalf("%s %s: status %d, want %d", method, path, resp.StatusCode, want)
	}
}
