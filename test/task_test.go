package test

import (
	"net/http"
	"testing"
)

func TestCreateAndGetTask(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("taskuser"), "secret123")

	taskID := createTask(t, app, token, "Write report")

	resp := doJSON(t, app, "GET", "/api/v1/tasks/"+itoa(taskID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	result := decodeBody(t, resp)
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data field in get task response")
	}
	if data["title"] != "Write report" {
		t.Errorf("Expected title %q but got %v", "Write report", data["title"])
	}
	// Default status dan priority terisi
	if data["status"] != "todo" {
		t.Errorf("Expected default status todo but got %v", data["status"])
	}
	if data["priority"] != "medium" {
		t.Errorf("Expected default priority medium but got %v", data["priority"])
	}
}

func TestCreateTaskValidation(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("taskval"), "secret123")

	cases := []map[string]interface{}{
		{"title": ""},
		{"title": "   "},
		{"title": "ok", "status": "unknown"},
		{"title": "ok", "priority": "urgent"},
		{"title": "ok", "due_date": "1999-12-31T00:00:00Z"},
	}
	for _, body := range cases {
		resp := doJSON(t, app, "POST", "/api/v1/tasks/", token, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status %d for body %v but got %d", http.StatusBadRequest, body, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestListTasksScopedToOwner(t *testing.T) {
	app := CreateTestApp()
	tokenA := registerUser(t, app, uniqueUsername("owner_a"), "secret123")
	tokenB := registerUser(t, app, uniqueUsername("owner_b"), "secret123")

	createTask(t, app, tokenA, "A task one")
	createTask(t, app, tokenA, "A task two")
	createTask(t, app, tokenB, "B task")

	resp := doJSON(t, app, "GET", "/api/v1/tasks/", tokenA, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	result := decodeBody(t, resp)
	data, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array in list response")
	}
	if len(data) != 2 {
		t.Errorf("Expected 2 tasks for owner A but got %d", len(data))
	}
}

func TestListTasksFilters(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("filter"), "secret123")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/", token, map[string]interface{}{
		"title": "Urgent deploy", "status": "in_progress", "priority": "high",
	})
	resp.Body.Close()
	resp = doJSON(t, app, "POST", "/api/v1/tasks/", token, map[string]interface{}{
		"title": "Casual cleanup", "status": "todo", "priority": "low",
	})
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/tasks/?status=in_progress&priority=high&q=deploy", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	result := decodeBody(t, resp)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("Expected 1 filtered task but got %d", len(data))
	}

	// Nilai filter di luar daftar yang diizinkan ditolak
	resp = doJSON(t, app, "GET", "/api/v1/tasks/?status=bogus", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d for invalid filter but got %d", http.StatusBadRequest, resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUpdateTask(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("update"), "secret123")
	taskID := createTask(t, app, token, "Before update")

	resp := doJSON(t, app, "PUT", "/api/v1/tasks/"+itoa(taskID), token, map[string]interface{}{
		"title":  "After update",
		"status": "done",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	if data["title"] != "After update" || data["status"] != "done" {
		t.Errorf("Expected updated fields, got %v", data)
	}
}

func TestDeleteTask(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("delete"), "secret123")
	taskID := createTask(t, app, token, "Disposable")

	resp := doJSON(t, app, "DELETE", "/api/v1/tasks/"+itoa(taskID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/tasks/"+itoa(taskID), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d after delete but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()
}

// Task tidak ada dan task milik akun lain harus sama-sama 404.
func TestTaskNotFoundAndNotOwnedAreIdentical(t *testing.T) {
	app := CreateTestApp()
	tokenA := registerUser(t, app, uniqueUsername("victim"), "secret123")
	tokenB := registerUser(t, app, uniqueUsername("snooper"), "secret123")
	taskID := createTask(t, app, tokenA, "Private task")

	foreign := doJSON(t, app, "GET", "/api/v1/tasks/"+itoa(taskID), tokenB, nil)
	if foreign.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d for foreign task but got %d", http.StatusNotFound, foreign.StatusCode)
	}
	foreignBody := decodeBody(t, foreign)

	missing := doJSON(t, app, "GET", "/api/v1/tasks/999999", tokenB, nil)
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d for missing task but got %d", http.StatusNotFound, missing.StatusCode)
	}
	missingBody := decodeBody(t, missing)

	if foreignBody["message"] != missingBody["message"] {
		t.Errorf("Expected identical bodies for foreign and missing task, got %q and %q",
			foreignBody["message"], missingBody["message"])
	}

	// Mutasi juga 404, tidak pernah 403
	resp := doJSON(t, app, "PUT", "/api/v1/tasks/"+itoa(taskID), tokenB, map[string]interface{}{
		"title": "Hijacked",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d updating foreign task but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "DELETE", "/api/v1/tasks/"+itoa(taskID), tokenB, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d deleting foreign task but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()
}
