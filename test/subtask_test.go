package test

import (
	"net/http"
	"testing"
)

func TestCreateAndListSubTasks(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("subuser"), "secret123")
	taskID := createTask(t, app, token, "Parent task")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", token, map[string]interface{}{
		"title": "Step one",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status %d but got %d", http.StatusCreated, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "GET", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, resp.StatusCode)
	}
	result := decodeBody(t, resp)
	data, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("Expected data array in sub-task list")
	}
	if len(data) != 1 {
		t.Errorf("Expected 1 sub-task but got %d", len(data))
	}
}

func TestSubTaskValidation(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("subval"), "secret123")
	taskID := createTask(t, app, token, "Parent task")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", token, map[string]interface{}{
		"title": "   ",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status %d for blank title but got %d", http.StatusBadRequest, resp.StatusCode)
	}
	resp.Body.Close()
}

func TestUpdateAndDeleteSubTask(t *testing.T) {
	app := CreateTestApp()
	token := registerUser(t, app, uniqueUsername("subupd"), "secret123")
	taskID := createTask(t, app, token, "Parent task")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", token, map[string]interface{}{
		"title": "Draft",
	})
	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	subTaskID := int(data["id"].(float64))

	resp = doJSON(t, app, "PUT", "/api/v1/subtasks/"+itoa(subTaskID), token, map[string]interface{}{
		"title":        "Final",
		"is_completed": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d updating sub-task but got %d", http.StatusOK, resp.StatusCode)
	}
	result = decodeBody(t, resp)
	data = result["data"].(map[string]interface{})
	if data["title"] != "Final" || data["is_completed"] != true {
		t.Errorf("Expected updated sub-task, got %v", data)
	}

	resp = doJSON(t, app, "DELETE", "/api/v1/subtasks/"+itoa(subTaskID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d deleting sub-task but got %d", http.StatusOK, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "DELETE", "/api/v1/subtasks/"+itoa(subTaskID), token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d deleting twice but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()
}

// Ownership sub-task bersifat transitif lewat parent task: parent milik akun
// lain harus tidak bisa dibedakan dari sub-task yang tidak ada.
func TestSubTaskTransitiveOwnership(t *testing.T) {
	app := CreateTestApp()
	tokenA := registerUser(t, app, uniqueUsername("sub_owner"), "secret123")
	tokenB := registerUser(t, app, uniqueUsername("sub_other"), "secret123")
	taskID := createTask(t, app, tokenA, "Parent task")

	resp := doJSON(t, app, "POST", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", tokenA, map[string]interface{}{
		"title": "Private step",
	})
	result := decodeBody(t, resp)
	data := result["data"].(map[string]interface{})
	subTaskID := int(data["id"].(float64))

	// Membuat sub-task di task orang lain -> 404
	resp = doJSON(t, app, "POST", "/api/v1/tasks/"+itoa(taskID)+"/subtasks", tokenB, map[string]interface{}{
		"title": "Intruding step",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d creating sub-task on foreign task but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()

	// Update dan delete sub-task milik orang lain -> 404
	resp = doJSON(t, app, "PUT", "/api/v1/subtasks/"+itoa(subTaskID), tokenB, map[string]interface{}{
		"title": "Hijacked",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d updating foreign sub-task but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, "DELETE", "/api/v1/subtasks/"+itoa(subTaskID), tokenB, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status %d deleting foreign sub-task but got %d", http.StatusNotFound, resp.StatusCode)
	}
	resp.Body.Close()
}
