package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/tickwheel/pkg/engine"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/gorilla/mux"
)

// StatsProvider exposes the latest published engine snapshot.
type StatsProvider interface {
	Stats() *engine.Stats
}

func HandleStats(provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := provider.Stats()
		if stats == nil {
			http.Error(w, "No stats published yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, stats)
	}
}

func HandleListTasks(provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := provider.Stats()
		if stats == nil {
			http.Error(w, "No stats published yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, stats.Tasks)
	}
}

func HandleGetTask(provider StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := strconv.ParseUint(mux.Vars(r)["taskID"], 10, 64)
		if err != nil {
			http.Error(w, "Invalid task ID", http.StatusBadRequest)
			return
		}
		stats := provider.Stats()
		if stats == nil {
			http.Error(w, "No stats published yet", http.StatusServiceUnavailable)
			return
		}
		for _, task := range stats.Tasks {
			if task.ID == taskID {
				writeJSON(w, task)
				return
			}
		}
		http.Error(w, "Task not found", http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
