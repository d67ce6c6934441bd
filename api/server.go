package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/vanim/timeline"
)

// Server exposes a scene's timeline layout over HTTP for preview
// tooling.
type Server struct {
	scene *timeline.Scene
}

// NewServer creates a Server for the given scene.
func NewServer(scene *timeline.Scene) *Server {
	s := new(Server)
	s.scene = scene
	return s
}

// Run serves the API on the given address.
func (s *Server) Run(addr string) {
	http.HandleFunc("/timelines", s.handleTimelines)
	http.HandleFunc("/timemarks", s.handleTimeMarks)

	log.Println("Listening...")
	http.ListenAndServe(addr, nil)
}

func (s *Server) handleTimelines(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.scene.TimelineInfos())
}

func (s *Server) handleTimeMarks(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.scene.TimeMarks())
}
